package appointment

import (
	"context"
	"time"

	"github.com/NomadRelief/stall-scheduler/internal/models"
)

type Repository interface {
	// -------- Company --------
	GetCompanyByID(
		ctx context.Context,
		id uint,
	) (*models.Company, error)

	// -------- Trailer --------
	GetTrailer(
		ctx context.Context,
		companyID uint,
		trailerID uint,
	) (*models.Trailer, error)

	ListTrailers(
		ctx context.Context,
		companyID uint,
	) ([]models.Trailer, error)

	// -------- Stall --------
	GetStall(
		ctx context.Context,
		companyID uint,
		stallID uint,
	) (*models.Stall, error)

	ListStalls(
		ctx context.Context,
		companyID uint,
	) ([]models.Stall, error)

	UpdateStallStatus(
		ctx context.Context,
		stallID uint,
		status StallStatus,
	) error

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentIfFree locks conflicting rows, re-checks the overlap
	// and inserts in one transaction. Returns the time_conflict business
	// error when the interval is taken.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForCompany(
		ctx context.Context,
		appointmentID uint,
		companyID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Day listings --------
	ListAppointmentsForDay(
		ctx context.Context,
		companyID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- History --------
	ListScheduledAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ArchiveAppointments inserts the archive rows and deletes the matching
	// live rows in a single transaction: all or nothing.
	ArchiveAppointments(
		ctx context.Context,
		archived []models.HistoricalAppointment,
		liveIDs []uint,
	) error

	ListHistory(
		ctx context.Context,
		companyID uint,
		from time.Time,
		to time.Time,
	) ([]models.HistoricalAppointment, error)
}
