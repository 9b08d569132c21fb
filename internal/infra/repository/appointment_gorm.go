package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Company
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCompanyByID(
	ctx context.Context,
	id uint,
) (*models.Company, error) {

	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// --------------------------------------------------
// Trailer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTrailer(
	ctx context.Context,
	companyID uint,
	trailerID uint,
) (*models.Trailer, error) {

	var trailer models.Trailer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", trailerID, companyID).
		First(&trailer).Error; err != nil {
		return nil, err
	}
	return &trailer, nil
}

func (r *AppointmentGormRepository) ListTrailers(
	ctx context.Context,
	companyID uint,
) ([]models.Trailer, error) {

	var trailers []models.Trailer
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&trailers).Error; err != nil {
		return nil, err
	}
	return trailers, nil
}

// --------------------------------------------------
// Stall
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStall(
	ctx context.Context,
	companyID uint,
	stallID uint,
) (*models.Stall, error) {

	var stall models.Stall
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", stallID, companyID).
		First(&stall).Error; err != nil {
		return nil, err
	}
	return &stall, nil
}

func (r *AppointmentGormRepository) ListStalls(
	ctx context.Context,
	companyID uint,
) ([]models.Stall, error) {

	var stalls []models.Stall
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("trailer_id ASC, id ASC").
		Find(&stalls).Error; err != nil {
		return nil, err
	}
	return stalls, nil
}

func (r *AppointmentGormRepository) UpdateStallStatus(
	ctx context.Context,
	stallID uint,
	status domain.StallStatus,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Stall{}).
		Where("id = ?", stallID).
		Update("status", string(status)).Error
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointmentIfFree runs the availability check and the insert as one
// transaction, locking conflicting rows FOR UPDATE so two writers cannot
// both pass the check. The gist exclusion constraint catches anything that
// slips through, surfacing as the same business error.
func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"stall_id = ? AND status IN ('scheduled', 'in_progress') AND start_time < ? AND end_time > ?",
				ap.StallID, ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForCompany(
	ctx context.Context,
	appointmentID uint,
	companyID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", appointmentID, companyID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Day listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	companyID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"company_id = ? AND start_time >= ? AND start_time < ?",
			companyID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *AppointmentGormRepository) ListScheduledAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusScheduled)).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ArchiveAppointments(
	ctx context.Context,
	archived []models.HistoricalAppointment,
	liveIDs []uint,
) error {

	if len(archived) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, liveIDs).Error
	})
}

func (r *AppointmentGormRepository) ListHistory(
	ctx context.Context,
	companyID uint,
	from time.Time,
	to time.Time,
) ([]models.HistoricalAppointment, error) {

	var rows []models.HistoricalAppointment
	if err := r.db.WithContext(ctx).
		Where(
			"company_id = ? AND start_time >= ? AND start_time < ?",
			companyID, from, to,
		).
		Order("start_time DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
