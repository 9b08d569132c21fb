package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/geo"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/notify"
	"github.com/NomadRelief/stall-scheduler/internal/timezone"
)

// ======================================================
// BOOK DIRECTED
// ======================================================

// BookDirected handles the caller-chosen variant: the client already picked
// stall, trailer and interval, and the server re-validates everything before
// committing. Same-day requests additionally require the stall's manual
// status to be available; future-dated requests skip that gate since stall
// conditions reset between days.
type BookDirected struct {
	repo   domain.Repository
	notify notify.Sink
}

type BookDirectedResult struct {
	Appointment *models.Appointment `json:"appointment"`
	DistanceKm  *float64            `json:"distance_km,omitempty"`
}

func NewBookDirected(
	repo domain.Repository,
	notify notify.Sink,
) *BookDirected {
	return &BookDirected{
		repo:   repo,
		notify: notify,
	}
}

func (uc *BookDirected) Execute(
	ctx context.Context,
	in domain.BookDirectedInput,
) (*BookDirectedResult, error) {

	// --------------------------------------------------
	// Company + open day
	// --------------------------------------------------
	company, err := uc.repo.GetCompanyByID(ctx, in.CompanyID)
	if err != nil {
		return nil, httperr.ErrBusiness("company_not_found")
	}

	service, ok := domain.ParseServiceType(in.ServiceType)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_service_type")
	}
	if !company.ServiceEnabled(string(service)) {
		return nil, httperr.ErrBusiness("service_disabled")
	}

	loc := timezone.Location(company.Timezone)
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.StartTime, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.EndTime, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if end.Before(start) {
		// interval crosses midnight
		end = end.AddDate(0, 0, 1)
	}
	if end.Equal(start) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !company.IsOpenOn(start.Weekday()) {
		return nil, httperr.ErrBusiness("closed_day")
	}

	now := timezone.NowIn(company.Timezone)
	if err := checkBookingWindow(company, start, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Stall: existence, service type, same-day condition
	// --------------------------------------------------
	stall, err := uc.repo.GetStall(ctx, in.CompanyID, in.StallID)
	if err != nil {
		return nil, httperr.ErrBusiness("stall_not_found")
	}
	if stall.ServiceType != string(service) {
		return nil, httperr.ErrBusiness("service_mismatch")
	}

	sameDay := start.Year() == now.Year() && start.YearDay() == now.YearDay()
	if sameDay {
		status, _ := domain.ParseStallStatus(stall.Status)
		if status != domain.StallAvailable {
			return nil, httperr.ErrBusiness("stall_unavailable")
		}
	}

	// --------------------------------------------------
	// Trailer: existence, membership, operating hours
	// --------------------------------------------------
	trailer, err := uc.repo.GetTrailer(ctx, in.CompanyID, in.TrailerID)
	if err != nil {
		return nil, httperr.ErrBusiness("trailer_not_found")
	}
	if stall.TrailerID != trailer.ID {
		return nil, httperr.ErrBusiness("stall_not_in_trailer")
	}

	openHM, closeHM := trailer.Hours(company)
	if !domain.IsWithinHours(openHM, closeHM, start, end) {
		return nil, httperr.ErrBusiness("outside_operating_hours")
	}

	// --------------------------------------------------
	// Conflict-guarded insert
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference:   uuid.NewString(),
		UserID:      in.UserID,
		CompanyID:   in.CompanyID,
		TrailerID:   trailer.ID,
		StallID:     stall.ID,
		ServiceType: string(service),
		StartTime:   start,
		EndTime:     end,
		DurationMin: int(end.Sub(start) / time.Minute),
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	// Same-day bookings claim the stall immediately.
	if sameDay {
		if err := uc.repo.UpdateStallStatus(ctx, stall.ID, domain.StallInUse); err != nil {
			// stall condition and bookings are separate concerns; the
			// appointment stands even if the flag write fails
			uc.notify.Dispatch(notify.Event{
				UserID:    in.UserID,
				CompanyID: in.CompanyID,
				Message:   "Stall status could not be updated for booking " + ap.Reference + ".",
				Type:      notify.TypeError,
			})
		}
	}

	uc.notify.Dispatch(notify.Event{
		UserID:    in.UserID,
		CompanyID: in.CompanyID,
		Message:   "Your " + string(service) + " appointment is booked for " + start.Format("Jan 2 at 3:04 PM") + ".",
		Type:      notify.TypeInfo,
	})

	result := &BookDirectedResult{Appointment: ap}
	if in.UserLocation != nil {
		d := geo.DistanceKm(*in.UserLocation, geo.Coordinate{
			Lat: trailer.Latitude,
			Lng: trailer.Longitude,
		})
		result.DistanceKm = &d
	}
	return result, nil
}
