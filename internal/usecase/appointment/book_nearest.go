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
// BOOK NEAREST
// ======================================================

// BookNearest picks the stall for a booking request automatically: trailers
// ordered by distance from the user when a location is given, stalls in
// declaration order within each trailer, first free matching stall wins.
// Manual stall status is deliberately ignored on this path; only the
// appointment overlap decides.
type BookNearest struct {
	repo   domain.Repository
	notify notify.Sink
}

type BookNearestResult struct {
	Appointment *models.Appointment `json:"appointment"`
	Stall       *models.Stall       `json:"stall"`
	Trailer     *models.Trailer     `json:"trailer"`
	DistanceKm  *float64            `json:"distance_km,omitempty"`
}

func NewBookNearest(
	repo domain.Repository,
	notify notify.Sink,
) *BookNearest {
	return &BookNearest{
		repo:   repo,
		notify: notify,
	}
}

func (uc *BookNearest) Execute(
	ctx context.Context,
	in domain.BookNearestInput,
) (*BookNearestResult, error) {

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
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !company.IsOpenOn(start.Weekday()) {
		return nil, httperr.ErrBusiness("closed_day")
	}

	now := timezone.NowIn(company.Timezone)
	if err := checkBookingWindow(company, start, now); err != nil {
		return nil, err
	}

	trailers, err := uc.repo.ListTrailers(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if len(trailers) == 0 {
		return nil, httperr.ErrBusiness("no_available_stall")
	}

	stalls, err := uc.repo.ListStalls(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.CompanyID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	if in.UserLocation != nil {
		origin := *in.UserLocation
		geo.SortByDistance(trailers, origin, func(t models.Trailer) geo.Coordinate {
			return geo.Coordinate{Lat: t.Latitude, Lng: t.Longitude}
		})
	}

	stallsByTrailer := make(map[uint][]models.Stall, len(trailers))
	for _, st := range stalls {
		stallsByTrailer[st.TrailerID] = append(stallsByTrailer[st.TrailerID], st)
	}

	for ti := range trailers {
		trailer := &trailers[ti]
		openHM, closeHM := trailer.Hours(company)

		for _, stall := range stallsByTrailer[trailer.ID] {
			if stall.ServiceType != string(service) {
				continue
			}

			end := start.Add(time.Duration(stall.DurationMin) * time.Minute)

			if !domain.IsWithinHours(openHM, closeHM, start, end) {
				continue
			}
			if !domain.IsStallFree(stall.ID, start, end, existing) {
				continue
			}

			ap := &models.Appointment{
				Reference:   uuid.NewString(),
				UserID:      in.UserID,
				CompanyID:   in.CompanyID,
				TrailerID:   trailer.ID,
				StallID:     stall.ID,
				ServiceType: string(service),
				StartTime:   start,
				EndTime:     end,
				DurationMin: stall.DurationMin,
				Status:      string(domain.InitialStatus()),
				Notes:       in.Notes,
			}

			if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
				if httperr.IsBusiness(err, "time_conflict") {
					// lost a race for this stall; keep scanning
					continue
				}
				return nil, err
			}

			uc.notify.Dispatch(notify.Event{
				UserID:    in.UserID,
				CompanyID: in.CompanyID,
				Message:   "Your " + string(service) + " appointment is booked for " + start.Format("Jan 2 at 3:04 PM") + ".",
				Type:      notify.TypeInfo,
			})

			result := &BookNearestResult{
				Appointment: ap,
				Stall:       &stall,
				Trailer:     trailer,
			}
			if in.UserLocation != nil {
				d := geo.DistanceKm(*in.UserLocation, geo.Coordinate{
					Lat: trailer.Latitude,
					Lng: trailer.Longitude,
				})
				result.DistanceKm = &d
			}
			return result, nil
		}
	}

	return nil, httperr.ErrBusiness("no_available_stall")
}

// checkBookingWindow rejects bookings in the past or beyond the company's
// advance-booking horizon.
func checkBookingWindow(company *models.Company, start, now time.Time) error {
	if start.Before(now) {
		return httperr.ErrBusiness("in_the_past")
	}

	maxAdvance := company.MaxAdvanceDays
	if maxAdvance <= 0 {
		maxAdvance = 14
	}
	if start.After(now.AddDate(0, 0, maxAdvance)) {
		return httperr.ErrBusiness("too_far_ahead")
	}
	return nil
}
