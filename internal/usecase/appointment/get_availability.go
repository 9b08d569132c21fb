package appointment

import (
	"context"
	"time"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/schedule"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists the free slot labels for every stall matching the requested
// service on the given day. Slots step at the stall's own duration over the
// trailer's effective hours.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.StallAvailability, error) {

	company, err := uc.repo.GetCompanyByID(ctx, in.CompanyID)
	if err != nil {
		return nil, httperr.ErrBusiness("company_not_found")
	}

	if !company.IsOpenOn(in.Date.Weekday()) {
		return []domain.StallAvailability{}, nil
	}

	trailers, err := uc.repo.ListTrailers(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	stalls, err := uc.repo.ListStalls(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.CompanyID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	hoursByTrailer := make(map[uint][2]string, len(trailers))
	for i := range trailers {
		open, close := trailers[i].Hours(company)
		hoursByTrailer[trailers[i].ID] = [2]string{open, close}
	}

	out := make([]domain.StallAvailability, 0, len(stalls))
	for _, stall := range stalls {
		if in.ServiceType != "" && stall.ServiceType != in.ServiceType {
			continue
		}

		hours, ok := hoursByTrailer[stall.TrailerID]
		if !ok {
			continue
		}

		avail := domain.StallAvailability{
			StallID:   stall.ID,
			StallName: stall.Name,
			TrailerID: stall.TrailerID,
			Slots:     []domain.TimeSlot{},
		}

		for _, label := range schedule.GenerateTimeSlots(hours[0], hours[1]) {
			startMin, _ := schedule.ParseClock(label)
			slotStart := dayStart.Add(time.Duration(startMin) * time.Minute)
			slotEnd := slotStart.Add(time.Duration(stall.DurationMin) * time.Minute)

			if !domain.IsWithinHours(hours[0], hours[1], slotStart, slotEnd) {
				continue
			}
			if !domain.IsStallFree(stall.ID, slotStart, slotEnd, existing) {
				continue
			}

			avail.Slots = append(avail.Slots, domain.TimeSlot{
				Start: label,
				End:   schedule.AddMinutes(label, stall.DurationMin),
			})
		}

		out = append(out, avail)
	}

	return out, nil
}
