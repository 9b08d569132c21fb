package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/notify"
)

// fakeRepo is an in-memory Repository for usecase tests. Conflict checking
// mirrors the production semantics: only live appointments block an interval.
type fakeRepo struct {
	mu           sync.Mutex
	company      *models.Company
	trailers     []models.Trailer
	stalls       []models.Stall
	appointments []models.Appointment
	history      []models.HistoricalAppointment
	stallStatus  map[uint]domain.StallStatus
	nextID       uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo(co *models.Company) *fakeRepo {
	return &fakeRepo{
		company:     co,
		stallStatus: make(map[uint]domain.StallStatus),
		nextID:      1,
	}
}

func (r *fakeRepo) GetCompanyByID(_ context.Context, id uint) (*models.Company, error) {
	if r.company == nil || r.company.ID != id {
		return nil, httperr.ErrBusiness("company_not_found")
	}
	return r.company, nil
}

func (r *fakeRepo) GetTrailer(_ context.Context, companyID, trailerID uint) (*models.Trailer, error) {
	for i := range r.trailers {
		if r.trailers[i].ID == trailerID && r.trailers[i].CompanyID == companyID {
			return &r.trailers[i], nil
		}
	}
	return nil, httperr.ErrBusiness("trailer_not_found")
}

func (r *fakeRepo) ListTrailers(_ context.Context, companyID uint) ([]models.Trailer, error) {
	var out []models.Trailer
	for _, t := range r.trailers {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetStall(_ context.Context, companyID, stallID uint) (*models.Stall, error) {
	for i := range r.stalls {
		if r.stalls[i].ID == stallID && r.stalls[i].CompanyID == companyID {
			return &r.stalls[i], nil
		}
	}
	return nil, httperr.ErrBusiness("stall_not_found")
}

func (r *fakeRepo) ListStalls(_ context.Context, companyID uint) ([]models.Stall, error) {
	var out []models.Stall
	for _, s := range r.stalls {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStallStatus(_ context.Context, stallID uint, status domain.StallStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stallStatus[stallID] = status
	for i := range r.stalls {
		if r.stalls[i].ID == stallID {
			r.stalls[i].Status = string(status)
		}
	}
	return nil
}

func (r *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !domain.IsStallFree(ap.StallID, ap.StartTime, ap.EndTime, r.appointments) {
		return httperr.ErrBusiness("time_conflict")
	}
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) GetAppointmentForCompany(_ context.Context, appointmentID, companyID uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID && r.appointments[i].CompanyID == companyID {
			cp := r.appointments[i]
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, companyID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.CompanyID == companyID && ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListScheduledAppointments(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status == string(domain.StatusScheduled) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ArchiveAppointments(_ context.Context, archived []models.HistoricalAppointment, liveIDs []uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, archived...)
	dead := make(map[uint]bool, len(liveIDs))
	for _, id := range liveIDs {
		dead[id] = true
	}
	kept := r.appointments[:0]
	for _, ap := range r.appointments {
		if !dead[ap.ID] {
			kept = append(kept, ap)
		}
	}
	r.appointments = kept
	return nil
}

func (r *fakeRepo) ListHistory(_ context.Context, companyID uint, from, to time.Time) ([]models.HistoricalAppointment, error) {
	var out []models.HistoricalAppointment
	for _, h := range r.history {
		if h.CompanyID == companyID && !h.StartTime.Before(from) && h.StartTime.Before(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

// recordingSink captures dispatched notification events synchronously.
type recordingSink struct {
	mu     sync.Mutex
	events []notify.Event
}

func (s *recordingSink) Dispatch(ev notify.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}
