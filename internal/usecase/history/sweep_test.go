package history

import (
	"context"
	"sync"
	"testing"
	"time"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/notify"
)

// sweepRepo is a minimal in-memory Repository; only the sweep path is live.
type sweepRepo struct {
	appointments []models.Appointment
	history      []models.HistoricalAppointment
}

var _ domain.Repository = (*sweepRepo)(nil)

func (r *sweepRepo) ListScheduledAppointments(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status == "scheduled" {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *sweepRepo) ArchiveAppointments(_ context.Context, archived []models.HistoricalAppointment, liveIDs []uint) error {
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

func (r *sweepRepo) GetCompanyByID(context.Context, uint) (*models.Company, error) { return nil, nil }
func (r *sweepRepo) GetTrailer(context.Context, uint, uint) (*models.Trailer, error) {
	return nil, nil
}
func (r *sweepRepo) ListTrailers(context.Context, uint) ([]models.Trailer, error) { return nil, nil }
func (r *sweepRepo) GetStall(context.Context, uint, uint) (*models.Stall, error)  { return nil, nil }
func (r *sweepRepo) ListStalls(context.Context, uint) ([]models.Stall, error)     { return nil, nil }
func (r *sweepRepo) UpdateStallStatus(context.Context, uint, domain.StallStatus) error {
	return nil
}
func (r *sweepRepo) CreateAppointmentIfFree(context.Context, *models.Appointment) error { return nil }
func (r *sweepRepo) GetAppointmentForCompany(context.Context, uint, uint) (*models.Appointment, error) {
	return nil, nil
}
func (r *sweepRepo) UpdateAppointment(context.Context, *models.Appointment) error { return nil }
func (r *sweepRepo) ListAppointmentsForDay(context.Context, uint, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (r *sweepRepo) ListHistory(context.Context, uint, time.Time, time.Time) ([]models.HistoricalAppointment, error) {
	return r.history, nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []notify.Event
}

func (s *recordingSink) Dispatch(ev notify.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func scheduledAt(id uint, end time.Time) models.Appointment {
	return models.Appointment{
		ID: id, UserID: 7, CompanyID: 1, TrailerID: 1, StallID: 10,
		ServiceType: "shower", Status: "scheduled",
		StartTime: end.Add(-30 * time.Minute), EndTime: end,
	}
}

func TestSweepArchivesLapsedScheduled(t *testing.T) {
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := &sweepRepo{appointments: []models.Appointment{
		scheduledAt(1, clock.Add(-2*time.Hour)),
		scheduledAt(2, clock.Add(2*time.Hour)),
	}}
	sink := &recordingSink{}

	uc := NewSweep(repo, sink)
	uc.now = func() time.Time { return clock }

	n, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n != 1 {
		t.Fatalf("archived %d rows, want 1", n)
	}
	if len(repo.appointments) != 1 || repo.appointments[0].ID != 2 {
		t.Fatalf("live table = %+v, want only appointment 2", repo.appointments)
	}

	row := repo.history[0]
	if row.OriginalID != 1 {
		t.Errorf("original_id = %d, want 1", row.OriginalID)
	}
	if row.Status != "missed" || row.Reason != "missed" {
		t.Errorf("archived as status=%q reason=%q, want missed/missed", row.Status, row.Reason)
	}
	if row.BatchID == "" {
		t.Error("batch_id not set")
	}
	if !row.MovedToHistoryAt.Equal(clock) {
		t.Errorf("moved_to_history_at = %v, want %v", row.MovedToHistoryAt, clock)
	}

	if len(sink.events) != 1 || sink.events[0].UserID != 7 {
		t.Errorf("events = %+v, want one missed notification for user 7", sink.events)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := &sweepRepo{appointments: []models.Appointment{
		scheduledAt(1, clock.Add(-2 * time.Hour)),
		scheduledAt(2, clock.Add(-1 * time.Hour)),
	}}

	uc := NewSweep(repo, &recordingSink{})
	uc.now = func() time.Time { return clock }

	n, err := uc.Execute(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("first run = (%d, %v), want (2, nil)", n, err)
	}

	n, err = uc.Execute(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("second run = (%d, %v), want (0, nil)", n, err)
	}
	if len(repo.history) != 2 {
		t.Fatalf("history has %d rows, want 2", len(repo.history))
	}
	if repo.history[0].BatchID != repo.history[1].BatchID {
		t.Error("rows archived in one run must share a batch id")
	}
}

func TestSweepLeavesFutureAlone(t *testing.T) {
	clock := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := &sweepRepo{appointments: []models.Appointment{
		scheduledAt(1, clock.Add(time.Hour)),
	}}

	uc := NewSweep(repo, &recordingSink{})
	uc.now = func() time.Time { return clock }

	n, err := uc.Execute(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("Execute = (%d, %v), want (0, nil)", n, err)
	}
	if len(repo.history) != 0 {
		t.Errorf("history has %d rows, want 0", len(repo.history))
	}
}
