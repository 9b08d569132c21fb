package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	histdomain "github.com/NomadRelief/stall-scheduler/internal/domain/history"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/notify"
	"github.com/NomadRelief/stall-scheduler/internal/timezone"
)

// ======================================================
// ARCHIVAL SWEEP
// ======================================================

// Sweep scans the live table for scheduled appointments that belong in
// history and moves them there as one atomic batch. Running it again with no
// time passing archives nothing: the first run already deleted every
// qualifying row.
type Sweep struct {
	repo   domain.Repository
	notify notify.Sink

	// overridable for tests
	now func() time.Time
}

func NewSweep(
	repo domain.Repository,
	notify notify.Sink,
) *Sweep {
	return &Sweep{
		repo:   repo,
		notify: notify,
		now:    timezone.Now,
	}
}

func (uc *Sweep) Execute(ctx context.Context) (int, error) {

	live, err := uc.repo.ListScheduledAppointments(ctx)
	if err != nil {
		return 0, err
	}

	now := uc.now()
	batchID := uuid.NewString()

	var archived []models.HistoricalAppointment
	var liveIDs []uint

	for i := range live {
		ap := &live[i]
		if !histdomain.ShouldArchive(ap, now) {
			continue
		}

		archived = append(archived, models.HistoricalAppointment{
			OriginalID:       ap.ID,
			BatchID:          batchID,
			UserID:           ap.UserID,
			CompanyID:        ap.CompanyID,
			TrailerID:        ap.TrailerID,
			StallID:          ap.StallID,
			ServiceType:      ap.ServiceType,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			DurationMin:      ap.DurationMin,
			Status:           string(histdomain.ArchivedStatus(ap)),
			Reason:           string(histdomain.ClassifyReason(ap, now)),
			Notes:            ap.Notes,
			MovedToHistoryAt: now,
			CreatedAt:        ap.CreatedAt,
		})
		liveIDs = append(liveIDs, ap.ID)
	}

	if len(archived) == 0 {
		return 0, nil
	}

	if err := uc.repo.ArchiveAppointments(ctx, archived, liveIDs); err != nil {
		return 0, err
	}

	for i := range archived {
		if archived[i].Reason != string(histdomain.ReasonMissed) {
			continue
		}
		uc.notify.Dispatch(notify.Event{
			UserID:    archived[i].UserID,
			CompanyID: archived[i].CompanyID,
			Message:   "You missed your " + archived[i].ServiceType + " appointment on " + archived[i].StartTime.Format("Jan 2") + ".",
			Type:      notify.TypeInfo,
		})
	}

	return len(archived), nil
}
