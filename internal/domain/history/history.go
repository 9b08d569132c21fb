package history

import (
	"time"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/models"
)

// Reason codes recorded on archived rows.
type Reason string

const (
	ReasonCompleted Reason = "completed"
	ReasonCancelled Reason = "cancelled"
	ReasonMissed    Reason = "missed"
	ReasonPastDate  Reason = "past_date"
)

// ShouldArchive reports whether the appointment belongs in history as of now:
// its end instant is past, or it already reached a terminal state. The sweep
// only queries scheduled rows, but the predicate covers terminal statuses so
// other call sites can reuse it.
func ShouldArchive(ap *models.Appointment, now time.Time) bool {
	status, _ := domain.ParseStatus(ap.Status)
	if status == domain.StatusCompleted || status == domain.StatusCancelled {
		return true
	}
	return ap.EndTime.Before(now)
}

// ClassifyReason picks the archival reason for a qualifying appointment.
// A lapsed but still-scheduled appointment is a missed one.
func ClassifyReason(ap *models.Appointment, now time.Time) Reason {
	status, _ := domain.ParseStatus(ap.Status)
	switch status {
	case domain.StatusCompleted:
		return ReasonCompleted
	case domain.StatusCancelled:
		return ReasonCancelled
	case domain.StatusScheduled, domain.StatusInProgress:
		if ap.EndTime.Before(now) {
			return ReasonMissed
		}
	}
	return ReasonPastDate
}

// ArchivedStatus normalizes the stored status: an appointment that lapsed
// while still scheduled is archived as missed.
func ArchivedStatus(ap *models.Appointment) domain.Status {
	status, _ := domain.ParseStatus(ap.Status)
	if status == domain.StatusScheduled || status == domain.StatusInProgress {
		return domain.StatusMissed
	}
	return status
}
