package appointment

import (
	"time"

	"github.com/NomadRelief/stall-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Start(ap *models.Appointment, now time.Time) error {
	current, _ := ParseStatus(ap.Status)
	if err := CanStart(current); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	ap.UpdatedAt = now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	current, _ := ParseStatus(ap.Status)
	if err := CanComplete(current); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	current, _ := ParseStatus(ap.Status)
	if err := CanCancel(current); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
