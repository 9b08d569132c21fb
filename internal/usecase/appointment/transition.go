package appointment

import (
	"context"
	"time"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"github.com/NomadRelief/stall-scheduler/internal/notify"
	"github.com/NomadRelief/stall-scheduler/internal/timezone"
)

// ======================================================
// LIFECYCLE TRANSITIONS
// ======================================================

// Transition drives the admin-facing lifecycle moves. One usecase covers
// start/complete/cancel; the domain actions enforce the state machine, and
// each persisted move carries its stall side effect and a user notification.
type Transition struct {
	repo   domain.Repository
	notify notify.Sink
}

func NewTransition(
	repo domain.Repository,
	notify notify.Sink,
) *Transition {
	return &Transition{
		repo:   repo,
		notify: notify,
	}
}

func (uc *Transition) Start(
	ctx context.Context,
	companyID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.apply(ctx, companyID, appointmentID, domain.Start,
		"Your appointment is now in progress.", notify.TypeInfo, domain.StallInUse)
}

func (uc *Transition) Complete(
	ctx context.Context,
	companyID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.apply(ctx, companyID, appointmentID, domain.Complete,
		"Your appointment was completed. Thank you!", notify.TypeSuccess, domain.StallNeedsCleaning)
}

func (uc *Transition) Cancel(
	ctx context.Context,
	companyID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.apply(ctx, companyID, appointmentID, domain.Cancel,
		"Your appointment was cancelled.", notify.TypeError, domain.StallAvailable)
}

func (uc *Transition) apply(
	ctx context.Context,
	companyID uint,
	appointmentID uint,
	action func(*models.Appointment, time.Time) error,
	message string,
	kind string,
	stallStatus domain.StallStatus,
) (*models.Appointment, error) {

	company, err := uc.repo.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForCompany(ctx, appointmentID, companyID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(company.Timezone)
	if err := action(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Stall condition is a side effect, never a reason to fail the move.
	if err := uc.repo.UpdateStallStatus(ctx, ap.StallID, stallStatus); err != nil {
		uc.notify.Dispatch(notify.Event{
			UserID:    ap.UserID,
			CompanyID: companyID,
			Message:   "Stall status could not be updated for appointment " + ap.Reference + ".",
			Type:      notify.TypeError,
		})
	}

	uc.notify.Dispatch(notify.Event{
		UserID:    ap.UserID,
		CompanyID: companyID,
		Message:   message,
		Type:      kind,
	})

	return ap, nil
}
