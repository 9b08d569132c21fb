package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/NomadRelief/stall-scheduler/internal/domain/appointment"
	"github.com/NomadRelief/stall-scheduler/internal/httperr"
	"github.com/NomadRelief/stall-scheduler/internal/models"
)

func seedScheduled(repo *fakeRepo) uint {
	start := time.Now().UTC().Add(time.Hour).Truncate(time.Minute)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID: 1, Reference: "ref-1", UserID: 7, CompanyID: 1,
		TrailerID: 1, StallID: 10, ServiceType: "shower",
		StartTime: start, EndTime: start.Add(30 * time.Minute),
		DurationMin: 30, Status: "scheduled",
	})
	repo.nextID = 2
	return 1
}

func TestTransitionLifecycle(t *testing.T) {
	repo := twoTrailerRepo()
	id := seedScheduled(repo)
	sink := &recordingSink{}
	uc := NewTransition(repo, sink)

	ap, err := uc.Start(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if ap.Status != "in_progress" {
		t.Errorf("status after start = %q, want in_progress", ap.Status)
	}
	if repo.stallStatus[10] != domain.StallInUse {
		t.Errorf("stall status = %q, want in_use", repo.stallStatus[10])
	}

	ap, err = uc.Complete(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ap.Status != "completed" {
		t.Errorf("status after complete = %q, want completed", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Error("CompletedAt not stamped")
	}
	if repo.stallStatus[10] != domain.StallNeedsCleaning {
		t.Errorf("stall status = %q, want needs_cleaning", repo.stallStatus[10])
	}

	// Completed is terminal.
	if _, err := uc.Cancel(context.Background(), 1, id); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("cancel after complete err = %v, want invalid_state", err)
	}
	if _, err := uc.Start(context.Background(), 1, id); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("start after complete err = %v, want invalid_state", err)
	}
}

func TestTransitionCancelFreesStall(t *testing.T) {
	repo := twoTrailerRepo()
	id := seedScheduled(repo)
	uc := NewTransition(repo, &recordingSink{})

	ap, err := uc.Cancel(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.Status != "cancelled" {
		t.Errorf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Error("CancelledAt not stamped")
	}
	if repo.stallStatus[10] != domain.StallAvailable {
		t.Errorf("stall status = %q, want available", repo.stallStatus[10])
	}
}

func TestTransitionScopedToCompany(t *testing.T) {
	repo := twoTrailerRepo()
	id := seedScheduled(repo)
	uc := NewTransition(repo, &recordingSink{})

	// Company check happens first; an unknown company never sees the row.
	if _, err := uc.Start(context.Background(), 2, id); err == nil {
		t.Error("start under another company must fail")
	}
}
