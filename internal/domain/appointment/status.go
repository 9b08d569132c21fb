package appointment

import (
	"strings"

	"github.com/NomadRelief/stall-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusMissed     Status = "missed"

	// StatusCheckedIn exists in the stored vocabulary but no transition
	// produces it. Kept so rows carrying it still parse.
	StatusCheckedIn Status = "checked_in"
)

// ===============================
// Stall Status
// ===============================

type StallStatus string

const (
	StallAvailable     StallStatus = "available"
	StallInUse         StallStatus = "in_use"
	StallNeedsCleaning StallStatus = "needs_cleaning"
	StallRefreshing    StallStatus = "refreshing"
	StallOutOfOrder    StallStatus = "out_of_order"
)

// ===============================
// Normalization boundary
// ===============================

// ParseStatus maps legacy hyphenated spellings onto the canonical form.
// Business logic only ever sees canonical values.
func ParseStatus(s string) (Status, bool) {
	switch normalize(s) {
	case "scheduled":
		return StatusScheduled, true
	case "in_progress":
		return StatusInProgress, true
	case "completed":
		return StatusCompleted, true
	case "cancelled", "canceled":
		return StatusCancelled, true
	case "missed":
		return StatusMissed, true
	case "checked_in":
		return StatusCheckedIn, true
	}
	return "", false
}

func ParseStallStatus(s string) (StallStatus, bool) {
	switch normalize(s) {
	case "available":
		return StallAvailable, true
	case "in_use":
		return StallInUse, true
	case "needs_cleaning":
		return StallNeedsCleaning, true
	case "refreshing":
		return StallRefreshing, true
	case "out_of_order":
		return StallOutOfOrder, true
	}
	return "", false
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// ===============================
// Transitions
// ===============================

// CanTransition reports whether an admin-driven move between states is legal.
// Terminal states have no outgoing edges; missed is assigned only by the
// archival sweep, never by a caller.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusScheduled:
		return to == StatusInProgress || to == StatusCompleted || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

func CanStart(current Status) error {
	if !CanTransition(current, StatusInProgress) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !CanTransition(current, StatusCompleted) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !CanTransition(current, StatusCancelled) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusMissed
}

// IsLive reports whether the appointment still occupies its stall interval.
func (s Status) IsLive() bool {
	return s == StatusScheduled || s == StatusInProgress
}
