package appointment

import (
	"time"

	"github.com/NomadRelief/stall-scheduler/internal/models"
)

// Overlaps is the half-open interval test: [aStart,aEnd) and [bStart,bEnd)
// collide when each starts before the other ends. Touching boundaries
// (aEnd == bStart) do not collide.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsStallFree reports whether the candidate interval is free on the given
// stall, judged against the supplied appointment list. Only live appointments
// (scheduled, in_progress) block the interval; cancelled and other terminal
// rows never do. A slot must never be reported free when it truly overlaps a
// live appointment.
func IsStallFree(
	stallID uint,
	start time.Time,
	end time.Time,
	existing []models.Appointment,
) bool {

	for i := range existing {
		ap := &existing[i]
		if ap.StallID != stallID {
			continue
		}
		status, ok := ParseStatus(ap.Status)
		if !ok || !status.IsLive() {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return false
		}
	}
	return true
}

// IsWithinHours checks operating-hour containment for a trailer window
// expressed as "15:04" bounds on the candidate's own day.
func IsWithinHours(openHM, closeHM string, start, end time.Time) bool {
	if openHM == "" || closeHM == "" {
		return false
	}
	loc := start.Location()

	parseHM := func(hm string) time.Time {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}
		}
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	windowStart := parseHM(openHM)
	windowEnd := parseHM(closeHM)
	if windowStart.IsZero() || windowEnd.IsZero() {
		return false
	}

	// An end bound numerically earlier than the start means the window
	// spans midnight.
	if windowEnd.Before(windowStart) || windowEnd.Equal(windowStart) {
		windowEnd = windowEnd.AddDate(0, 0, 1)
	}

	return !start.Before(windowStart) && !end.After(windowEnd)
}
