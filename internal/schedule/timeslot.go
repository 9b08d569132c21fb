package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotIntervalMin is the grid granularity used everywhere a day is rendered
// as slot labels.
const SlotIntervalMin = 30

const minutesPerDay = 24 * 60

// ParseClock converts "15:04", "3:04 PM" or "3:04PM" to minutes since
// midnight. Malformed input yields ok=false.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)

	meridiem := ""
	upper := strings.ToUpper(s)
	for _, suffix := range []string{" AM", " PM", "AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = strings.TrimSpace(suffix)
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}

	switch meridiem {
	case "PM":
		if h < 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}

	return h*60 + m, true
}

func formatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateTimeSlots produces the fixed-interval slot labels from start up to
// and including the last label not past end, both "15:04". An end bound
// numerically earlier than the start means the window spans midnight and the
// labels roll over without gap or duplication.
func GenerateTimeSlots(start, end string) []string {
	startMin, ok1 := ParseClock(start)
	endMin, ok2 := ParseClock(end)
	if !ok1 || !ok2 {
		return nil
	}

	if endMin < startMin {
		endMin += minutesPerDay
	}

	var slots []string
	for cur := startMin; cur <= endMin; cur += SlotIntervalMin {
		slots = append(slots, formatClock(cur))
	}
	return slots
}

// ClosestSlotIndex returns the index of the slot nearest to now by absolute
// minute-of-day distance. Ties resolve to the earliest candidate. Returns -1
// for an empty slice or malformed now.
func ClosestSlotIndex(slots []string, now string) int {
	nowMin, ok := ParseClock(now)
	if !ok {
		return -1
	}

	best := -1
	bestDist := minutesPerDay + 1
	for i, slot := range slots {
		slotMin, ok := ParseClock(slot)
		if !ok {
			continue
		}
		dist := slotMin - nowMin
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// To24Hour converts "3:04 PM" to "15:04". Already-24-hour input passes
// through unchanged (idempotent). Malformed input is returned as-is.
func To24Hour(s string) string {
	minutes, ok := ParseClock(s)
	if !ok {
		return s
	}
	return formatClock(minutes)
}

// To12Hour converts "15:04" to "3:04 PM".
func To12Hour(s string) string {
	minutes, ok := ParseClock(s)
	if !ok {
		return s
	}

	h := minutes / 60
	m := minutes % 60

	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	if h == 0 {
		h = 12
	} else if h > 12 {
		h -= 12
	}

	return fmt.Sprintf("%d:%02d %s", h, m, meridiem)
}

// AddMinutes offsets a clock label, wrapping across midnight. The result is
// always canonical 24-hour form regardless of the input format.
func AddMinutes(s string, minutes int) string {
	base, ok := ParseClock(s)
	if !ok {
		return s
	}
	return formatClock(base + minutes)
}
