package appointment

import (
	"testing"
	"time"

	"github.com/NomadRelief/stall-scheduler/internal/models"
)

func at(hm string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", "2026-03-02 "+hm)
	return t
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "09:00", "09:30", "09:00", "09:30", true},
		{"partial", "09:15", "09:45", "09:00", "09:30", true},
		{"contained", "09:10", "09:20", "09:00", "09:30", true},
		{"one minute", "09:29", "09:59", "09:00", "09:30", true},
		{"touching end-start", "09:30", "10:00", "09:00", "09:30", false},
		{"touching start-end", "08:30", "09:00", "09:00", "09:30", false},
		{"disjoint", "11:00", "11:30", "09:00", "09:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(at(tc.aStart), at(tc.aEnd), at(tc.bStart), at(tc.bEnd))
			if got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsStallFree(t *testing.T) {
	existing := []models.Appointment{
		{StallID: 1, Status: "scheduled", StartTime: at("09:00"), EndTime: at("09:30")},
		{StallID: 2, Status: "scheduled", StartTime: at("10:00"), EndTime: at("10:30")},
		{StallID: 1, Status: "cancelled", StartTime: at("11:00"), EndTime: at("11:30")},
		{StallID: 1, Status: "in-progress", StartTime: at("13:00"), EndTime: at("13:30")},
	}

	if IsStallFree(1, at("09:15"), at("09:45"), existing) {
		t.Error("overlap with a scheduled appointment must not be free")
	}
	if !IsStallFree(1, at("09:30"), at("10:00"), existing) {
		t.Error("interval starting exactly at an existing end must be free")
	}
	if !IsStallFree(1, at("10:00"), at("10:30"), existing) {
		t.Error("another stall's appointment must not block this one")
	}
	if !IsStallFree(1, at("11:00"), at("11:30"), existing) {
		t.Error("cancelled appointments must not block the interval")
	}
	if IsStallFree(1, at("13:15"), at("13:45"), existing) {
		t.Error("in-progress (legacy spelling) must still block the interval")
	}
}

func TestIsWithinHours(t *testing.T) {
	cases := []struct {
		name       string
		open, clos string
		start, end string
		want       bool
	}{
		{"inside", "09:00", "17:00", "10:00", "10:30", true},
		{"at bounds", "09:00", "17:00", "09:00", "17:00", true},
		{"before open", "09:00", "17:00", "08:30", "09:00", false},
		{"past close", "09:00", "17:00", "16:45", "17:15", false},
		{"overnight window", "22:00", "02:00", "23:00", "23:30", true},
		{"empty hours", "", "17:00", "10:00", "10:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsWithinHours(tc.open, tc.clos, at(tc.start), at(tc.end))
			if got != tc.want {
				t.Errorf("IsWithinHours = %v, want %v", got, tc.want)
			}
		})
	}
}
