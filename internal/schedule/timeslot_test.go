package schedule

import (
	"reflect"
	"testing"
)

func TestGenerateTimeSlots(t *testing.T) {
	got := GenerateTimeSlots("09:00", "10:00")
	want := []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateTimeSlots(09:00, 10:00) = %v, want %v", got, want)
	}
}

func TestGenerateTimeSlotsEndNotOnGrid(t *testing.T) {
	got := GenerateTimeSlots("09:00", "10:15")
	want := []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateTimeSlots(09:00, 10:15) = %v, want %v", got, want)
	}
}

func TestGenerateTimeSlotsOvernight(t *testing.T) {
	got := GenerateTimeSlots("23:00", "01:00")
	want := []string{"23:00", "23:30", "00:00", "00:30", "01:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateTimeSlots(23:00, 01:00) = %v, want %v", got, want)
	}

	seen := map[string]bool{}
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate slot %q in overnight window", s)
		}
		seen[s] = true
	}
}

func TestGenerateTimeSlotsMalformed(t *testing.T) {
	if got := GenerateTimeSlots("nonsense", "10:00"); got != nil {
		t.Errorf("expected nil for malformed start, got %v", got)
	}
}

func TestClosestSlotIndex(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00"}

	cases := []struct {
		now  string
		want int
	}{
		{"09:00", 0},
		{"09:10", 0},
		{"09:16", 1},
		{"09:45", 1}, // tie with 10:00 resolves to the earlier slot
		{"11:00", 2},
	}

	for _, tc := range cases {
		if got := ClosestSlotIndex(slots, tc.now); got != tc.want {
			t.Errorf("ClosestSlotIndex(%q) = %d, want %d", tc.now, got, tc.want)
		}
	}

	if got := ClosestSlotIndex(nil, "09:00"); got != -1 {
		t.Errorf("ClosestSlotIndex(nil) = %d, want -1", got)
	}
}

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"3:04 PM", "15:04"},
		{"3:04PM", "15:04"},
		{"12:00 AM", "00:00"},
		{"12:30 PM", "12:30"},
		{"15:04", "15:04"}, // idempotent
		{"garbage", "garbage"},
	}

	for _, tc := range cases {
		if got := To24Hour(tc.in); got != tc.want {
			t.Errorf("To24Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"15:04", "3:04 PM"},
		{"00:15", "12:15 AM"},
		{"12:00", "12:00 PM"},
		{"09:05", "9:05 AM"},
	}

	for _, tc := range cases {
		if got := To12Hour(tc.in); got != tc.want {
			t.Errorf("To12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		want    string
	}{
		{"09:00", 30, "09:30"},
		{"23:45", 30, "00:15"}, // wraps past midnight
		{"3:00 PM", 90, "16:30"},
		{"00:30", -60, "23:30"},
	}

	for _, tc := range cases {
		if got := AddMinutes(tc.in, tc.minutes); got != tc.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tc.in, tc.minutes, got, tc.want)
		}
	}
}
