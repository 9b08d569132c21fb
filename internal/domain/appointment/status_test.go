package appointment

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"scheduled", StatusScheduled, true},
		{"in_progress", StatusInProgress, true},
		{"in-progress", StatusInProgress, true},
		{"IN-PROGRESS", StatusInProgress, true},
		{"  completed ", StatusCompleted, true},
		{"cancelled", StatusCancelled, true},
		{"canceled", StatusCancelled, true},
		{"missed", StatusMissed, true},
		{"checked-in", StatusCheckedIn, true},
		{"checked_in", StatusCheckedIn, true},
		{"pending", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseStatus(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseStallStatus(t *testing.T) {
	cases := []struct {
		in   string
		want StallStatus
		ok   bool
	}{
		{"available", StallAvailable, true},
		{"in-use", StallInUse, true},
		{"needs-cleaning", StallNeedsCleaning, true},
		{"Out_Of_Order", StallOutOfOrder, true},
		{"refreshing", StallRefreshing, true},
		{"occupied", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseStallStatus(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseStallStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusScheduled:  {StatusInProgress, StatusCompleted, StatusCancelled},
		StatusInProgress: {StatusCompleted, StatusCancelled},
	}
	all := []Status{
		StatusScheduled, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusMissed, StatusCheckedIn,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCheckedInIsDead(t *testing.T) {
	// checked_in rows still parse but have no outgoing transitions and do
	// not occupy a stall interval.
	if ap, ok := ParseStatus("checked_in"); !ok || ap != StatusCheckedIn {
		t.Fatal("checked_in must remain parseable")
	}
	if StatusCheckedIn.IsLive() {
		t.Error("checked_in must not count as live")
	}
	if StatusCheckedIn.IsTerminal() {
		t.Error("checked_in is dead, not terminal")
	}
	if err := CanStart(StatusCheckedIn); err == nil {
		t.Error("checked_in must not start")
	}
}

func TestTerminalGuards(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusMissed} {
		if !s.IsTerminal() {
			t.Errorf("%s must be terminal", s)
		}
		if err := CanStart(s); err == nil {
			t.Errorf("CanStart(%s) must fail", s)
		}
		if err := CanComplete(s); err == nil {
			t.Errorf("CanComplete(%s) must fail", s)
		}
		if err := CanCancel(s); err == nil {
			t.Errorf("CanCancel(%s) must fail", s)
		}
	}
	if err := CanCancel(StatusScheduled); err != nil {
		t.Errorf("CanCancel(scheduled) = %v, want nil", err)
	}
	if err := CanComplete(StatusInProgress); err != nil {
		t.Errorf("CanComplete(in_progress) = %v, want nil", err)
	}
}
