package appointment

import (
	"reflect"
	"testing"

	"github.com/salonops/salon-manager/internal/httperr"
)

func openWeek() WeekSchedule {
	var week WeekSchedule
	for i := range week {
		week[i] = DayHours{Open: "09:00", Close: "19:00", IsOpen: true}
	}
	week[0].IsOpen = false // sunday closed
	return week
}

func TestMinutesOf(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"9h30", 0, true},
		{"", 0, true},
		{"10:75", 0, true},
		{"9:30", 0, true},
		{"09:5", 0, true},
		{"25:00", 0, true},
		{"09:305", 0, true},
		{"0a:30", 0, true},
	}

	for _, tc := range cases {
		got, err := MinutesOf(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("MinutesOf(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("MinutesOf(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("MinutesOf(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		start string
		d     int
		want  string
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:30", 60, "24:30"}, // runs past midnight, rejected downstream
	}

	for _, tc := range cases {
		got, err := AddMinutes(tc.start, tc.d)
		if err != nil {
			t.Fatalf("AddMinutes(%q, %d): %v", tc.start, tc.d, err)
		}
		if got != tc.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tc.start, tc.d, got, tc.want)
		}
	}
}

func TestValidateHours(t *testing.T) {
	week := openWeek()

	cases := []struct {
		name     string
		date     string
		start    string
		end      string
		wantCode string
	}{
		{"inside hours", "2026-09-07", "10:00", "10:45", ""},
		{"starts at open", "2026-09-07", "09:00", "09:30", ""},
		{"ends at close", "2026-09-07", "18:30", "19:00", ""},
		{"closed day", "2026-09-06", "10:00", "10:30", CodeClosedDay},
		{"before opening", "2026-09-07", "08:30", "09:00", CodeOutsideHours},
		{"starts at close", "2026-09-07", "19:00", "19:30", CodeOutsideHours},
		{"runs past closing", "2026-09-07", "18:45", "19:15", CodeExceedsClosing},
		{"bad date", "07/09/2026", "10:00", "10:30", CodeInvalidDate},
		{"unpadded minute", "2026-09-07", "09:5", "09:50", CodeInvalidTime},
		{"unpadded hour", "2026-09-07", "9:30", "10:00", CodeInvalidTime},
		{"hour out of range", "2026-09-07", "25:00", "25:30", CodeInvalidTime},
		{"malformed end", "2026-09-07", "10:00", "10:3", CodeInvalidTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateHours(week, tc.date, tc.start, tc.end)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := httperr.BusinessCode(err); got != tc.wantCode {
				t.Fatalf("code = %q, want %q", got, tc.wantCode)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		aStart, aEnd           string
		bStart, bEnd           string
		want                   bool
	}{
		{"identical", "10:00", "10:30", "10:00", "10:30", true},
		{"partial", "10:00", "11:00", "10:30", "11:30", true},
		{"contained", "10:00", "12:00", "10:30", "11:00", true},
		{"back to back", "10:00", "10:30", "10:30", "11:00", false},
		{"disjoint", "09:00", "09:30", "10:00", "10:30", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// symmetric
			if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

// A non-canonical start like "09:5" sorts after "09:30" lexicographically,
// so it must never reach Overlaps: validation has to reject it outright.
func TestNonCanonicalStartRejected(t *testing.T) {
	week := openWeek()

	err := ValidateHours(week, "2026-09-07", "09:5", "09:50")
	if got := httperr.BusinessCode(err); got != CodeInvalidTime {
		t.Fatalf("code = %q, want %q", got, CodeInvalidTime)
	}

	// Canonical form of the same interval does conflict with 09:00-09:30.
	if !Overlaps("09:05", "09:50", "09:00", "09:30") {
		t.Fatal("Overlaps(09:05-09:50, 09:00-09:30) = false, want true")
	}
}

func TestSlots(t *testing.T) {
	got := Slots("09:00", "11:00")
	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Slots = %v, want %v", got, want)
	}

	if s := Slots("bad", "11:00"); s != nil {
		t.Fatalf("Slots with bad open = %v, want nil", s)
	}
}

func TestBlocking(t *testing.T) {
	blocking := []Status{StatusConfirmed, StatusInProgress, StatusCompleted, StatusNoShow}
	for _, s := range blocking {
		if !Blocking(s) {
			t.Errorf("Blocking(%s) = false, want true", s)
		}
	}
	if Blocking(StatusCancelled) {
		t.Error("Blocking(cancelled) = true, want false")
	}
}
