package appointment

import (
	"fmt"
	"time"

	"github.com/salonops/salon-manager/internal/httperr"
)

// Validation error codes surfaced to callers.
const (
	CodeClosedDay      = "closed_day"
	CodeOutsideHours   = "outside_hours"
	CodeExceedsClosing = "exceeds_closing"
	CodeSlotConflict   = "slot_conflict"
	CodeInvalidDate    = "invalid_date"
	CodeInvalidTime    = "invalid_time"
)

// DayHours is the configured opening window for one weekday.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

// WeekSchedule is a salon-wide working-hours snapshot, indexed by
// time.Weekday (Sunday = 0). Fetched once per operation and passed in, so
// validation stays pure.
type WeekSchedule [7]DayHours

// Weekday resolves a "YYYY-MM-DD" date to its weekday.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, httperr.ErrBusiness(CodeInvalidDate)
	}
	return t.Weekday(), nil
}

// MinutesOf parses a zero-padded "HH:MM" clock value into minutes since
// midnight. Only the canonical form is accepted: "9:30" and "09:5" would
// break the lexicographic comparisons the rest of the engine relies on.
func MinutesOf(hm string) (int, error) {
	h, m, ok := splitClock(hm)
	if !ok || h > 23 {
		return 0, httperr.ErrBusiness(CodeInvalidTime)
	}
	return h*60 + m, nil
}

// splitClock parses strict "HH:MM" with minute 00..59. The hour is not
// capped so AddMinutes output past midnight stays parseable.
func splitClock(hm string) (h, m int, ok bool) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, 0, false
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if hm[i] < '0' || hm[i] > '9' {
			return 0, 0, false
		}
	}
	h = int(hm[0]-'0')*10 + int(hm[1]-'0')
	m = int(hm[3]-'0')*10 + int(hm[4]-'0')
	return h, m, m <= 59
}

// AddMinutes returns start + d as "HH:MM". The hour field may run past 23;
// such values fail the closing-time check downstream instead of wrapping.
func AddMinutes(start string, d int) (string, error) {
	m, err := MinutesOf(start)
	if err != nil {
		return "", err
	}
	m += d
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// ValidateHours checks a requested [start, end) interval against the
// schedule for the given date. Zero-padded "HH:MM" strings compare
// lexicographically in time order, so the checks are plain string compares.
func ValidateHours(week WeekSchedule, date, start, end string) error {
	wd, err := Weekday(date)
	if err != nil {
		return err
	}

	if _, err := MinutesOf(start); err != nil {
		return err
	}
	if _, _, ok := splitClock(end); !ok {
		return httperr.ErrBusiness(CodeInvalidTime)
	}

	day := week[int(wd)]
	if !day.IsOpen || day.Open == "" || day.Close == "" {
		return httperr.ErrBusiness(CodeClosedDay)
	}

	if start < day.Open || start >= day.Close {
		return httperr.ErrBusiness(CodeOutsideHours)
	}

	if end > day.Close {
		return httperr.ErrBusiness(CodeExceedsClosing)
	}

	return nil
}

// Overlaps reports half-open interval overlap: back-to-back slots
// (one ending exactly when the next starts) do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// SlotStep is the UI booking grid granularity.
const SlotStep = 30

// Slots generates slot start times every SlotStep minutes from open
// (inclusive) up to but excluding close.
func Slots(open, close string) []string {
	start, err := MinutesOf(open)
	if err != nil {
		return nil
	}
	end, err := MinutesOf(close)
	if err != nil {
		return nil
	}

	var out []string
	for m := start; m < end; m += SlotStep {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}
