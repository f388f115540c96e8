package appointment

import "time"

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

// Slots is the fixed booking grid: half-hour marks from 09:00 to 19:00,
// the same for every day. The displayed opening hours vary by weekday,
// but the bookable grid intentionally does not.
var Slots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
	"18:00", "18:30", "19:00",
}

var slotSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Slots))
	for _, s := range Slots {
		m[s] = struct{}{}
	}
	return m
}()

// IsValidSlot reports whether t is one of the fixed slot values.
func IsValidSlot(t string) bool {
	_, ok := slotSet[t]
	return ok
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// SlotsForDate returns the ordered slot sequence for a calendar date.
// Dates strictly before today are entirely unselectable and yield no
// slots, regardless of the current hour.
func SlotsForDate(date, today time.Time) []string {
	// Compare calendar dates, not instants: date and today may carry
	// different locations.
	if date.Format(DateLayout) < today.Format(DateLayout) {
		return nil
	}

	out := make([]string, len(Slots))
	copy(out, Slots)
	return out
}
