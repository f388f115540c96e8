package timezone

import "time"

const DefaultTimezone = "America/Mexico_City"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today returns the current calendar date in the shop timezone,
// time-of-day zeroed.
func Today(tz string) time.Time {
	return Truncate(NowIn(tz))
}

// Truncate zeroes the time-of-day, keeping the calendar date and location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
