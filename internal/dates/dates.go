package dates

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
)

// KeyFor returns the canonical calendar-day key (YYYY-MM-DD) for the local
// day the instant falls in. Time-of-day is truncated.
func KeyFor(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Parse parses a day key back into a time.Time at midnight UTC. Day keys
// are date-only, so the zone carries no meaning beyond giving the value a
// fixed anchor for arithmetic.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// AddDays returns the key for the day n days after key (n may be negative).
// The arithmetic is done on year/month/day components rather than on clock
// durations, so daylight-saving transitions cannot produce 23/25-hour-day
// off-by-ones.
func AddDays(key string, n int) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// Valid reports whether key is a well-formed day key.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// TodayInTimezone returns today's day key in the specified timezone. This
// ensures "today" is determined by the user's configured timezone, not the
// system timezone.
func TodayInTimezone(timezone string) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return KeyFor(time.Now().In(loc)), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// WeekdayLabel returns the short weekday name ("Mon") for a day key.
// Used to label 7-day series.
func WeekdayLabel(key string) string {
	t, err := Parse(key)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

// DayOfMonthLabel returns the day-of-month number ("7", "23") for a day key.
// Used to label 30-day series.
func DayOfMonthLabel(key string) string {
	t, err := Parse(key)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", t.Day())
}
