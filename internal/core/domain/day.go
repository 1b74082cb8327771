package domain

import (
	"fmt"
	"time"
)

// DayLayout is the ISO calendar date layout used for Day values.
const DayLayout = time.DateOnly

// Day is a calendar date with no time component, formatted YYYY-MM-DD.
// Lexicographic order of valid Days matches chronological order.
type Day string

// DayOf returns the calendar date of t in t's location.
func DayOf(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// ParseDay validates s as a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DayOf(t), nil
}

// Valid reports whether d is a well-formed date.
func (d Day) Valid() bool {
	_, err := time.Parse(DayLayout, string(d))
	return err == nil
}

// Time returns midnight UTC of d, or the zero time if d is malformed.
func (d Day) Time() time.Time {
	t, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays shifts d by n calendar days (negative n goes back).
func (d Day) AddDays(n int) Day {
	t := d.Time()
	if t.IsZero() {
		return d
	}
	return DayOf(t.AddDate(0, 0, n))
}

// Month returns the YYYY-MM prefix of d.
func (d Day) Month() string {
	if len(d) < 7 {
		return string(d)
	}
	return string(d[:7])
}

func (d Day) String() string {
	return string(d)
}
