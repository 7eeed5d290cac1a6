package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tasklist/internal/errors"
)

// Date represents a calendar date in the domain model.
// A Date produced by NewDate or ParseDate is always a valid Gregorian date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate creates a Date from a year/month/day triple, rejecting triples
// that do not form a real calendar date (month 13, Feb 30).
func NewDate(year, month, day int) (Date, error) {
	if !isCalendarDate(year, month, day) {
		return Date{}, errors.NewInvalidDateError(fmt.Sprintf("%d-%d-%d", year, month, day))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses hyphen-separated integers into a Date.
func ParseDate(input string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 3 {
		return Date{}, errors.NewInvalidDateError(input)
	}

	values := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Date{}, errors.NewInvalidDateError(input)
		}
		values[i] = n
	}

	date, err := NewDate(values[0], values[1], values[2])
	if err != nil {
		return Date{}, errors.NewInvalidDateError(input)
	}
	return date, nil
}

// String renders the date as yyyy-mm-dd with zero-padded components.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the midnight instant of the date in UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole days from d to other.
// Negative when other is in d's past.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Today converts a wall-clock instant into the evaluation date using a fixed
// UTC offset in hours. Urgency is always computed against this date.
func Today(now time.Time, utcOffsetHours int) Date {
	shifted := now.UTC().Add(time.Duration(utcOffsetHours) * time.Hour)
	return Date{Year: shifted.Year(), Month: int(shifted.Month()), Day: shifted.Day()}
}

// isCalendarDate checks the triple via a time.Date round-trip: time.Date
// normalizes overflowing components, so any drift means an invalid triple.
func isCalendarDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
