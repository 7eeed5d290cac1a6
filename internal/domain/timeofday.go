package domain

import (
	"fmt"
	"strconv"
	"strings"

	"tasklist/internal/errors"
)

const (
	maxHour   = 23
	maxMinute = 59
)

// TimeOfDay represents a validated time of day. Both components are stored
// as two-digit zero-padded strings so a persisted value round-trips exactly.
type TimeOfDay struct {
	hour   string
	minute string
}

// NewTimeOfDay constructs a TimeOfDay from two textual components.
// Construction fails entirely if either component is invalid.
func NewTimeOfDay(hour, minute string) (TimeOfDay, error) {
	var t TimeOfDay
	if err := t.SetHour(hour); err != nil {
		return TimeOfDay{}, err
	}
	if err := t.SetMinute(minute); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// ParseTimeOfDay parses an hh:mm string. The split must yield exactly two
// parts and both must be in range.
func ParseTimeOfDay(input string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(input), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, errors.NewInvalidTimeError(input, nil)
	}
	t, err := NewTimeOfDay(parts[0], parts[1])
	if err != nil {
		return TimeOfDay{}, errors.NewInvalidTimeError(input, err)
	}
	return t, nil
}

// SetHour validates and assigns the hour component. On failure the previous
// value is retained.
func (t *TimeOfDay) SetHour(value string) error {
	padded, err := padComponent("hour", value, maxHour)
	if err != nil {
		return err
	}
	t.hour = padded
	return nil
}

// SetMinute validates and assigns the minute component. On failure the
// previous value is retained.
func (t *TimeOfDay) SetMinute(value string) error {
	padded, err := padComponent("minute", value, maxMinute)
	if err != nil {
		return err
	}
	t.minute = padded
	return nil
}

// Hour returns the zero-padded hour component.
func (t TimeOfDay) Hour() string {
	return t.hour
}

// Minute returns the zero-padded minute component.
func (t TimeOfDay) Minute() string {
	return t.minute
}

// String renders the time as HH:MM.
func (t TimeOfDay) String() string {
	return t.hour + ":" + t.minute
}

// padComponent parses a single component as a non-negative integer within
// [0,max] and renders it zero-padded to two digits.
func padComponent(name, value string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 || n > max {
		return "", errors.NewInvalidTimeComponentError(name, trimmed, max)
	}
	return fmt.Sprintf("%02d", n), nil
}
