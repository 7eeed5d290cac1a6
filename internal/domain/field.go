package domain

import (
	"strings"

	"tasklist/internal/errors"
)

// Field identifies one editable field of a task. The set is closed at
// compile time; unrecognized textual input is rejected where the text is
// parsed into the tag.
type Field int

const (
	FieldPriority Field = iota
	FieldDate
	FieldTime
	FieldDescription
)

// String returns the user-facing name of the field. The description field is
// addressed as "task" at the prompt boundary.
func (f Field) String() string {
	switch f {
	case FieldPriority:
		return "priority"
	case FieldDate:
		return "date"
	case FieldTime:
		return "time"
	case FieldDescription:
		return "task"
	default:
		return "unknown"
	}
}

// ParseField maps one of the four literal field names to its tag.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "priority":
		return FieldPriority, nil
	case "date":
		return FieldDate, nil
	case "time":
		return FieldTime, nil
	case "task":
		return FieldDescription, nil
	default:
		return Field(-1), errors.NewInvalidFieldError(name)
	}
}

// FieldEdit is a tagged variant carrying the replacement value for exactly
// one task field. Only the value matching Field is meaningful.
type FieldEdit struct {
	Field       Field
	Priority    Priority
	Date        Date
	Time        TimeOfDay
	Description []string
}

// PriorityEdit builds an edit replacing the priority.
func PriorityEdit(p Priority) FieldEdit {
	return FieldEdit{Field: FieldPriority, Priority: p}
}

// DateEdit builds an edit replacing the date.
func DateEdit(d Date) FieldEdit {
	return FieldEdit{Field: FieldDate, Date: d}
}

// TimeEdit builds an edit replacing the time of day.
func TimeEdit(t TimeOfDay) FieldEdit {
	return FieldEdit{Field: FieldTime, Time: t}
}

// DescriptionEdit builds an edit replacing the whole description list.
func DescriptionEdit(lines []string) FieldEdit {
	return FieldEdit{Field: FieldDescription, Description: lines}
}
