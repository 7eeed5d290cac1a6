package domain

import (
	"strings"

	"tasklist/internal/errors"
)

// Priority is one of four fixed importance levels assigned to a task.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

// Priorities lists the closed set of valid priority symbols.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow}

// ParsePriority parses a priority token case-insensitively.
func ParsePriority(token string) (Priority, error) {
	symbol := Priority(strings.ToUpper(strings.TrimSpace(token)))
	for _, p := range Priorities {
		if symbol == p {
			return p, nil
		}
	}
	return "", errors.NewInvalidPriorityError(token)
}

// IsValid reports whether the priority is one of the four symbols.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Name returns the long form of the priority symbol.
func (p Priority) Name() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// String returns the priority symbol.
func (p Priority) String() string {
	return string(p)
}
