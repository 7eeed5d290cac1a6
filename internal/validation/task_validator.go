package validation

import (
	"strings"

	"tasklist/internal/domain"
)

// TaskValidator checks whole task records on the persistence boundary: rows
// read from the store are skipped when invalid, and rows about to be written
// are refused.
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateTask validates a domain task record. An empty description is
// tolerated (a task saved in that degenerate state still loads); blank lines
// inside a description are not.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority.String(), "must be one of C, H, N, L")
	}

	if _, err := domain.ParseDate(task.Date.String()); err != nil {
		validationError.AddInvalidValueError("date", task.Date.String(), "must be a valid calendar date")
	}

	if _, err := domain.NewTimeOfDay(task.Time.Hour(), task.Time.Minute()); err != nil {
		validationError.AddInvalidRangeError("time", task.Time.String(), "hour must be 0-23 and minute 0-59")
	}

	for i, line := range task.Description {
		if strings.TrimSpace(line) == "" {
			validationError.AddBlankLineError("description", i)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDescription validates a description line list for storage: lines
// must be non-blank, order is preserved as given.
func (tv *TaskValidator) ValidateDescription(lines []string) error {
	validationError := NewValidationError()

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			validationError.AddBlankLineError("description", i)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
