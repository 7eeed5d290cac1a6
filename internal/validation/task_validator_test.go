package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain"
)

func validTask(t *testing.T) domain.Task {
	t.Helper()
	date, err := domain.ParseDate("2024-03-15")
	require.NoError(t, err)
	tod, err := domain.ParseTimeOfDay("12:30")
	require.NoError(t, err)
	return domain.Task{
		ID:          1,
		Priority:    domain.PriorityNormal,
		Date:        date,
		Time:        tod,
		Description: []string{"a line"},
	}
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidator()

	t.Run("should accept a well-formed task", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTask(validTask(t)))
	})

	t.Run("should accept an empty description", func(t *testing.T) {
		task := validTask(t)
		task.Description = nil
		assert.NoError(t, validator.ValidateTask(task))
	})

	t.Run("should reject an unknown priority", func(t *testing.T) {
		task := validTask(t)
		task.Priority = domain.Priority("Z")

		err := validator.ValidateTask(task)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("priority"))
	})

	t.Run("should reject blank description lines", func(t *testing.T) {
		task := validTask(t)
		task.Description = []string{"kept", "   ", "also kept"}

		err := validator.ValidateTask(task)
		require.Error(t, err)

		validationErr := err.(*ValidationError)
		require.Len(t, validationErr.GetFieldErrors("description"), 1)
		assert.Contains(t, validationErr.GetUserFriendlyMessage(), "line 2")
	})
}

func TestTaskValidator_ValidateDescription(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateDescription([]string{"one", "two"}))
	assert.NoError(t, validator.ValidateDescription(nil))
	assert.Error(t, validator.ValidateDescription([]string{""}))
	assert.Error(t, validator.ValidateDescription([]string{"ok", "\t"}))
}

func TestValidationError_Messages(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("priority")
	assert.True(t, ve.HasErrors())
	assert.Contains(t, ve.Error(), "priority")

	ve.AddInvalidValueError("date", "2024-13-01", "must be a valid calendar date")
	assert.Contains(t, ve.Error(), "multiple validation errors")
	assert.Contains(t, ve.GetUserFriendlyMessage(), "- ")
}
