package errors

import (
	"errors"
	"fmt"
)

// NewInvalidDateError reports a malformed or out-of-range calendar triple.
func NewInvalidDateError(input string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid date: %q is not a valid calendar date", input),
		Code:    "INVALID_DATE",
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewInvalidTimeError reports a time string with the wrong component count
// or an out-of-range hour or minute.
func NewInvalidTimeError(input string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid time: %q is not a valid hh:mm time", input),
		Code:    "INVALID_TIME",
		Cause:   cause,
		Context: map[string]interface{}{
			"input": input,
		},
	}
}

// NewInvalidTimeComponentError reports a single hour or minute component that
// is non-numeric or out of range.
func NewInvalidTimeComponentError(component string, value string, max int) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid %s: %q must be a number between 0 and %d", component, value, max),
		Code:    "INVALID_TIME_COMPONENT",
		Context: map[string]interface{}{
			"component": component,
			"value":     value,
			"max":       max,
		},
	}
}

// NewInvalidPriorityError reports a token outside the closed priority set.
func NewInvalidPriorityError(token string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid priority: %q is not one of C, H, N, L", token),
		Code:    "INVALID_PRIORITY",
		Context: map[string]interface{}{
			"token": token,
		},
	}
}

// NewInvalidFieldError reports an edit request naming an unrecognized field.
func NewInvalidFieldError(name string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: "Invalid field",
		Code:    "INVALID_FIELD",
		Context: map[string]interface{}{
			"field": name,
		},
	}
}

// NewInvalidTaskNumberError reports an out-of-range or non-numeric task
// selection for edit or delete.
func NewInvalidTaskNumberError(input string, size int) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid task number: %q must be between 1 and %d", input, size),
		Code:    "INVALID_TASK_NUMBER",
		Context: map[string]interface{}{
			"input": input,
			"size":  size,
		},
	}
}

// NewUnknownCommandError reports a word outside the command vocabulary.
func NewUnknownCommandError(word string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("unknown command: %q", word),
		Code:    "UNKNOWN_COMMAND",
		Context: map[string]interface{}{
			"command": word,
		},
	}
}

// NewEmptyListError reports an operation attempted against an empty task list.
func NewEmptyListError(operation string) *AppError {
	return &AppError{
		Type:    ErrorTypeEmptyList,
		Message: "the task list is empty",
		Code:    "EMPTY_LIST",
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewPersistenceError reports a load or save failure against the task store.
func NewPersistenceError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("persistence operation failed: %s", operation),
		Code:    "PERSISTENCE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsCode checks if the error carries the specified error code
func IsCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypePersistence:
			return "The task store could not be reached."
		default:
			return appErr.Message
		}
	}
	return err.Error()
}
