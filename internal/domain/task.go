package domain

import (
	"math/rand"
	"strings"
)

// Task represents one entry in the task list.
// This is a pure domain model without storage-specific concerns.
//
// ID is drawn from a random generator at creation and is NOT guaranteed
// unique; every lookup in the system is positional, so the id is an opaque
// tag carried through persistence.
type Task struct {
	ID          int64
	Priority    Priority
	Date        Date
	Time        TimeOfDay
	Description []string
}

// NewTask creates a Task with a freshly generated id.
func NewTask(priority Priority, date Date, timeOfDay TimeOfDay, description []string) *Task {
	return &Task{
		ID:          rand.Int63(),
		Priority:    priority,
		Date:        date,
		Time:        timeOfDay,
		Description: description,
	}
}

// Urgency computes the task's urgency against the given evaluation date.
// There is no caching; two calls can differ if the date rolls over between
// them.
func (t *Task) Urgency(today Date) Urgency {
	return ClassifyUrgency(today, t.Date)
}

// Apply replaces exactly one field of the task with the value carried by the
// edit. The previous value of that field is discarded.
func (t *Task) Apply(edit FieldEdit) {
	switch edit.Field {
	case FieldPriority:
		t.Priority = edit.Priority
	case FieldDate:
		t.Date = edit.Date
	case FieldTime:
		t.Time = edit.Time
	case FieldDescription:
		t.Description = edit.Description
	}
}

// IsValid checks if the task has valid data: a recognized priority and no
// blank description lines. An empty description is tolerated for tasks that
// were saved in that degenerate state.
func (t *Task) IsValid() bool {
	if !t.Priority.IsValid() {
		return false
	}
	for _, line := range t.Description {
		if strings.TrimSpace(line) == "" {
			return false
		}
	}
	return true
}
