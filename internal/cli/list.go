package cli

import (
	"strconv"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// List is the in-memory task collection owned by the interactive loop.
// Insertion order is display order; every lookup is positional and 1-based.
//
// The loop is single-threaded, so the collection carries no locking. A
// concurrent front-end would have to serialize all mutations: record
// construction and field edits are multi-step and not atomic.
type List struct {
	tasks []*domain.Task
}

// NewList creates a list seeded with the given tasks.
func NewList(tasks []*domain.Task) *List {
	return &List{tasks: tasks}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns the tasks in display order.
func (l *List) Tasks() []*domain.Task {
	return l.tasks
}

// Append adds a task to the end of the list.
func (l *List) Append(task *domain.Task) {
	l.tasks = append(l.tasks, task)
}

// Get returns the task at 1-based position k.
func (l *List) Get(k int) (*domain.Task, error) {
	if k < 1 || k > len(l.tasks) {
		return nil, errors.NewInvalidTaskNumberError(strconv.Itoa(k), len(l.tasks))
	}
	return l.tasks[k-1], nil
}

// Delete removes the task at 1-based position k, preserving the relative
// order of the rest. A position outside [1,n] is rejected and the list is
// unchanged.
func (l *List) Delete(k int) error {
	if k < 1 || k > len(l.tasks) {
		return errors.NewInvalidTaskNumberError(strconv.Itoa(k), len(l.tasks))
	}
	l.tasks = append(l.tasks[:k-1], l.tasks[k:]...)
	return nil
}
