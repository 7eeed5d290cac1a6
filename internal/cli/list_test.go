package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

func listOf(ids ...int64) *List {
	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, &domain.Task{ID: id, Priority: domain.PriorityNormal})
	}
	return NewList(tasks)
}

func remainingIDs(l *List) []int64 {
	ids := make([]int64, 0, l.Len())
	for _, task := range l.Tasks() {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestList_Get(t *testing.T) {
	l := listOf(10, 20, 30)

	task, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, int64(20), task.ID)

	_, err = l.Get(0)
	assert.True(t, errors.IsCode(err, "INVALID_TASK_NUMBER"))

	_, err = l.Get(4)
	assert.True(t, errors.IsCode(err, "INVALID_TASK_NUMBER"))
}

func TestList_Delete(t *testing.T) {
	tests := []struct {
		name        string
		initial     []int64
		delete      int
		expected    []int64
		expectError bool
	}{
		{name: "first of three", initial: []int64{10, 20, 30}, delete: 1, expected: []int64{20, 30}},
		{name: "middle of three", initial: []int64{10, 20, 30}, delete: 2, expected: []int64{10, 30}},
		{name: "last of three", initial: []int64{10, 20, 30}, delete: 3, expected: []int64{10, 20}},
		{name: "only task", initial: []int64{10}, delete: 1, expected: []int64{}},
		{name: "zero leaves list unchanged", initial: []int64{10, 20}, delete: 0, expected: []int64{10, 20}, expectError: true},
		{name: "past the end leaves list unchanged", initial: []int64{10, 20}, delete: 3, expected: []int64{10, 20}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(tt.initial...)

			err := l.Delete(tt.delete)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, "INVALID_TASK_NUMBER"))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, remainingIDs(l))
		})
	}
}

func TestList_AppendPreservesOrder(t *testing.T) {
	l := NewList(nil)
	l.Append(&domain.Task{ID: 1})
	l.Append(&domain.Task{ID: 2})
	l.Append(&domain.Task{ID: 3})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int64{1, 2, 3}, remainingIDs(l))
}
