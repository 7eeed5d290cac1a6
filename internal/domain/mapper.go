package domain

import (
	"tasklist/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		TaskID:    task.ID,
		Priority:  task.Priority.String(),
		DueDate:   sqlite.FormatDateForDB(task.Date.Year, task.Date.Month, task.Date.Day),
		DueHour:   task.Time.Hour(),
		DueMinute: task.Time.Minute(),
		Lines:     append([]string(nil), task.Description...),
	}
}

// FromDatabase converts a database Task to a domain Task. A row whose stored
// priority, date or time no longer parses is reported as an error; callers on
// the lenient load path skip such rows.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	priority, err := ParsePriority(dbTask.Priority)
	if err != nil {
		return Task{}, err
	}
	date, err := ParseDate(dbTask.DueDate)
	if err != nil {
		return Task{}, err
	}
	timeOfDay, err := NewTimeOfDay(dbTask.DueHour, dbTask.DueMinute)
	if err != nil {
		return Task{}, err
	}

	return Task{
		ID:          dbTask.TaskID,
		Priority:    priority,
		Date:        date,
		Time:        timeOfDay,
		Description: append([]string(nil), dbTask.Lines...),
	}, nil
}

// ToDatabaseSlice converts a slice of domain Tasks to database Tasks.
func (m *TaskMapper) ToDatabaseSlice(tasks []*Task) []*sqlite.Task {
	dbTasks := make([]*sqlite.Task, len(tasks))
	for i, task := range tasks {
		dbTask := m.ToDatabase(*task)
		dbTasks[i] = &dbTask
	}
	return dbTasks
}

// Mapper aggregates all model mappers.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
