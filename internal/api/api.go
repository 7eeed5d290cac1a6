package api

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/repository/sqlite"
	"tasklist/internal/validation"
)

// API is the persistence port consumed by the interactive session: load the
// collection once at start, save it once at orderly exit.
type API interface {
	LoadTasks(ctx context.Context) ([]*domain.Task, error)
	SaveTasks(ctx context.Context, tasks []*domain.Task) error
	Close() error
}

type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// LoadTasks loads the stored collection in display order. Rows that no
// longer parse or validate are skipped rather than failing the load; the
// session starts with whatever could be recovered.
func (a *apiImpl) LoadTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		task, err := a.mapper.Task.FromDatabase(*dbTask)
		if err != nil {
			logging.Debugf("skipping corrupt task row %d: %v\n", dbTask.RowID, err)
			continue
		}
		if err := a.taskValidator.ValidateTask(task); err != nil {
			logging.Debugf("skipping invalid task row %d: %v\n", dbTask.RowID, err)
			continue
		}
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

// SaveTasks replaces the stored collection. Every record must validate; a
// task with blank description lines never reaches the store.
func (a *apiImpl) SaveTasks(ctx context.Context, tasks []*domain.Task) error {
	for _, task := range tasks {
		if err := a.taskValidator.ValidateTask(*task); err != nil {
			return errors.NewValidationError("task failed validation before save", err)
		}
	}
	return a.repo.SaveTasks(ctx, a.mapper.Task.ToDatabaseSlice(tasks))
}

// Close releases the underlying store.
func (a *apiImpl) Close() error {
	return a.repo.Close()
}
