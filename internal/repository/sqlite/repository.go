package sqlite

import (
	"context"
	"database/sql"

	"tasklist/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for the task store. The collection is
// loaded once at session start and replaced wholesale at orderly exit; there
// are no mid-session writes.
type Repository interface {
	LoadTasks(ctx context.Context) ([]*Task, error)
	SaveTasks(ctx context.Context, tasks []*Task) error
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, HandlePersistenceError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, HandlePersistenceError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadTasks retrieves the whole task collection in display order, attaching
// each task's description lines in line order.
func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]*Task, error) {
	taskQuery := `
	SELECT rowid, task_id, priority, due_date, due_hour, due_minute, position
	FROM tasks
	ORDER BY position ASC`

	tasks, err := QueryMultiple(ctx, r.db, taskQuery, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	lineQuery := `
	SELECT task_rowid, line
	FROM description_lines
	ORDER BY task_rowid ASC, line_no ASC`

	lines, err := QueryMultiple(ctx, r.db, lineQuery, ScanDescriptionLines, "description lines")
	if err != nil {
		return nil, err
	}

	byRow := make(map[int64]*Task, len(tasks))
	for _, task := range tasks {
		byRow[task.RowID] = task
	}
	for _, dl := range lines {
		if task, ok := byRow[dl.TaskRowID]; ok {
			task.Lines = append(task.Lines, dl.Line)
		}
	}

	return tasks, nil
}

// SaveTasks replaces the stored collection with the given one inside a single
// transaction.
func (r *SQLiteRepository) SaveTasks(ctx context.Context, tasks []*Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandlePersistenceError("begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM description_lines`); err != nil {
		tx.Rollback()
		return HandlePersistenceError("clear description lines", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		tx.Rollback()
		return HandlePersistenceError("clear tasks", err)
	}

	taskQuery := `
	INSERT INTO tasks (task_id, priority, due_date, due_hour, due_minute, position)
	VALUES (?, ?, ?, ?, ?, ?)`
	lineQuery := `
	INSERT INTO description_lines (task_rowid, line_no, line)
	VALUES (?, ?, ?)`

	for i, task := range tasks {
		rowID, err := ExecuteWithLastInsertID(ctx, tx, taskQuery,
			task.TaskID, task.Priority, task.DueDate, task.DueHour, task.DueMinute, i)
		if err != nil {
			tx.Rollback()
			return err
		}
		for lineNo, line := range task.Lines {
			if _, err := tx.ExecContext(ctx, lineQuery, rowID, lineNo, line); err != nil {
				tx.Rollback()
				return HandlePersistenceError("insert description line", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return HandlePersistenceError("commit transaction", err)
	}
	return nil
}
