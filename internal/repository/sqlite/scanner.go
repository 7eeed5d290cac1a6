package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task row (without its description lines).
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	err := scanner.Scan(
		&task.RowID,
		&task.TaskID,
		&task.Priority,
		&task.DueDate,
		&task.DueHour,
		&task.DueMinute,
		&task.Position,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple task rows from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// descriptionLine pairs a line with its owning task row.
type descriptionLine struct {
	TaskRowID int64
	Line      string
}

// ScanDescriptionLine scans a single description line row.
func ScanDescriptionLine(scanner Scanner) (*descriptionLine, error) {
	dl := &descriptionLine{}
	if err := scanner.Scan(&dl.TaskRowID, &dl.Line); err != nil {
		return nil, err
	}
	return dl, nil
}

// ScanDescriptionLines scans multiple description line rows.
func ScanDescriptionLines(rows Rows) ([]*descriptionLine, error) {
	var lines []*descriptionLine
	for rows.Next() {
		dl, err := ScanDescriptionLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dl)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
