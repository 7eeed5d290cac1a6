package sqlite

// Task represents a persisted task row together with its description lines.
// RowID is the surrogate key; TaskID is the task's own id and carries no
// uniqueness guarantee.
type Task struct {
	RowID     int64
	TaskID    int64
	Priority  string
	DueDate   string // delimited string of 3 integers
	DueHour   string // zero-padded component
	DueMinute string // zero-padded component
	Position  int
	Lines     []string
}
