package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// mockAPI implements the api.API persistence port for session tests
type mockAPI struct {
	loaded  []*domain.Task
	loadErr error
	saveErr error
	saved   []*domain.Task
	saves   int
}

func (m *mockAPI) LoadTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.loaded, nil
}

func (m *mockAPI) SaveTasks(ctx context.Context, tasks []*domain.Task) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = tasks
	return nil
}

func (m *mockAPI) Close() error {
	return nil
}

func runSession(t *testing.T, mock *mockAPI, script string) (*bytes.Buffer, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := NewApp(mock, config.NewConfig(), strings.NewReader(script), out)
	return out, app.Run(context.Background())
}

func fixedClock(t *testing.T, date string) func() {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	previous := timeNow
	timeNow = func() time.Time { return parsed }
	return func() { timeNow = previous }
}

func storedTask(priority domain.Priority, date, timeOfDay string, lines ...string) *domain.Task {
	d, _ := domain.ParseDate(date)
	tod, _ := domain.ParseTimeOfDay(timeOfDay)
	return &domain.Task{ID: 1, Priority: priority, Date: d, Time: tod, Description: lines}
}

func TestApp_EndSavesImmediately(t *testing.T) {
	mock := &mockAPI{}

	_, err := runSession(t, mock, "end\n")

	require.NoError(t, err)
	assert.Equal(t, 1, mock.saves)
	assert.Empty(t, mock.saved)
}

func TestApp_InputClosingIsAnOrderlyEnd(t *testing.T) {
	mock := &mockAPI{loaded: []*domain.Task{storedTask(domain.PriorityNormal, "2024-03-20", "10:00", "kept")}}

	_, err := runSession(t, mock, "")

	require.NoError(t, err)
	require.Len(t, mock.saved, 1)
	assert.Equal(t, []string{"kept"}, mock.saved[0].Description)
}

func TestApp_AddThenEnd(t *testing.T) {
	mock := &mockAPI{}
	script := strings.Join([]string{
		"add",
		"h",
		"2024-04-01",
		"09:30",
		"water the plants",
		"",
		"end",
	}, "\n") + "\n"

	out, err := runSession(t, mock, script)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Task added.")
	require.Len(t, mock.saved, 1)
	added := mock.saved[0]
	assert.Equal(t, domain.PriorityHigh, added.Priority)
	assert.Equal(t, "2024-04-01", added.Date.String())
	assert.Equal(t, "09:30", added.Time.String())
	assert.Equal(t, []string{"water the plants"}, added.Description)
}

func TestApp_PrintEmptyList(t *testing.T) {
	mock := &mockAPI{}

	out, err := runSession(t, mock, "print\nend\n")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "The task list is empty.")
}

func TestApp_PrintRendersLoadedTasks(t *testing.T) {
	defer fixedClock(t, "2024-03-15")()
	mock := &mockAPI{loaded: []*domain.Task{storedTask(domain.PriorityNormal, "2024-03-20", "10:00", "loaded task")}}

	out, err := runSession(t, mock, "print\nend\n")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "loaded task")
	assert.Contains(t, out.String(), "2024-03-20")
	assert.Contains(t, out.String(), "| No ")
}

func TestApp_EditReplacesOneField(t *testing.T) {
	mock := &mockAPI{loaded: []*domain.Task{storedTask(domain.PriorityNormal, "2024-03-20", "10:00", "stable")}}
	script := strings.Join([]string{
		"edit",
		"1",
		"color",
		"priority",
		"c",
		"end",
	}, "\n") + "\n"

	out, err := runSession(t, mock, script)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid field")
	assert.Contains(t, out.String(), "Task updated.")
	require.Len(t, mock.saved, 1)
	assert.Equal(t, domain.PriorityCritical, mock.saved[0].Priority)
	assert.Equal(t, []string{"stable"}, mock.saved[0].Description)
}

func TestApp_DeleteByNumber(t *testing.T) {
	mock := &mockAPI{loaded: []*domain.Task{
		storedTask(domain.PriorityNormal, "2024-03-20", "10:00", "first"),
		storedTask(domain.PriorityLow, "2024-03-21", "11:00", "second"),
	}}

	out, err := runSession(t, mock, "delete\n1\nend\n")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Task 1 deleted.")
	require.Len(t, mock.saved, 1)
	assert.Equal(t, []string{"second"}, mock.saved[0].Description)
}

func TestApp_DeleteRepromptsOnBadNumber(t *testing.T) {
	mock := &mockAPI{loaded: []*domain.Task{
		storedTask(domain.PriorityNormal, "2024-03-20", "10:00", "first"),
		storedTask(domain.PriorityLow, "2024-03-21", "11:00", "second"),
	}}

	out, err := runSession(t, mock, "delete\n9\n2\nend\n")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "invalid task number")
	assert.Equal(t, 2, strings.Count(out.String(), "Task number (1-2): "))
	assert.Contains(t, out.String(), "Task 2 deleted.")
	require.Len(t, mock.saved, 1)
	assert.Equal(t, []string{"first"}, mock.saved[0].Description)
}

func TestApp_EditRepromptsOnBadNumber(t *testing.T) {
	mock := &mockAPI{loaded: []*domain.Task{storedTask(domain.PriorityNormal, "2024-03-20", "10:00", "stable")}}
	script := strings.Join([]string{
		"edit",
		"0",
		"1",
		"priority",
		"l",
		"end",
	}, "\n") + "\n"

	out, err := runSession(t, mock, script)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "invalid task number")
	assert.Contains(t, out.String(), "Task updated.")
	require.Len(t, mock.saved, 1)
	assert.Equal(t, domain.PriorityLow, mock.saved[0].Priority)
}

func TestApp_EditAndDeleteOnEmptyList(t *testing.T) {
	mock := &mockAPI{}

	out, err := runSession(t, mock, "edit\ndelete\nend\n")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "the task list is empty"))
	assert.Equal(t, 1, mock.saves)
}

func TestApp_UnknownCommandKeepsLooping(t *testing.T) {
	mock := &mockAPI{}

	out, err := runSession(t, mock, "launch\nend\n")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "launch")
	assert.Equal(t, 1, mock.saves, "the loop must survive an unknown command and still save")
}

func TestApp_BlankAndMixedCaseCommands(t *testing.T) {
	mock := &mockAPI{}

	out, err := runSession(t, mock, "\n  \nHELP\nEnd\n")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "commands: add")
	assert.Equal(t, 1, mock.saves)
}

func TestApp_LoadFailureStartsEmpty(t *testing.T) {
	mock := &mockAPI{loadErr: errors.NewPersistenceError("load", fmt.Errorf("locked"))}

	out, err := runSession(t, mock, "print\nend\n")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Could not load saved tasks; starting with an empty list.")
	assert.Contains(t, out.String(), "The task list is empty.")
	assert.Equal(t, 1, mock.saves)
}

func TestApp_SaveFailureIsReported(t *testing.T) {
	mock := &mockAPI{saveErr: errors.NewPersistenceError("save", fmt.Errorf("disk full"))}

	_, err := runSession(t, mock, "end\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save tasks")
	assert.Contains(t, err.Error(), "The task store could not be reached.")
}

func TestApp_InputClosingMidPromptStillSaves(t *testing.T) {
	mock := &mockAPI{}

	_, err := runSession(t, mock, "add\nn\n")

	require.NoError(t, err)
	assert.Equal(t, 1, mock.saves)
	assert.Empty(t, mock.saved, "the half-entered task never joined the list")
}
