package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tasklist/internal/domain"
)

// Fixed column widths of the bordered table. Only the description width is
// configurable; the five leading columns never change.
const (
	orderWidth    = 4
	dateWidth     = 12
	timeWidth     = 7
	priorityWidth = 3
	urgencyWidth  = 3

	// DefaultDescriptionWidth is the wrap width for description cells.
	DefaultDescriptionWidth = 44
)

// EmptyListNotice is printed instead of a table when there are no tasks.
const EmptyListNotice = "The task list is empty."

// TableRenderer renders the task collection as a fixed-width bordered table.
// It reads the collection and writes output; it never mutates a task.
type TableRenderer struct {
	out       io.Writer
	styles    cellStyles
	descWidth int
}

// NewTableRenderer creates a renderer writing to w with the default
// description width.
func NewTableRenderer(w io.Writer) *TableRenderer {
	return NewTableRendererWithWidth(w, DefaultDescriptionWidth)
}

// NewTableRendererWithWidth creates a renderer with a custom description
// wrap width.
func NewTableRendererWithWidth(w io.Writer, descWidth int) *TableRenderer {
	if descWidth < 1 {
		descWidth = DefaultDescriptionWidth
	}
	return &TableRenderer{
		out:       w,
		styles:    newCellStyles(w),
		descWidth: descWidth,
	}
}

// Render prints the whole collection. Urgency cells are classified against
// the given evaluation date.
func (r *TableRenderer) Render(tasks []*domain.Task, today domain.Date) {
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, EmptyListNotice)
		return
	}

	border := r.borderRow()
	fmt.Fprintln(r.out, border)
	fmt.Fprintln(r.out, r.headerRow())
	fmt.Fprintln(r.out, border)

	for i, task := range tasks {
		r.renderTask(i+1, task, today)
		fmt.Fprintln(r.out, border)
	}
}

// renderTask prints one task block: the leading row with all six cells, then
// one continuation row per remaining description chunk.
func (r *TableRenderer) renderTask(number int, task *domain.Task, today domain.Date) {
	chunks := r.wrapDescription(task.Description)

	first := ""
	if len(chunks) > 0 {
		first = chunks[0]
	}
	fmt.Fprintln(r.out, strings.Join([]string{
		"",
		fmt.Sprintf(" %-*s", orderWidth-1, strconv.Itoa(number)),
		fmt.Sprintf(" %-*s", dateWidth-1, task.Date.String()),
		fmt.Sprintf(" %-*s", timeWidth-1, task.Time.String()),
		" " + r.styles.priorityCell(task.Priority) + " ",
		" " + r.styles.urgencyCell(task.Urgency(today)) + " ",
		fmt.Sprintf("%-*s", r.descWidth, first),
		"",
	}, "|"))

	for _, chunk := range chunks[min(1, len(chunks)):] {
		fmt.Fprintln(r.out, r.continuationPrefix()+fmt.Sprintf("%-*s", r.descWidth, chunk)+"|")
	}
}

// wrapDescription hard-wraps every description line into chunks of the
// description width, preserving line order. A line shorter than the width is
// a single chunk.
func (r *TableRenderer) wrapDescription(lines []string) []string {
	var chunks []string
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) == 0 {
			continue
		}
		for start := 0; start < len(runes); start += r.descWidth {
			end := start + r.descWidth
			if end > len(runes) {
				end = len(runes)
			}
			chunks = append(chunks, string(runes[start:end]))
		}
	}
	return chunks
}

// borderRow builds the +---+ horizontal border spanning all six columns.
func (r *TableRenderer) borderRow() string {
	var b strings.Builder
	for _, width := range []int{orderWidth, dateWidth, timeWidth, priorityWidth, urgencyWidth, r.descWidth} {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", width))
	}
	b.WriteString("+")
	return b.String()
}

// headerRow builds the single header row.
func (r *TableRenderer) headerRow() string {
	return strings.Join([]string{
		"",
		fmt.Sprintf(" %-*s", orderWidth-1, "No"),
		fmt.Sprintf(" %-*s", dateWidth-1, "Due date"),
		fmt.Sprintf(" %-*s", timeWidth-1, "Time"),
		" P ",
		" U ",
		fmt.Sprintf(" %-*s", r.descWidth-1, "Description"),
		"",
	}, "|")
}

// continuationPrefix spans the five leading columns with blank cells so
// wrapped description rows do not repeat the order, date, time, priority or
// urgency values.
func (r *TableRenderer) continuationPrefix() string {
	var b strings.Builder
	for _, width := range []int{orderWidth, dateWidth, timeWidth, priorityWidth, urgencyWidth} {
		b.WriteString("|")
		b.WriteString(strings.Repeat(" ", width))
	}
	b.WriteString("|")
	return b.String()
}
