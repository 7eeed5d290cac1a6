package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// ErrInputClosed reports that the input stream ended while a prompt was
// waiting for a line. Prompt loops otherwise retry forever; end-of-input is
// the one thing that breaks them, since the session is over anyway.
var ErrInputClosed = fmt.Errorf("input closed")

// Prompter is the line-based prompting engine. Every interactive read in the
// application goes through it, so tests can drive the whole flow with a
// scripted reader and capture the writer.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter reading lines from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// ReadLine blocks for the next input line.
func (p *Prompter) ReadLine() (string, error) {
	if !p.scanner.Scan() {
		return "", ErrInputClosed
	}
	return p.scanner.Text(), nil
}

// Println writes a line to the output channel.
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Printf writes formatted text to the output channel.
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Priority prompts for a priority symbol until one of C, H, N, L is entered
// (case-insensitive). Invalid tokens re-prompt without a specific reason.
func (p *Prompter) Priority() (domain.Priority, error) {
	for {
		p.Printf("Priority (C/H/N/L): ")
		line, err := p.ReadLine()
		if err != nil {
			return "", err
		}
		priority, err := domain.ParsePriority(line)
		if err != nil {
			continue
		}
		return priority, nil
	}
}

// Date prompts for a yyyy-mm-dd date until the triple forms a valid calendar
// date.
func (p *Prompter) Date() (domain.Date, error) {
	for {
		p.Printf("Due date (yyyy-mm-dd): ")
		line, err := p.ReadLine()
		if err != nil {
			return domain.Date{}, err
		}
		date, err := domain.ParseDate(line)
		if err != nil {
			p.Println(errors.GetUserMessage(err))
			continue
		}
		return date, nil
	}
}

// Time prompts for an hh:mm time until both components are in range.
func (p *Prompter) Time() (domain.TimeOfDay, error) {
	for {
		p.Printf("Due time (hh:mm): ")
		line, err := p.ReadLine()
		if err != nil {
			return domain.TimeOfDay{}, err
		}
		timeOfDay, err := domain.ParseTimeOfDay(line)
		if err != nil {
			p.Println(errors.GetUserMessage(err))
			continue
		}
		return timeOfDay, nil
	}
}

// Description collects description lines until the first blank line. Zero
// collected lines produce a warning but are still returned as a valid, if
// degenerate, description.
func (p *Prompter) Description() ([]string, error) {
	p.Println("Enter the description, one line at a time. A blank line finishes.")
	var lines []string
	for {
		p.Printf("> ")
		line, err := p.ReadLine()
		if err != nil {
			if len(lines) > 0 {
				return lines, nil
			}
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		p.Println("Warning: the task has no description.")
	}
	return lines, nil
}

// NewTask collects priority, date, time and description through the four
// validating sub-prompts and returns a task with a freshly generated id.
func (p *Prompter) NewTask() (*domain.Task, error) {
	priority, err := p.Priority()
	if err != nil {
		return nil, err
	}
	date, err := p.Date()
	if err != nil {
		return nil, err
	}
	timeOfDay, err := p.Time()
	if err != nil {
		return nil, err
	}
	description, err := p.Description()
	if err != nil {
		return nil, err
	}
	return domain.NewTask(priority, date, timeOfDay, description), nil
}

// EditField parses the field name and, when recognized, re-invokes the
// matching sub-prompt and replaces that field in place. An unrecognized name
// yields a failure result with reason "Invalid field" and no mutation; a
// recognized one always succeeds once its sub-prompt completes.
func (p *Prompter) EditField(task *domain.Task, fieldName string) (domain.EditResult, error) {
	field, err := domain.ParseField(fieldName)
	if err != nil {
		return domain.EditFailed("Invalid field"), nil
	}

	var edit domain.FieldEdit
	switch field {
	case domain.FieldPriority:
		priority, err := p.Priority()
		if err != nil {
			return domain.EditResult{}, err
		}
		edit = domain.PriorityEdit(priority)
	case domain.FieldDate:
		date, err := p.Date()
		if err != nil {
			return domain.EditResult{}, err
		}
		edit = domain.DateEdit(date)
	case domain.FieldTime:
		timeOfDay, err := p.Time()
		if err != nil {
			return domain.EditResult{}, err
		}
		edit = domain.TimeEdit(timeOfDay)
	case domain.FieldDescription:
		lines, err := p.Description()
		if err != nil {
			return domain.EditResult{}, err
		}
		edit = domain.DescriptionEdit(lines)
	}

	task.Apply(edit)
	return domain.EditOK(), nil
}

// TaskNumber prompts for a 1-based task number until one within [1,size] is
// entered.
func (p *Prompter) TaskNumber(size int) (int, error) {
	for {
		p.Printf("Task number (1-%d): ", size)
		line, err := p.ReadLine()
		if err != nil {
			return 0, err
		}
		input := strings.TrimSpace(line)
		n, convErr := strconv.Atoi(input)
		if convErr != nil || n < 1 || n > size {
			p.Println(errors.GetUserMessage(errors.NewInvalidTaskNumberError(input, size)))
			continue
		}
		return n, nil
	}
}

// FieldName prompts once for the name of the field to edit.
func (p *Prompter) FieldName() (string, error) {
	p.Printf("Field to edit (priority/date/time/task): ")
	return p.ReadLine()
}
