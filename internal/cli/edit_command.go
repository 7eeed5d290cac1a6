package cli

import (
	"context"

	"tasklist/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app *App
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute selects a task by number, then loops on the field name prompt:
// an unrecognized name reports the edit result's reason and asks again, a
// recognized one runs its sub-prompt and replaces the field in place.
func (c *EditCommand) Execute(ctx context.Context) error {
	if c.app.list.Len() == 0 {
		return errors.NewEmptyListError("edit")
	}

	number, err := c.app.prompter.TaskNumber(c.app.list.Len())
	if err != nil {
		return err
	}
	task, err := c.app.list.Get(number)
	if err != nil {
		return err
	}

	for {
		fieldName, err := c.app.prompter.FieldName()
		if err != nil {
			return err
		}
		result, err := c.app.prompter.EditField(task, fieldName)
		if err != nil {
			return err
		}
		if !result.OK() {
			c.app.prompter.Println(result.Reason())
			continue
		}
		c.app.prompter.Println("Task updated.")
		return nil
	}
}
