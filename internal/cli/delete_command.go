package cli

import (
	"context"

	"tasklist/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute removes one task by its 1-based position. A selection outside the
// list is rejected and the list stays unchanged.
func (c *DeleteCommand) Execute(ctx context.Context) error {
	if c.app.list.Len() == 0 {
		return errors.NewEmptyListError("delete")
	}

	number, err := c.app.prompter.TaskNumber(c.app.list.Len())
	if err != nil {
		return err
	}
	if err := c.app.list.Delete(number); err != nil {
		return err
	}

	c.app.prompter.Printf("Task %d deleted.\n", number)
	return nil
}
