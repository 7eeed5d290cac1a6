package cli

import (
	"context"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute prompts a complete new task and appends it to the list.
func (c *AddCommand) Execute(ctx context.Context) error {
	task, err := c.app.prompter.NewTask()
	if err != nil {
		return err
	}
	c.app.list.Append(task)
	c.app.prompter.Println("Task added.")
	return nil
}
