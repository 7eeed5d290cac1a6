package cli

import (
	"context"
)

// PrintCommand handles the print command
type PrintCommand struct {
	app *App
}

// NewPrintCommand creates a new print command handler
func NewPrintCommand(app *App) *PrintCommand {
	return &PrintCommand{app: app}
}

// Execute renders the current list as a table. An empty list prints the
// notice and nothing else.
func (c *PrintCommand) Execute(ctx context.Context) error {
	c.app.renderer.Render(c.app.list.Tasks(), c.app.today())
	return nil
}
