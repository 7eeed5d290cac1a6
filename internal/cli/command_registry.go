package cli

import (
	"context"

	"tasklist/internal/errors"
)

// Command represents one word of the interactive command vocabulary
type Command interface {
	Execute(ctx context.Context) error
}

// CommandRegistry manages the closed command vocabulary
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("add", NewAddCommand(app))
	registry.Register("print", NewPrintCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("delete", NewDeleteCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the command named by the given vocabulary word
func (r *CommandRegistry) Execute(ctx context.Context, word string) error {
	command, exists := r.commands[word]
	if !exists {
		return errors.NewUnknownCommandError(word)
	}
	return command.Execute(ctx)
}

// GetUsage returns the usage string for the interactive loop
func (r *CommandRegistry) GetUsage() string {
	return "commands: add (new task), print (show the list), edit (change one field), delete (remove by number), help, end (save and quit)"
}
