package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"tasklist/internal/api"
	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/logging"
	"tasklist/internal/prompt"
	"tasklist/internal/render"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the interactive task list session: it owns the in-memory
// collection for the lifetime of the loop and hands it back to the
// persistence port exactly once, at orderly exit.
type App struct {
	api          api.API
	config       *config.Config
	prompter     *prompt.Prompter
	renderer     *render.TableRenderer
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	list         *List
}

// NewApp creates an interactive session reading commands from in and writing
// everything through out.
func NewApp(apiInstance api.API, cfg *config.Config, in io.Reader, out io.Writer) *App {
	app := &App{
		api:          apiInstance,
		config:       cfg,
		prompter:     prompt.New(in, out),
		renderer:     render.NewTableRendererWithWidth(out, cfg.Display.DescriptionWidth),
		errorHandler: NewErrorHandler(),
		list:         NewList(nil),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// today returns the evaluation date for urgency, shifted by the configured
// fixed UTC offset.
func (a *App) today() domain.Date {
	return domain.Today(timeNow(), a.config.Time.UTCOffsetHours)
}

// Run loads the saved collection, processes commands until "end" (or until
// input closes), then saves the collection. A load failure means starting
// with an empty list, never a fatal error; no command error ends the loop.
func (a *App) Run(ctx context.Context) error {
	tasks, err := a.api.LoadTasks(ctx)
	if err != nil {
		logging.Debugf("load failed: %v\n", err)
		a.prompter.Println("Could not load saved tasks; starting with an empty list.")
		tasks = nil
	}
	a.list = NewList(tasks)

loop:
	for {
		a.prompter.Printf("Enter command (add/print/edit/delete/end): ")
		line, err := a.prompter.ReadLine()
		if err != nil {
			break // input closed, treat as orderly end
		}

		word := strings.ToLower(strings.TrimSpace(line))
		switch word {
		case "":
		case "end":
			break loop
		case "help":
			a.prompter.Println(a.registry.GetUsage())
		default:
			if err := a.registry.Execute(ctx, word); err != nil {
				if errors.Is(err, prompt.ErrInputClosed) {
					break loop
				}
				a.prompter.Println(a.errorHandler.UserMessage(err))
			}
		}
	}

	if err := a.api.SaveTasks(ctx, a.list.Tasks()); err != nil {
		return a.errorHandler.Handle("save tasks", err)
	}
	return nil
}
