package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tasklist/internal/api"
	"tasklist/internal/config"
	"tasklist/internal/repository/sqlite"
)

// RootCommand represents the base command that starts the interactive session
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tl",
		Short: "An interactive command-line task list manager",
		Long: `Task List (tl) is an interactive command-line task list manager.

Each task carries a priority (Critical/High/Normal/Low), a due date, a due
time and a multi-line description. The list is kept in a local store between
runs and printed as a colored, bordered table.

COMMANDS (typed at the interactive prompt):
  add        Create a task; each field is prompted and validated in turn
  print      Print the list as a table, with urgency computed against today
  edit       Replace one field (priority/date/time/task) of a task by number
  delete     Remove a task by its 1-based number
  help       Show the command summary
  end        Save the list and quit; the only way out

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment
  variables > config file (~/.config/tl/config.toml) > defaults

    TL_DB_DIR                        Database directory (default: ~/.tl)
    TL_DB_FILENAME                   Database filename (default: tasks.db)
    TL_DB_QUERY_TIMEOUT              Query timeout (default: 10s)
    TL_DB_WRITE_TIMEOUT              Write timeout (default: 5s)
    TL_UTC_OFFSET                    Fixed UTC offset in hours for "today" (default: 0)
    TL_DISPLAY_DESCRIPTION_WIDTH     Description wrap width (default: 44)
    TL_APP_VERBOSE                   Enable verbose output (default: false)
    TL_CONFIG                        Alternative config file path
    TL_DEBUG                         Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.runSession(cmd.Context())
		},
	}

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// runSession opens the task store and runs the interactive loop against it.
func (r *RootCommand) runSession(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := r.config.EnsureDatabaseDir(); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(r.config.GetDatabasePath())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	app := NewApp(api.New(repo), r.config, os.Stdin, os.Stdout)
	return app.Run(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TL_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TL_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TL_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TL_DB_WRITE_TIMEOUT)")

	flags.Int("utc-offset", 0, "Fixed UTC offset in hours for today (overrides TL_UTC_OFFSET)")
	flags.Int("description-width", 0, "Description wrap width (overrides TL_DISPLAY_DESCRIPTION_WIDTH)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TL_APP_VERBOSE)")
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if r.cmd.PersistentFlags().Changed("utc-offset") {
		offset, _ := flags.GetInt("utc-offset")
		r.config.Time.UTCOffsetHours = offset
	}
	if width, _ := flags.GetInt("description-width"); width > 0 {
		r.config.Display.DescriptionWidth = width
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}
