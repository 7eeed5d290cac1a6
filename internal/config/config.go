package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task list application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Time        TimeConfig        `toml:"time"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `toml:"dir" env:"TL_DB_DIR"`
	Filename       string        `toml:"filename" env:"TL_DB_FILENAME"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TL_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TL_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TL_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds the fixed offset used when evaluating "today"
type TimeConfig struct {
	UTCOffsetHours int `toml:"utc_offset_hours" env:"TL_UTC_OFFSET"`
}

// DisplayConfig holds table rendering configuration
type DisplayConfig struct {
	DescriptionWidth int `toml:"description_width" env:"TL_DISPLAY_DESCRIPTION_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"TL_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tl")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tasks.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			UTCOffsetHours: 0,
		},
		Display: DisplayConfig{
			DescriptionWidth: 44,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// EnsureDatabaseDir creates the database directory if it does not exist
func (c *Config) EnsureDatabaseDir() error {
	return os.MkdirAll(c.Database.Dir, os.FileMode(c.Database.DirPermissions))
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TL_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TL_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TL_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TL_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TL_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	if offset := os.Getenv("TL_UTC_OFFSET"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			c.Time.UTCOffsetHours = n
		}
	}

	if width := os.Getenv("TL_DISPLAY_DESCRIPTION_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil {
			c.Display.DescriptionWidth = w
		}
	}

	if verbose := os.Getenv("TL_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory cannot be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename cannot be empty")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database query timeout must be positive")
	}
	if c.Database.WriteTimeout <= 0 {
		return fmt.Errorf("database write timeout must be positive")
	}
	if c.Time.UTCOffsetHours < -12 || c.Time.UTCOffsetHours > 14 {
		return fmt.Errorf("utc offset must be between -12 and +14 hours")
	}
	if c.Display.DescriptionWidth < 1 {
		return fmt.Errorf("description width must be positive")
	}
	return nil
}
