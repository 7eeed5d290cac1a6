package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the on-disk TOML shape. Durations are written as
// strings ("10s") and parsed here.
type fileConfig struct {
	Database struct {
		Dir          string `toml:"dir"`
		Filename     string `toml:"filename"`
		QueryTimeout string `toml:"query_timeout"`
		WriteTimeout string `toml:"write_timeout"`
	} `toml:"database"`
	Time struct {
		UTCOffsetHours *int `toml:"utc_offset_hours"`
	} `toml:"time"`
	Display struct {
		DescriptionWidth *int `toml:"description_width"`
	} `toml:"display"`
	Application struct {
		Verbose *bool `toml:"verbose"`
	} `toml:"application"`
}

// ConfigFilePath returns the path of the optional config file: TL_CONFIG if
// set, otherwise ~/.config/tl/config.toml.
func ConfigFilePath() string {
	if path := os.Getenv("TL_CONFIG"); path != "" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "tl", "config.toml")
}

// Load builds the effective configuration: defaults, then the optional TOML
// file, then environment variables. Flag overrides are applied later by the
// CLI layer.
func Load() (*Config, error) {
	cfg := NewConfig()

	if path := ConfigFilePath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.loadFromFile(path); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays values from a TOML file onto the configuration.
func (c *Config) loadFromFile(path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return err
	}

	if fc.Database.Dir != "" {
		c.Database.Dir = fc.Database.Dir
	}
	if fc.Database.Filename != "" {
		c.Database.Filename = fc.Database.Filename
	}
	if fc.Database.QueryTimeout != "" {
		if d, err := time.ParseDuration(fc.Database.QueryTimeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if fc.Database.WriteTimeout != "" {
		if d, err := time.ParseDuration(fc.Database.WriteTimeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if fc.Time.UTCOffsetHours != nil {
		c.Time.UTCOffsetHours = *fc.Time.UTCOffsetHours
	}
	if fc.Display.DescriptionWidth != nil {
		c.Display.DescriptionWidth = *fc.Display.DescriptionWidth
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}

	return nil
}
