package internal

import (
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Database DatabaseConfig    `yaml:"database"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Database.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return nil
}

// DatabaseConfig holds the path to the SQLite database file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the database configuration.
func (c *DatabaseConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// DefaultDatabasePath returns the user-scoped default database location.
// Falls back to the working directory when the home directory is unknown.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quality_control.db"
	}
	return filepath.Join(home, ".blackroad", "quality_control.db")
}

// DefaultConfigPath returns the user-scoped config file location consulted
// when no --config flag is given. The file is optional.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "qualityctl.yaml"
	}
	return filepath.Join(home, ".blackroad", "qualityctl.yaml")
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Database: DatabaseConfig{
			Path: DefaultDatabasePath(),
		},
	}
}
