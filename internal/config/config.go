package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ttb/internal/domain"
)

// Config holds all configuration options for the time tracker application
type Config struct {
	Database   DatabaseConfig
	Tracker    TrackerConfig
	Validation ValidationConfig
	Display    DisplayConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TTB_DB_DIR"`
	Filename       string        `env:"TTB_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TTB_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TTB_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TTB_DB_DIR_PERMISSIONS"`
}

// TrackerConfig holds session tracking configuration
type TrackerConfig struct {
	TickInterval  time.Duration `env:"TTB_TICK_INTERVAL"`
	PollInterval  time.Duration `env:"TTB_POLL_INTERVAL"`
	IdleThreshold time.Duration `env:"TTB_IDLE_THRESHOLD"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ProjectNameMaxLength int `env:"TTB_VALIDATION_PROJECT_NAME_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DefaultCurrency domain.Currency `env:"TTB_DISPLAY_CURRENCY"`
	DateFormat      string          `env:"TTB_DISPLAY_DATE_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".ttb")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "ttb.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Tracker: TrackerConfig{
			TickInterval:  time.Second,
			PollInterval:  time.Second,
			IdleThreshold: 300 * time.Second,
		},
		Validation: ValidationConfig{
			ProjectNameMaxLength: 255,
		},
		Display: DisplayConfig{
			DefaultCurrency: domain.CurrencyEUR,
			DateFormat:      "2006-01-02",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TTB_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TTB_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TTB_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TTB_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TTB_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Tracker configuration
	if interval := os.Getenv("TTB_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Tracker.TickInterval = d
		}
	}
	if interval := os.Getenv("TTB_POLL_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Tracker.PollInterval = d
		}
	}
	if threshold := os.Getenv("TTB_IDLE_THRESHOLD"); threshold != "" {
		if d, err := time.ParseDuration(threshold); err == nil {
			c.Tracker.IdleThreshold = d
		}
	}

	// Validation configuration
	if maxLen := os.Getenv("TTB_VALIDATION_PROJECT_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.ProjectNameMaxLength = n
		}
	}

	// Display configuration
	if currency := os.Getenv("TTB_DISPLAY_CURRENCY"); currency != "" {
		if cur := domain.Currency(currency); cur.IsValid() {
			c.Display.DefaultCurrency = cur
		}
	}
	if format := os.Getenv("TTB_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Tracker.TickInterval <= 0 {
		return &ConfigError{Field: "tracker.tick_interval", Message: "tick interval must be positive"}
	}
	if c.Tracker.PollInterval <= 0 {
		return &ConfigError{Field: "tracker.poll_interval", Message: "poll interval must be positive"}
	}
	if c.Tracker.IdleThreshold <= 0 {
		return &ConfigError{Field: "tracker.idle_threshold", Message: "idle threshold must be positive"}
	}

	if c.Validation.ProjectNameMaxLength < 1 {
		return &ConfigError{Field: "validation.project_name_max_length", Message: "project name maximum length must be at least 1"}
	}

	if !c.Display.DefaultCurrency.IsValid() {
		return &ConfigError{Field: "display.default_currency", Message: "default currency must be a supported currency code"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
