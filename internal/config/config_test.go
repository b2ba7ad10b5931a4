package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ttb/internal/domain"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "ttb.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, uint32(0755), cfg.Database.DirPermissions)

	assert.Equal(t, time.Second, cfg.Tracker.TickInterval)
	assert.Equal(t, time.Second, cfg.Tracker.PollInterval)
	assert.Equal(t, 300*time.Second, cfg.Tracker.IdleThreshold)

	assert.Equal(t, 255, cfg.Validation.ProjectNameMaxLength)
	assert.Equal(t, domain.CurrencyEUR, cfg.Display.DefaultCurrency)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TTB_DB_DIR", "/tmp/ttb-test")
	t.Setenv("TTB_DB_FILENAME", "other.db")
	t.Setenv("TTB_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TTB_TICK_INTERVAL", "500ms")
	t.Setenv("TTB_IDLE_THRESHOLD", "10m")
	t.Setenv("TTB_DISPLAY_CURRENCY", "JPY")

	cfg := NewConfig()
	err := cfg.LoadFromEnvironment()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ttb-test", cfg.Database.Dir)
	assert.Equal(t, "other.db", cfg.Database.Filename)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Tracker.TickInterval)
	assert.Equal(t, 10*time.Minute, cfg.Tracker.IdleThreshold)
	assert.Equal(t, domain.CurrencyJPY, cfg.Display.DefaultCurrency)
}

func TestLoadFromEnvironment_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("TTB_DB_QUERY_TIMEOUT", "not-a-duration")
	t.Setenv("TTB_DISPLAY_CURRENCY", "CHF")

	cfg := NewConfig()
	err := cfg.LoadFromEnvironment()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, domain.CurrencyEUR, cfg.Display.DefaultCurrency)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectError bool
		errorField  string
	}{
		{
			name:   "should accept default configuration",
			modify: func(c *Config) {},
		},
		{
			name:        "should reject empty database directory",
			modify:      func(c *Config) { c.Database.Dir = "" },
			expectError: true,
			errorField:  "database.dir",
		},
		{
			name:        "should reject empty database filename",
			modify:      func(c *Config) { c.Database.Filename = "" },
			expectError: true,
			errorField:  "database.filename",
		},
		{
			name:        "should reject non-positive tick interval",
			modify:      func(c *Config) { c.Tracker.TickInterval = 0 },
			expectError: true,
			errorField:  "tracker.tick_interval",
		},
		{
			name:        "should reject non-positive idle threshold",
			modify:      func(c *Config) { c.Tracker.IdleThreshold = -time.Second },
			expectError: true,
			errorField:  "tracker.idle_threshold",
		},
		{
			name:        "should reject unsupported default currency",
			modify:      func(c *Config) { c.Display.DefaultCurrency = domain.Currency("XXX") },
			expectError: true,
			errorField:  "display.default_currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()

			if tt.expectError {
				require.Error(t, err)
				configErr, ok := err.(*ConfigError)
				require.True(t, ok)
				assert.Equal(t, tt.errorField, configErr.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data/ttb"
	cfg.Database.Filename = "sessions.db"

	assert.Equal(t, "/data/ttb/sessions.db", cfg.GetDatabasePath())
}
