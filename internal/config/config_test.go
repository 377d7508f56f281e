package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/pkg/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
secret = "file-secret"
`)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DB_PASSWORD", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "file-secret", cfg.Auth.Secret)
	assert.Equal(t, types.MustParseDate("2026-12-31"), cfg.Booking.Horizon())
	assert.Equal(t, "Asia/Kolkata", cfg.Booking.Location().String())
	assert.Equal(t, 14, cfg.Booking.CancellationNoticeDays)
	assert.Equal(t, "gemini-2.5-flash", cfg.Assistant.Model)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[assistant]
enabled = true
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("DB_PASSWORD", "pg-pass")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.Secret)
	assert.Equal(t, "gemini-key", cfg.Assistant.APIKey)
	assert.Contains(t, cfg.Database.DSN(), "password=pg-pass")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "mongo" }},
		{"bad horizon", func(c *Config) { c.Booking.HorizonEnd = "31.12.2026" }},
		{"bad timezone", func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{"empty secret", func(c *Config) { c.Auth.Secret = "" }},
		{"assistant without key", func(c *Config) { c.Assistant.Enabled = true }},
		{"zero rate", func(c *Config) { c.Assistant.RatePerMinute = 0 }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Auth.Secret = "s"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := Default()
	cfg.Auth.Secret = "s"
	assert.NoError(t, cfg.Validate())
}
