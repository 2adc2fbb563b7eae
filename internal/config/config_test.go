package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "@every 1m", cfg.Reminders.CheckSchedule)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenExp())
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: "9090"
  mode: production
jwt:
  secret: file-secret
  access_token_expiration: 2h
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.AccessTokenExp())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "@every 1m", cfg.Reminders.CheckSchedule, "unset keys keep their defaults")
}

func TestEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("REMINDER_CHECK_SCHEDULE", "@every 5m")
	t.Setenv("EMAIL_PORT", "2525")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "@every 5m", cfg.Reminders.CheckSchedule)
	assert.Equal(t, 2525, cfg.Email.Port)
}

func TestInvalidTokenExpiration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "one day")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
