package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "Europe/Madrid", cfg.Parse.Timezone)
	assert.Equal(t, "http://localhost:8080/oauth2callback", cfg.Google.RedirectURL)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9999")
	t.Setenv("SHIFT_TIMEZONE", "Europe/Lisbon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "Europe/Lisbon", cfg.Parse.Timezone)
	assert.Equal(t, "Europe/Lisbon", cfg.Parse.Location().String())
}

func TestLoadMissingSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadTimezone(t *testing.T) {
	setRequired(t)
	t.Setenv("SHIFT_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}
