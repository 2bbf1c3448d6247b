package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TOKEN", "token")
	t.Setenv("VERIFICATION_CHANNEL_ID", "100")
	t.Setenv("POLL_CHANNEL_ID", "200")
	t.Setenv("RESTRICTED_ROLE_ID", "300")
	t.Setenv("VERIFIED_ROLE_ID", "400")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_CAPACITY", "")
	t.Setenv("LEDGER_PATH", "")
	t.Setenv("STATUS_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Token)
	assert.Equal(t, "100", cfg.VerificationChannelID)
	assert.Equal(t, "200", cfg.PollChannelID)
	assert.Equal(t, "300", cfg.RestrictedRoleID)
	assert.Equal(t, "400", cfg.VerifiedRoleID)
	assert.Equal(t, DefaultPollCapacity, cfg.PollCapacity)
	assert.Equal(t, DefaultLedgerPath, cfg.LedgerPath)
	assert.Empty(t, cfg.StatusAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_CAPACITY", "3")
	t.Setenv("LEDGER_PATH", "/var/lib/bot/ledger.json")
	t.Setenv("STATUS_ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.PollCapacity)
	assert.Equal(t, "/var/lib/bot/ledger.json", cfg.LedgerPath)
	assert.Equal(t, ":8080", cfg.StatusAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN", "")
	t.Setenv("POLL_CHANNEL_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN")
	assert.Contains(t, err.Error(), "POLL_CHANNEL_ID")
}

func TestLoadInvalidCapacity(t *testing.T) {
	for _, value := range []string{"zero", "0", "-4"} {
		t.Run(value, func(t *testing.T) {
			setRequired(t)
			t.Setenv("POLL_CAPACITY", value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}
