// Package config reads the bot's static configuration from the environment.
// Values are read once at startup and never change afterwards.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultPollCapacity = 10
	DefaultLedgerPath   = "puntos.json"
)

type Config struct {
	Token                 string
	VerificationChannelID string
	PollChannelID         string
	RestrictedRoleID      string
	VerifiedRoleID        string
	PollCapacity          int
	LedgerPath            string
	StatusAddr            string
	LogLevel              slog.Level
}

// Load reads the configuration from environment variables. Callers that want
// .env support load it into the environment beforehand.
func Load() (Config, error) {
	cfg := Config{
		Token:                 os.Getenv("TOKEN"),
		VerificationChannelID: os.Getenv("VERIFICATION_CHANNEL_ID"),
		PollChannelID:         os.Getenv("POLL_CHANNEL_ID"),
		RestrictedRoleID:      os.Getenv("RESTRICTED_ROLE_ID"),
		VerifiedRoleID:        os.Getenv("VERIFIED_ROLE_ID"),
		PollCapacity:          DefaultPollCapacity,
		LedgerPath:            os.Getenv("LEDGER_PATH"),
		StatusAddr:            os.Getenv("STATUS_ADDR"),
		LogLevel:              slog.LevelInfo,
	}

	required := []struct {
		name  string
		value string
	}{
		{"TOKEN", cfg.Token},
		{"VERIFICATION_CHANNEL_ID", cfg.VerificationChannelID},
		{"POLL_CHANNEL_ID", cfg.PollChannelID},
		{"RESTRICTED_ROLE_ID", cfg.RestrictedRoleID},
		{"VERIFIED_ROLE_ID", cfg.VerifiedRoleID},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if capStr := os.Getenv("POLL_CAPACITY"); capStr != "" {
		capacity, err := strconv.Atoi(capStr)
		if err != nil || capacity <= 0 {
			return Config{}, errors.New("invalid POLL_CAPACITY env variable")
		}
		cfg.PollCapacity = capacity
	}

	if cfg.LedgerPath == "" {
		cfg.LedgerPath = DefaultLedgerPath
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL env variable: %w", err)
		}
	}

	return cfg, nil
}
