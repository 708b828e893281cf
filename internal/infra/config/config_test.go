package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(body), 0o644))
	return filename
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, StorageJSON, cfg.Storage.Type)
	assert.Equal(t, 2, cfg.Interview.QuestionsPerTier)
	assert.Equal(t, time.Second, cfg.Interview.TickInterval)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadConfig_YAML(t *testing.T) {
	filename := writeConfig(t, `
server:
  host: 127.0.0.1
  port: "9090"
storage:
  type: Postgres
database:
  host: db
  port: "5433"
  user: hr
  password: secret
  dbname: interviews
interview:
  questions_per_tier: 3
  tick_interval: 500ms
debug: true
`)
	cfg, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, StoragePostgres, cfg.Storage.Type)
	assert.Equal(t, "postgres://hr:secret@db:5433/interviews", cfg.DatabaseURL())
	assert.Equal(t, 3, cfg.Interview.QuestionsPerTier)
	assert.Equal(t, 500*time.Millisecond, cfg.Interview.TickInterval)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "memory")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("TICK_INTERVAL", "2s")
	t.Setenv("QUESTIONS_PER_TIER", "1")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("DEBUG", "1")

	cfg, err := LoadConfig(writeConfig(t, "storage:\n  type: json\n"))
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, ":7000", cfg.Addr())
	assert.Equal(t, 2*time.Second, cfg.Interview.TickInterval)
	assert.Equal(t, 1, cfg.Interview.QuestionsPerTier)
	assert.Equal(t, "token", cfg.TelegramBot.Token)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown storage":    "storage:\n  type: redis\n",
		"postgres no db":     "storage:\n  type: postgres\n",
		"zero questions":     "interview:\n  questions_per_tier: 0\n",
		"negative tick":      "interview:\n  tick_interval: -1s\n",
		"webhook no url":     "telegram_bot:\n  token: t\n  mode: webhook\n",
		"unknown mode":       "telegram_bot:\n  mode: carrier-pigeon\n",
		"malformed document": "server: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
