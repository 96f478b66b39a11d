package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db?cache=shared"
  max_open_conns: 20

update:
  default_interval: 30m
  min_interval: 15m
  max_interval: 12h
  max_workers: 4

escalation:
  autodiscovery_after: 12h
  unavailable_after: 72h

retention:
  max_feed_entries: 200

http:
  user_agent: "TestAgent/2.0"
  timeout: 10s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?cache=shared", cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Update.DefaultInterval)
	assert.Equal(t, 15*time.Minute, cfg.Update.MinInterval)
	assert.Equal(t, 12*time.Hour, cfg.Update.MaxInterval)
	assert.Equal(t, 4, cfg.Update.MaxWorkers)
	assert.Equal(t, 12*time.Hour, cfg.Escalation.AutodiscoveryAfter)
	assert.Equal(t, 72*time.Hour, cfg.Escalation.UnavailableAfter)
	assert.Equal(t, 200, cfg.Retention.MaxFeedEntries)
	assert.Equal(t, "TestAgent/2.0", cfg.HTTP.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:feedpulse.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, time.Hour, cfg.Update.DefaultInterval)
	assert.Equal(t, 10*time.Minute, cfg.Update.MinInterval)
	assert.Equal(t, 24*time.Hour, cfg.Update.MaxInterval)
	assert.Equal(t, 8, cfg.Update.MaxWorkers)
	assert.Equal(t, 24*time.Hour, cfg.Escalation.AutodiscoveryAfter)
	assert.Equal(t, 168*time.Hour, cfg.Escalation.UnavailableAfter)
	assert.Equal(t, 500, cfg.Retention.MaxFeedEntries)
	assert.Equal(t, "FeedPulse/1.0", cfg.HTTP.UserAgent)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_DSN", "file:from-env.db")

	path := writeConfig(t, `
database:
  dsn: "${TEST_DB_DSN}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file:from-env.db", cfg.Database.DSN)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "max interval below min",
			yaml:    "update:\n  min_interval: 1h\n  max_interval: 30m\n",
			wantErr: "update.max_interval",
		},
		{
			name:    "default interval out of bounds",
			yaml:    "update:\n  default_interval: 5m\n  min_interval: 10m\n  max_interval: 1h\n",
			wantErr: "update.default_interval",
		},
		{
			name:    "retirement before autodiscovery",
			yaml:    "escalation:\n  autodiscovery_after: 48h\n  unavailable_after: 24h\n",
			wantErr: "escalation.unavailable_after",
		},
		{
			name:    "tiny server timeout",
			yaml:    "server:\n  timeout: 100ms\n",
			wantErr: "server timeout",
		},
		{
			name:    "tiny min interval",
			yaml:    "update:\n  min_interval: 5s\n",
			wantErr: "update.min_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}
