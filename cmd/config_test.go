package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"workorders/internal/adapters/out/postgres"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestConfigFromLookup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := configFromLookup(lookupFrom(nil))

		require.NoError(t, err)
		assert.Equal(t, "9095", cfg.HTTPPort)
		assert.Equal(t, postgres.DriverPostgres, cfg.DB.Driver)
		assert.Equal(t, "@every 5s", cfg.Jobs.NotificationSchedule)
		assert.Equal(t, 50, cfg.Jobs.NotificationBatchSize)
		assert.Equal(t, 5, cfg.Jobs.NotificationMaxAttempts)
		assert.Equal(t, 10*time.Second, cfg.NtfyTimeout)
		assert.Equal(t, "permissive", cfg.TransitionPolicy)
		assert.Empty(t, cfg.CORSAllowOrigins)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := configFromLookup(lookupFrom(map[string]string{
			"HTTP_PORT":                 "8080",
			"DB_DRIVER":                 "sqlite",
			"SQLITE_PATH":               "/tmp/wo.db",
			"ASSETS_FILE":               "assets.toml",
			"NTFY_URL":                  "https://ntfy.sh/utility",
			"NTFY_TIMEOUT_SECONDS":      "3",
			"NOTIFICATION_SCHEDULE":     "*/10 * * * * *",
			"NOTIFICATION_BATCH_SIZE":   "7",
			"NOTIFICATION_MAX_ATTEMPTS": "2",
			"TRANSITION_POLICY":         "strict",
			"CORS_ALLOW_ORIGINS":        "http://a.example, ,http://b.example",
			"LOG_FORMAT":                "json",
		}))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, postgres.DriverSQLite, cfg.DB.Driver)
		assert.Equal(t, "/tmp/wo.db", cfg.DB.SQLitePath)
		assert.Equal(t, "assets.toml", cfg.AssetsFile)
		assert.Equal(t, "https://ntfy.sh/utility", cfg.NtfyURL)
		assert.Equal(t, 3*time.Second, cfg.NtfyTimeout)
		assert.Equal(t, "*/10 * * * * *", cfg.Jobs.NotificationSchedule)
		assert.Equal(t, 7, cfg.Jobs.NotificationBatchSize)
		assert.Equal(t, 2, cfg.Jobs.NotificationMaxAttempts)
		assert.Equal(t, "strict", cfg.TransitionPolicy)
		assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowOrigins)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("invalid values are reported together", func(t *testing.T) {
		_, err := configFromLookup(lookupFrom(map[string]string{
			"HTTP_PORT":               "http",
			"NOTIFICATION_BATCH_SIZE": "many",
		}))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "HTTP_PORT")
		assert.Contains(t, err.Error(), "NOTIFICATION_BATCH_SIZE")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads the env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("WORKORDERS_UNUSED=1\nASSETS_FILE=from-file.toml\n"), 0o600))
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "from-file.toml", cfg.AssetsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("LOG_FORMAT=json\n"), 0o600))
		t.Setenv("LOG_FORMAT", "text")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("missing file is fine", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

		assert.NoError(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "id", 7)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = NewLogger(&buf, "loud", "text")
	require.Error(t, err)
	_, err = NewLogger(&buf, "info", "xml")
	require.Error(t, err)
}
