package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"workorders/internal/adapters/out/postgres"
	"workorders/internal/jobs"
	"workorders/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort                = "9095"
	defaultNotificationBatchSize   = 50
	defaultNotificationMaxAttempts = 5
	defaultNtfyTimeout             = 10 * time.Second
)

type Config struct {
	HTTPPort string
	DB       postgres.Config

	AssetsFile string

	NtfyURL     string
	NtfyTimeout time.Duration

	Jobs jobs.Config

	TransitionPolicy string
	CORSAllowOrigins []string

	LogLevel  string
	LogFormat string
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		HTTPPort: defaultHTTPPort,
		DB: postgres.Config{
			Driver:  postgres.DriverPostgres,
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "workorders",
			SSLMode: "disable",
		},
		NtfyTimeout: defaultNtfyTimeout,
		Jobs: jobs.Config{
			NotificationSchedule:    jobs.DefaultNotificationSchedule,
			NotificationBatchSize:   defaultNotificationBatchSize,
			NotificationMaxAttempts: defaultNotificationMaxAttempts,
		},
		TransitionPolicy: "permissive",
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// LoadConfig reads the configuration from the environment. Variables missing
// from the environment are taken from envFile when it exists. The process
// environment is not modified.
func LoadConfig(envFile string) (Config, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	return configFromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	})
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	var errList []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	integer := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(key, err))
			return
		}
		*dst = n
	}

	str("HTTP_PORT", &cfg.HTTPPort)
	str("DB_DRIVER", &cfg.DB.Driver)
	str("DB_HOST", &cfg.DB.Host)
	str("DB_PORT", &cfg.DB.Port)
	str("DB_USER", &cfg.DB.User)
	str("DB_PASSWORD", &cfg.DB.Password)
	str("DB_NAME", &cfg.DB.Name)
	str("DB_SSLMODE", &cfg.DB.SSLMode)
	str("SQLITE_PATH", &cfg.DB.SQLitePath)
	str("ASSETS_FILE", &cfg.AssetsFile)
	str("NTFY_URL", &cfg.NtfyURL)
	str("NOTIFICATION_SCHEDULE", &cfg.Jobs.NotificationSchedule)
	integer("NOTIFICATION_BATCH_SIZE", &cfg.Jobs.NotificationBatchSize)
	integer("NOTIFICATION_MAX_ATTEMPTS", &cfg.Jobs.NotificationMaxAttempts)
	str("TRANSITION_POLICY", &cfg.TransitionPolicy)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)

	timeoutSeconds := int(cfg.NtfyTimeout / time.Second)
	integer("NTFY_TIMEOUT_SECONDS", &timeoutSeconds)
	cfg.NtfyTimeout = time.Duration(timeoutSeconds) * time.Second

	if v, ok := lookup("CORS_ALLOW_ORIGINS"); ok {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
			}
		}
	}

	if port, err := strconv.Atoi(cfg.HTTPPort); err != nil || port <= 0 || port > 65535 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("HTTP_PORT", cfg.HTTPPort, 1, 65535))
	}
	if cfg.Jobs.NotificationBatchSize <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"NOTIFICATION_BATCH_SIZE", cfg.Jobs.NotificationBatchSize, 1, "unbounded"))
	}
	if cfg.Jobs.NotificationMaxAttempts <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"NOTIFICATION_MAX_ATTEMPTS", cfg.Jobs.NotificationMaxAttempts, 1, "unbounded"))
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
