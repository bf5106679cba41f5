package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, EnvDevelopment, cfg.Environment)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.DatabaseURL)
		assert.Equal(t, DefaultSessionCapacity, cfg.SessionCapacity)
		assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
		assert.Equal(t, time.Duration(0), cfg.AuctionDeadline)
		assert.Equal(t, int64(DefaultMaxRequestBytes), cfg.MaxRequestBytes)
		assert.Equal(t, DefaultCheckpointInterval, cfg.CheckpointInterval)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/cases")
		t.Setenv("DB_MAX_CONNS", "20")
		t.Setenv("SESSION_CAPACITY", "32")
		t.Setenv("SESSION_TTL", "90m")
		t.Setenv("AUCTION_DEADLINE", "5m")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")
		t.Setenv("EXPERIMENT_CONFIG", "configs/experiment.yaml")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "postgres://user:pass@db:5432/cases", cfg.DatabaseURL)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 32, cfg.SessionCapacity)
		assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
		assert.Equal(t, 5*time.Minute, cfg.AuctionDeadline)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, "configs/experiment.yaml", cfg.ExperimentConfigPath)
		assert.Equal(t, ":3000", cfg.Addr())
	})

	t.Run("returns error when API_KEY is missing in production", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENVIRONMENT", "production")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", true},
			{"max valid port", "65535", false},
			{"above max port", "65536", true},
			{"negative port", "-1", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("PORT", tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_FORMAT")
	})

	t.Run("zero checkpoint interval disables checkpoints", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("CHECKPOINT_INTERVAL", "0s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Zero(t, cfg.CheckpointInterval)
	})

	t.Run("rejects negative auction deadline", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("AUCTION_DEADLINE", "-1m")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "AUCTION_DEADLINE")
	})
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Port:        0,
		LogFormat:   "text",
		Environment: EnvProduction,
		DBMaxConns:  1,
		Workers:     0,
		QueueSize:   -1,
	}

	err := cfg.Validate()

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, ErrMsgPortOutOfRange)
	assert.Contains(t, msg, ErrMsgAPIKeyRequired)
	assert.Contains(t, msg, "SESSION_CAPACITY must be positive")
	assert.Contains(t, msg, "WORKERS must be positive")
	assert.Contains(t, msg, "WORKER_QUEUE_SIZE must be positive")
	assert.Contains(t, msg, "MAX_REQUEST_BYTES must be positive")
	assert.NotContains(t, msg, "DB_MAX_CONNS")
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "no key and no database",
			cfg:  Config{},
			want: []string{WarnMsgNoAPIKey, WarnMsgNoDatabase},
		},
		{
			name: "example key",
			cfg:  Config{APIKey: ExampleAPIKey, DatabaseURL: "postgres://db"},
			want: []string{WarnMsgExampleAPIKey},
		},
		{
			name: "fully configured",
			cfg:  Config{APIKey: "secret", DatabaseURL: "postgres://db"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Warnings())
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		unsetEnv(t, "TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42), "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"minutes", "10m", 10 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"complex duration", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
		{"invalid duration", "not-a-duration", 5 * time.Minute},
		{"plain number without unit", "100", 5 * time.Minute},
		{"empty string", "", 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", " a ,b,, c ")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsList("TEST_LIST_VAR"))

	unsetEnv(t, "TEST_LIST_VAR")
	assert.Nil(t, getEnvAsList("TEST_LIST_VAR"))
}

// unsetEnv removes key for the duration of the test, restoring it afterwards
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// clearEnvVars clears all config-related env vars to ensure clean test state
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "TRUSTED_PROXIES", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"DATABASE_URL", "DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"SESSION_CAPACITY", "SESSION_TTL", "WORKERS", "WORKER_QUEUE_SIZE", "MAX_REQUEST_BYTES",
		"AUCTION_DEADLINE", "EXPERIMENT_CONFIG", "CHECKPOINT_INTERVAL",
		"EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "EVENT_DEADLETTER_PATH", "SHUTDOWN_TIMEOUT",
	}

	for _, key := range envVars {
		unsetEnv(t, key)
	}
}
