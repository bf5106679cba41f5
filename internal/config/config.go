package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string // empty disables API key authentication
	TrustedProxies []string

	LogLevel    string
	LogFormat   string
	LogDir      string // empty logs to stdout only
	ServiceName string
	Version     string
	Environment string

	// DatabaseURL selects the postgres results store; empty keeps results in memory.
	DatabaseURL       string
	DBMaxConns        int
	DBMaxIdleTime     time.Duration
	DBMaxConnLifetime time.Duration

	SessionCapacity int
	SessionTTL      time.Duration
	Workers         int
	QueueSize       int
	MaxRequestBytes int64

	// CheckpointInterval is how often live sessions are snapshotted; zero disables it.
	CheckpointInterval time.Duration

	AuctionDeadline      time.Duration
	ExperimentConfigPath string

	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", ""),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", EnvDevelopment),

		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdleTime:     getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		SessionCapacity: getEnvAsInt("SESSION_CAPACITY", DefaultSessionCapacity),
		SessionTTL:      getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		Workers:         getEnvAsInt("WORKERS", DefaultWorkers),
		QueueSize:       getEnvAsInt("WORKER_QUEUE_SIZE", DefaultQueueSize),
		MaxRequestBytes: int64(getEnvAsInt("MAX_REQUEST_BYTES", DefaultMaxRequestBytes)),

		CheckpointInterval: getEnvAsDuration("CHECKPOINT_INTERVAL", DefaultCheckpointInterval),

		AuctionDeadline:      getEnvAsDuration("AUCTION_DEADLINE", 0),
		ExperimentConfigPath: getEnv("EXPERIMENT_CONFIG", ""),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, errors.New(ErrMsgPortOutOfRange))
	}
	if c.APIKey == "" && c.IsProduction() {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequired))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, errors.New(ErrMsgInvalidLogFormat))
	}
	for _, field := range []struct {
		name  string
		value int64
	}{
		{"DB_MAX_CONNS", int64(c.DBMaxConns)},
		{"SESSION_CAPACITY", int64(c.SessionCapacity)},
		{"WORKERS", int64(c.Workers)},
		{"WORKER_QUEUE_SIZE", int64(c.QueueSize)},
		{"MAX_REQUEST_BYTES", c.MaxRequestBytes},
	} {
		if field.value <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgNonPositive, field.name))
		}
	}
	if c.AuctionDeadline < 0 {
		errs = append(errs, errors.New(ErrMsgNegativeDeadline))
	}
	if c.CheckpointInterval < 0 {
		errs = append(errs, errors.New(ErrMsgNegativeCheckpoint))
	}

	return errors.Join(errs...)
}

// Warnings reports settings that are allowed but probably unintended.
func (c *Config) Warnings() []string {
	var warnings []string
	switch c.APIKey {
	case "":
		warnings = append(warnings, WarnMsgNoAPIKey)
	case ExampleAPIKey:
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.DatabaseURL == "" {
		warnings = append(warnings, WarnMsgNoDatabase)
	}
	return warnings
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable such as "30s" or "5m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
