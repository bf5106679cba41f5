package config

import "time"

// Environments
const (
	EnvDevelopment = "dev"
	EnvProduction  = "production"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultServiceName        = "caseassign"
	DefaultVersion            = "dev"
	DefaultDBMaxConns         = 10
	DefaultDBMaxIdleTime      = 5 * time.Minute
	DefaultDBMaxConnLifetime  = 30 * time.Minute
	DefaultSessionCapacity    = 256
	DefaultSessionTTL         = 6 * time.Hour
	DefaultWorkers            = 2
	DefaultQueueSize          = 256
	DefaultMaxRequestBytes    = 1 << 20
	DefaultEventMaxRetries    = 5
	DefaultEventRetryDelay    = 2 * time.Second
	DefaultDeadLetterPath     = "logs/event_deadletter.jsonl"
	DefaultShutdownTimeout    = 15 * time.Second
	DefaultCheckpointInterval = time.Minute
)

// Error messages
const (
	ErrMsgInvalidPort        = "invalid PORT value"
	ErrMsgAPIKeyRequired     = "API_KEY environment variable must be set in production"
	ErrMsgPortOutOfRange     = "PORT must be between 1 and 65535"
	ErrMsgInvalidLogFormat   = "LOG_FORMAT must be text or json"
	ErrMsgNonPositive        = "%s must be positive"
	ErrMsgNegativeDeadline   = "AUCTION_DEADLINE must not be negative"
	ErrMsgNegativeCheckpoint = "CHECKPOINT_INTERVAL must not be negative"
	ErrMsgReadExperiment     = "failed to read experiment config"
	ErrMsgInvalidExperiment  = "invalid experiment config"
	ErrMsgDecodeExperiment   = "failed to decode experiment config"
	ErrMsgInvalidDeadline    = "invalid auction deadline"
	ErrMsgInvalidTreatment   = "experiment config yields invalid %s settings"
)

// Warnings
const (
	WarnMsgNoAPIKey      = "API_KEY is not set, API authentication is disabled"
	WarnMsgNoDatabase    = "DATABASE_URL is not set, results are kept in memory only"
	WarnMsgExampleAPIKey = "API_KEY appears to be using the example value, generate a secure key with: openssl rand -hex 32"
	ExampleAPIKey        = "generate_with_openssl_rand_hex_32"
)
