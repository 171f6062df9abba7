package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Vocab    VocabConfig    `mapstructure:"vocab" validate:"required"`
	Grader   GraderConfig   `mapstructure:"grader" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// VocabConfig contains the settings for the external vocabulary service.
type VocabConfig struct {
	// BaseURL is the root of the vocabulary microservice, e.g.
	// http://worddee-api:8001
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// APIKey is sent as the X-API-Key header when non-empty.
	APIKey string `mapstructure:"api_key"`

	// TimeoutSeconds bounds every vocabulary lookup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"min=1"`
}

// GraderConfig contains the settings for the AI sentence-grading webhook.
type GraderConfig struct {
	// WebhookURL is the full URL of the validate-sentence endpoint.
	WebhookURL string `mapstructure:"webhook_url" validate:"required,url"`

	// TimeoutSeconds bounds every grading call. Calls that exceed it fall
	// back to the deterministic mock result rather than failing.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"min=1"`
}
