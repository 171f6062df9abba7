package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values applied before files and environment
// variables are read.
const (
	defaultPort              = 8080
	defaultLogLevel          = "info"
	defaultVocabTimeoutSecs  = 10
	defaultGraderTimeoutSecs = 30
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over values from
// config files; they use the WORDDEE_ prefix with dots replaced by
// underscores (e.g. WORDDEE_DATABASE_URL, WORDDEE_GRADER_WEBHOOK_URL).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("vocab.timeout_seconds", defaultVocabTimeoutSecs)
	v.SetDefault("grader.timeout_seconds", defaultGraderTimeoutSecs)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WORDDEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys to Unmarshal, so the
	// keys without defaults are bound explicitly.
	for _, key := range []string{
		"database.url",
		"vocab.base_url",
		"vocab.api_key",
		"grader.webhook_url",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// A missing config file is fine; env vars alone can carry everything.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
