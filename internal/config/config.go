// Package config loads environment variables into structured,
// validated Go types.
//
// Values are read once at process start (optionally from a `.env`
// file), mapped into the Config struct, and validated so the
// application fails fast on missing or malformed configuration.
// The resulting *Config is passed by pointer into the components
// that need it and is never mutated afterwards.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads a `.env` file into the process environment before any
	// env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes which environment variables belong to this service.
// CATALOG_SERVER__PORT maps to the koanf key "server.port": the prefix
// is stripped, the name lowercased, and "__" marks struct nesting so
// single underscores survive as part of field names.
const envPrefix = "CATALOG_"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior between local and deployed envs.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          float64  `koanf:"rate_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores the credential-signing secret and token lifetime.
// Both are reserved for future credential signing; they are loaded and
// validated at startup so deployments carry them from day one.
type AuthConfig struct {
	SecretKey          string `koanf:"secret_key" validate:"required"`
	TokenExpiryMinutes int    `koanf:"token_expiry_minutes" validate:"required,min=1"`
}

// TokenExpiry returns the configured token lifetime as a duration.
func (a AuthConfig) TokenExpiry() time.Duration {
	return time.Duration(a.TokenExpiryMinutes) * time.Minute
}

// IntegrationConfig holds API keys for third-party providers.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
}

// Load reads configuration from the environment, unmarshals it into a
// Config, validates it, and applies observability defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	defaults := DefaultObservabilityConfig()
	if cfg.Observability.Logging.Level == "" {
		cfg.Observability.Logging.Level = defaults.Logging.Level
	}
	if cfg.Observability.Logging.Format == "" {
		cfg.Observability.Logging.Format = defaults.Logging.Format
	}

	// Service name and environment are fixed from the primary block so
	// logs and traces carry consistent identity regardless of env input.
	cfg.Observability.ServiceName = "catalog-api"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("validating observability config: %w", err)
	}

	return cfg, nil
}
