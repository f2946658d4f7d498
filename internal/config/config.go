// Package config provides configuration for chatshare.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BlobBackendS3 = "s3"
	BlobBackendFS = "fs"

	SessionBackendDynamoDB = "dynamodb"
	SessionBackendRedis    = "redis"
	SessionBackendSQLite   = "sqlite"
)

// Generation providers.
const (
	LLMProviderGemini = "gemini"
	LLMProviderOpenAI = "openai"
	LLMProviderMock   = "mock"
)

var (
	ErrMissingBucket       = errors.New("CHAT_CONFIG_BUCKET is required for the s3 blob backend")
	ErrMissingConfigDir    = errors.New("CHAT_CONFIG_DIR is required for the fs blob backend")
	ErrMissingSessionTable = errors.New("CHAT_SESSIONS_TABLE is required for the dynamodb session backend")
	ErrMissingRedisAddr    = errors.New("REDIS_ADDR is required for the redis session backend")
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required for the sqlite session backend")
	ErrMissingGoogleAPIKey = errors.New("GOOGLE_API_KEY is required for the gemini provider")
	ErrMissingLLMAPIKey    = errors.New("LLM_API_KEY is required for the openai provider")
)

// Config holds the chatshare configuration.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Shareable links are built as <FrontendBaseURL>/chat/<id>
	FrontendBaseURL string `env:"FRONTEND_BASE_URL" envDefault:"https://yourdomain.com"`

	// Optional rego file overriding the built-in settings policy
	SettingsPolicyFile string `env:"SETTINGS_POLICY"`

	Log      LogConfig
	Blob     BlobConfig
	Sessions SessionConfig
	AWS      AWSConfig   `envPrefix:"AWS_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`
	LLM      LLMConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type BlobConfig struct {
	Backend string `env:"BLOB_BACKEND" envDefault:"s3"`
	Bucket  string `env:"CHAT_CONFIG_BUCKET"`
	Dir     string `env:"CHAT_CONFIG_DIR"`
}

type SessionConfig struct {
	Backend     string `env:"SESSION_BACKEND" envDefault:"dynamodb"`
	Table       string `env:"CHAT_SESSIONS_TABLE"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:chatshare.db?cache=shared&mode=rwc"`
}

type AWSConfig struct {
	Region          string `env:"REGION" envDefault:"us-east-1"`
	EndpointURL     string `env:"ENDPOINT_URL"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type LLMConfig struct {
	Provider     string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	BaseURL      string `env:"LLM_BASE_URL"`
	APIKey       string `env:"LLM_API_KEY"`
}

// Load loads configuration from the environment, after applying an optional .env file.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that each selected backend has the settings it needs.
func (c *Config) Validate() error {
	switch c.Blob.Backend {
	case BlobBackendS3:
		if c.Blob.Bucket == "" {
			return ErrMissingBucket
		}
	case BlobBackendFS:
		if c.Blob.Dir == "" {
			return ErrMissingConfigDir
		}
	default:
		return fmt.Errorf("unknown BLOB_BACKEND %q", c.Blob.Backend)
	}

	switch c.Sessions.Backend {
	case SessionBackendDynamoDB:
		if c.Sessions.Table == "" {
			return ErrMissingSessionTable
		}
	case SessionBackendRedis:
		if c.Redis.Addr == "" {
			return ErrMissingRedisAddr
		}
	case SessionBackendSQLite:
		if c.Sessions.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Sessions.Backend)
	}

	switch c.LLM.Provider {
	case LLMProviderGemini:
		if c.LLM.GoogleAPIKey == "" {
			return ErrMissingGoogleAPIKey
		}
	case LLMProviderOpenAI:
		if c.LLM.APIKey == "" {
			return ErrMissingLLMAPIKey
		}
	case LLMProviderMock:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	return nil
}

// UsesAWS reports whether any selected backend talks to AWS.
func (c *Config) UsesAWS() bool {
	return c.Blob.Backend == BlobBackendS3 || c.Sessions.Backend == SessionBackendDynamoDB
}
