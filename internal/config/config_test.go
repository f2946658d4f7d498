package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHAT_CONFIG_BUCKET", "configs")
	t.Setenv("CHAT_SESSIONS_TABLE", "sessions")
	t.Setenv("GOOGLE_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "https://yourdomain.com", cfg.FrontendBaseURL)
	assert.Equal(t, BlobBackendS3, cfg.Blob.Backend)
	assert.Equal(t, SessionBackendDynamoDB, cfg.Sessions.Backend)
	assert.Equal(t, LLMProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.UsesAWS())
}

func TestLoadLocalBackends(t *testing.T) {
	t.Setenv("BLOB_BACKEND", "fs")
	t.Setenv("CHAT_CONFIG_DIR", t.TempDir())
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LLM_PROVIDER", "mock")
	t.Setenv("AWS_ENDPOINT_URL", "http://localhost:4566")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "http://localhost:4566", cfg.AWS.EndpointURL)
	assert.False(t, cfg.UsesAWS())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Blob:     BlobConfig{Backend: BlobBackendS3, Bucket: "b"},
			Sessions: SessionConfig{Backend: SessionBackendDynamoDB, Table: "t"},
			Redis:    RedisConfig{Addr: "localhost:6379"},
			LLM:      LLMConfig{Provider: LLMProviderGemini, GoogleAPIKey: "k"},
		}
	}

	require.NoError(t, valid().Validate())

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"missing bucket", func(c *Config) { c.Blob.Bucket = "" }, ErrMissingBucket},
		{"missing dir", func(c *Config) { c.Blob.Backend = BlobBackendFS }, ErrMissingConfigDir},
		{"missing table", func(c *Config) { c.Sessions.Table = "" }, ErrMissingSessionTable},
		{"missing redis", func(c *Config) {
			c.Sessions.Backend = SessionBackendRedis
			c.Redis.Addr = ""
		}, ErrMissingRedisAddr},
		{"missing dsn", func(c *Config) { c.Sessions.Backend = SessionBackendSQLite }, ErrMissingDatabaseURL},
		{"missing google key", func(c *Config) { c.LLM.GoogleAPIKey = "" }, ErrMissingGoogleAPIKey},
		{"missing llm key", func(c *Config) { c.LLM.Provider = LLMProviderOpenAI }, ErrMissingLLMAPIKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}

	c := valid()
	c.LLM.Provider = "claude"
	assert.Error(t, c.Validate())
}
