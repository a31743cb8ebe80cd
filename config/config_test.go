package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "JWT_ACCESS_TOKEN_EXPIRY", "DB_MAX_OPEN_CONNS", "REDIS_HOST", "AWS_S3_BUCKET"} {
		t.Setenv(key, "")
	}
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("AWS_S3_BUCKET", "images")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Numeric setting", func(t *testing.T) {
		t.Setenv("REDIS_DB", "zero")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Default secret in production", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestParseDuration_FallsBack(t *testing.T) {
	assert.Equal(t, 60*time.Minute, parseDuration("soon"))
	assert.Equal(t, 90*time.Second, parseDuration("90s"))
}
