package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")

	cfg, err := LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EqualSecretsRejected(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "same-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "same-secret")

	cfg, err := LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.AccessTokenExpiryDuration)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, "refreshToken", cfg.RefreshTokenCookieName)
	assert.Equal(t, "/auths", cfg.RefreshTokenCookiePath)
	assert.NotEmpty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_ParsesOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRY_DURATION", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiryDuration)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSAllowedOrigins)
}
