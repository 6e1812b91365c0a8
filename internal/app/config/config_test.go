package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigReadsEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://scoring.example.com/api/")
	t.Setenv("API_TIMEOUT_IN_SECONDS", "5")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("JWT_EXP_TIME_IN_HOUR", "not-a-number")

	internalConfig := NewInternalConfig()

	assert.Equal(t, "https://scoring.example.com/api", internalConfig.API.BaseUrl)
	assert.Equal(t, 5, internalConfig.API.TimeoutInSeconds)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, internalConfig.App.CorsAllowedOrigins)
	assert.Equal(t, 24, internalConfig.JWT.ExpTimeInHour)
}

func TestNewDriverConfigDefaults(t *testing.T) {
	t.Setenv("MINIO_USE_SSL", "true")

	driverConfig := NewDriverConfig()

	assert.True(t, driverConfig.Minio.UseSSL)
	assert.NotEmpty(t, driverConfig.Redis.Port)
}
