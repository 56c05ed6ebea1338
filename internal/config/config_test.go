package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "mongodb://localhost:27017/fertilizer_project", cfg.MongoURI)
	assert.Equal(t, "fertilizer_project", cfg.MongoDB)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURI)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
	assert.Equal(t, "ml_model/fertilizer_model.json", cfg.ModelPath)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://agriadvisor.example, https://www.agriadvisor.example ,")

	cfg := Load()
	assert.Equal(t, []string{"https://agriadvisor.example", "https://www.agriadvisor.example"}, cfg.AllowedOrigins)
}

func TestLoadFrontendURLFallback(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://app.example")
	t.Setenv("FRONTEND_URL_2", "https://staging.example")

	cfg := Load()
	assert.Equal(t, []string{"https://app.example", "https://staging.example"}, cfg.AllowedOrigins)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", " Production ")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
}
