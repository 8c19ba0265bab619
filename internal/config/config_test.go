package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "DB_HOST", "DB_PORT", "HTTP_DEFAULT_PAGE_SIZE", "HTTP_MAX_PAGE_SIZE", "HTTP_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 20, cfg.HTTP.DefaultPageSize)
	assert.Equal(t, 100, cfg.HTTP.MaxPageSize)
	assert.Nil(t, cfg.HTTP.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestValidate_ProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DB_PASSWORD", "secret")
	_, err = Load()
	require.NoError(t, err)
}

func TestValidate_PageSizeBounds(t *testing.T) {
	t.Setenv("HTTP_MAX_PAGE_SIZE", "10")
	t.Setenv("HTTP_DEFAULT_PAGE_SIZE", "50")

	_, err := Load()
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "pw",
		Database: "socialnet",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "postgresql://postgres:pw@localhost:5432/socialnet?sslmode=disable", dsn)
}
