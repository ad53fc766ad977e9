package config_test

import (
	"testing"
	"time"

	"go-hrms/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("HTTP_WRITE_TIMEOUT", "")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "hr")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.False(t, cfg.IsDevelopment())
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=hr")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()

	assert.Error(t, err)
}
