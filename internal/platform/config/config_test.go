package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.App.Name)
	assert.NotEmpty(t, cfg.Database.Postgres.Host)
	assert.NotZero(t, cfg.Database.Postgres.Port)
	assert.NotEmpty(t, cfg.Database.Postgres.Database)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("POSTGRES_CONN_MAX_LIFETIME", "1h")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, 5433, cfg.Database.Postgres.Port)
	assert.Equal(t, 25, cfg.Database.Postgres.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.Postgres.ConnMaxLifetime)
	assert.True(t, cfg.App.Debug)
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DEBUG", "not-a-bool")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Database.Postgres.MaxOpenConns)
	assert.False(t, cfg.App.Debug)
}

func TestValidate(t *testing.T) {
	valid := &Config{Database: DatabaseConfig{Postgres: PostgreSQLConfig{
		Host: "localhost", Port: 5432, Database: "planning",
	}}}
	require.NoError(t, valid.Validate())

	t.Run("empty host", func(t *testing.T) {
		cfg := *valid
		cfg.Database.Postgres.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := *valid
		cfg.Database.Postgres.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty database", func(t *testing.T) {
		cfg := *valid
		cfg.Database.Postgres.Database = ""
		assert.Error(t, cfg.Validate())
	})
}
