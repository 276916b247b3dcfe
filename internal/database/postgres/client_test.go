// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rafael-Arenas/plan-sub003/internal/platform/config"
)

func TestBuildConnectionString(t *testing.T) {
	cfg := &config.PostgreSQLConfig{
		Host:           "db.internal",
		Port:           5433,
		Username:       "planner",
		Password:       "secret",
		Database:       "planning",
		SSLMode:        "require",
		ConnectTimeout: 10 * time.Second,
	}

	got := buildConnectionString(cfg)
	assert.Equal(t, "host=db.internal port=5433 dbname=planning user=planner password=secret sslmode=require connect_timeout=10", got)
}

func TestBuildConnectionString_OmitsEmptyCredentials(t *testing.T) {
	cfg := &config.PostgreSQLConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "planning",
		SSLMode:  "disable",
	}

	got := buildConnectionString(cfg)
	assert.Equal(t, "host=localhost port=5432 dbname=planning sslmode=disable", got)
}

func TestNewClient_Integration(t *testing.T) {
	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	ctx := context.Background()

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)

	client, err := NewClient(ctx, &cfg.Database.Postgres)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(ctx))
	assert.NotNil(t, client.DB())
}
