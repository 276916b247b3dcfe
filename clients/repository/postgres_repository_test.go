// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rafael-Arenas/plan-sub003/clients/models"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/postgres"
	"github.com/Rafael-Arenas/plan-sub003/internal/platform/config"
)

// TestPostgresClientRepository_Integration validates the repository against a
// live PostgreSQL instance.
func TestPostgresClientRepository_Integration(t *testing.T) {
	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	ctx := context.Background()

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err, "failed to load configuration")

	client, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	require.NoError(t, err, "failed to create postgres client")
	defer client.Close()

	schemaSQL := `
		DROP TABLE IF EXISTS clients;
		CREATE TABLE clients (
			id              BIGSERIAL PRIMARY KEY,
			name            TEXT NOT NULL,
			code            TEXT NOT NULL UNIQUE,
			contact_person  TEXT,
			email           TEXT,
			phone           TEXT,
			notes           TEXT,
			is_active       BOOLEAN NOT NULL DEFAULT TRUE,
			created_at      TIMESTAMPTZ NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL
		);
	`
	_, err = client.DB().ExecContext(ctx, schemaSQL)
	require.NoError(t, err, "failed to apply schema")
	defer client.DB().ExecContext(ctx, `DROP TABLE IF EXISTS clients`)

	registry := metadata.NewRegistry()
	registry.MustRegister(Table)

	repo, err := NewPostgresClientRepository(client, registry)
	require.NoError(t, err)

	acme := &models.Client{Name: "Acme Industries", Code: "ACME", IsActive: true}
	require.NoError(t, repo.Create(ctx, acme))
	require.NotZero(t, acme.ID)
	require.False(t, acme.CreatedAt.IsZero())

	globex := &models.Client{Name: "Globex Corporation", Code: "GLBX", IsActive: false}
	require.NoError(t, repo.Create(ctx, globex))

	t.Run("duplicate code is rejected by the pre-check", func(t *testing.T) {
		err := repo.Create(ctx, &models.Client{Name: "Impostor", Code: "ACME"})

		var conflict *facade.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "clients", conflict.Table)
	})

	t.Run("find by code", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "ACME")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, acme.ID, found.ID)

		missing, err := repo.FindByCode(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("search by name is case-insensitive", func(t *testing.T) {
		matches, err := repo.SearchByName(ctx, "%corp%", criteria.Unbounded())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, globex.ID, matches[0].ID)
	})

	t.Run("code availability honors the exclude id", func(t *testing.T) {
		available, err := repo.CodeAvailable(ctx, "ACME", nil)
		require.NoError(t, err)
		assert.False(t, available)

		available, err = repo.CodeAvailable(ctx, "ACME", &acme.ID)
		require.NoError(t, err)
		assert.True(t, available)

		available, err = repo.CodeAvailable(ctx, "FRESH", nil)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("count active", func(t *testing.T) {
		n, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("criteria find with or group", func(t *testing.T) {
		spec := map[string]interface{}{
			"or": []map[string]interface{}{
				{"code": "ACME"},
				{"code": "GLBX"},
			},
		}
		rows, err := repo.Find(ctx, spec, nil, criteria.Unbounded())
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("update keeps the unique pre-check scoped to other rows", func(t *testing.T) {
		acme.Name = "Acme Industries Ltd"
		require.NoError(t, repo.Update(ctx, acme))

		reloaded, err := repo.GetByID(ctx, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Industries Ltd", reloaded.Name)
		assert.True(t, reloaded.UpdatedAt.After(reloaded.CreatedAt) || reloaded.UpdatedAt.Equal(reloaded.CreatedAt))
	})

	t.Run("health check reports healthy modules", func(t *testing.T) {
		health := repo.HealthCheck(ctx)
		assert.Equal(t, facade.Healthy, health.Overall)
		assert.Len(t, health.Modules, 4)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, globex.ID))
		_, err := repo.GetByID(ctx, globex.ID)
		require.Error(t, err)
	})
}
