// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Rafael-Arenas/plan-sub003/clients/models"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/postgres"
)

// postgresClientRepository serves clients through the criteria engine.
type postgresClientRepository struct {
	modules *facade.Facade
}

// NewPostgresClientRepository resolves the clients table from the registry
// and wires the facade. A missing registration is a configuration error and
// fails here, not at first query.
func NewPostgresClientRepository(client *postgres.Client, registry *metadata.Registry) (ClientRepository, error) {
	table, err := registry.Lookup(TableName)
	if err != nil {
		return nil, err
	}
	store := postgres.NewStore(client, table)
	return &postgresClientRepository{modules: facade.New(store)}, nil
}

// Create inserts a new client. The code uniqueness pre-check gives callers a
// readable conflict message; the unique index on code remains the
// authoritative guard and surfaces as postgres.DuplicateError on a lost race.
func (r *postgresClientRepository) Create(ctx context.Context, client *models.Client) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"code": client.Code}, nil); err != nil {
		return err
	}

	now := time.Now()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now

	id, err := r.modules.CRUD.Create(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	client.ID = id
	return nil
}

func (r *postgresClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	var client models.Client
	if err := r.modules.CRUD.GetByID(ctx, &client, id); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *postgresClientRepository) Update(ctx context.Context, client *models.Client) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"code": client.Code}, &client.ID); err != nil {
		return err
	}

	client.UpdatedAt = time.Now()
	if err := r.modules.CRUD.Update(ctx, client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (r *postgresClientRepository) Delete(ctx context.Context, id int64) error {
	return r.modules.CRUD.Delete(ctx, id)
}

// Find runs an arbitrary criteria spec against clients.
func (r *postgresClientRepository) Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Client, error) {
	var clients []models.Client
	if err := r.modules.Query.FindByCriteria(ctx, &clients, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to find clients: %w", err)
	}
	return clients, nil
}

// FindByCode returns the client carrying code, or nil when none does.
func (r *postgresClientRepository) FindByCode(ctx context.Context, code string) (*models.Client, error) {
	var client models.Client
	found, err := r.modules.Query.FindOneByCriteria(ctx, &client, map[string]interface{}{"code": code})
	if err != nil {
		return nil, fmt.Errorf("failed to find client by code: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &client, nil
}

// SearchByName matches names case-insensitively against an ILIKE pattern.
func (r *postgresClientRepository) SearchByName(ctx context.Context, pattern string, page criteria.Pagination) ([]models.Client, error) {
	spec := map[string]interface{}{
		"name": map[string]interface{}{"operator": "ilike", "value": pattern},
	}
	order := []criteria.OrderSpec{{Field: "name", Direction: criteria.Asc}}

	var clients []models.Client
	if err := r.modules.Query.FindByCriteria(ctx, &clients, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}

func (r *postgresClientRepository) Count(ctx context.Context, spec map[string]interface{}) (int64, error) {
	return r.modules.Query.CountByCriteria(ctx, spec)
}

// CodeAvailable reports whether no other client (ignoring excludeID) uses
// the code. Advisory only; see Create.
func (r *postgresClientRepository) CodeAvailable(ctx context.Context, code string, excludeID *int64) (bool, error) {
	return r.modules.Validation.Available(ctx, map[string]interface{}{"code": code}, excludeID)
}

func (r *postgresClientRepository) CountActive(ctx context.Context) (int64, error) {
	return r.modules.Stats.CountWhere(ctx, map[string]interface{}{"is_active": true})
}

func (r *postgresClientRepository) HealthCheck(ctx context.Context) facade.Health {
	return r.modules.HealthCheck(ctx)
}
