// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/postgres"
	"github.com/Rafael-Arenas/plan-sub003/statuscodes/models"
)

type postgresStatusCodeRepository struct {
	modules *facade.Facade
}

func NewPostgresStatusCodeRepository(client *postgres.Client, registry *metadata.Registry) (StatusCodeRepository, error) {
	table, err := registry.Lookup(TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status code metadata: %w", err)
	}
	return &postgresStatusCodeRepository{
		modules: facade.New(postgres.NewStore(client, table)),
	}, nil
}

func (r *postgresStatusCodeRepository) Create(ctx context.Context, statusCode *models.StatusCode) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"code": statusCode.Code}, nil); err != nil {
		return err
	}

	now := time.Now().UTC()
	statusCode.CreatedAt = now
	statusCode.UpdatedAt = now

	id, err := r.modules.CRUD.Create(ctx, statusCode)
	if err != nil {
		return fmt.Errorf("failed to create status code: %w", err)
	}
	statusCode.ID = id
	return nil
}

func (r *postgresStatusCodeRepository) GetByID(ctx context.Context, id int64) (*models.StatusCode, error) {
	var statusCode models.StatusCode
	if err := r.modules.CRUD.GetByID(ctx, &statusCode, id); err != nil {
		return nil, fmt.Errorf("failed to get status code %d: %w", id, err)
	}
	return &statusCode, nil
}

func (r *postgresStatusCodeRepository) Update(ctx context.Context, statusCode *models.StatusCode) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"code": statusCode.Code}, &statusCode.ID); err != nil {
		return err
	}

	statusCode.UpdatedAt = time.Now().UTC()
	if err := r.modules.CRUD.Update(ctx, statusCode); err != nil {
		return fmt.Errorf("failed to update status code %d: %w", statusCode.ID, err)
	}
	return nil
}

func (r *postgresStatusCodeRepository) Delete(ctx context.Context, id int64) error {
	if err := r.modules.CRUD.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete status code %d: %w", id, err)
	}
	return nil
}

func (r *postgresStatusCodeRepository) Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.StatusCode, error) {
	var statusCodes []models.StatusCode
	if err := r.modules.Query.FindByCriteria(ctx, &statusCodes, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query status codes: %w", err)
	}
	return statusCodes, nil
}

func (r *postgresStatusCodeRepository) FindByCode(ctx context.Context, code string) (*models.StatusCode, error) {
	var statusCode models.StatusCode
	found, err := r.modules.Query.FindOneByCriteria(ctx, &statusCode, map[string]interface{}{"code": code})
	if err != nil {
		return nil, fmt.Errorf("failed to find status code by code: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &statusCode, nil
}

// ListOrdered returns status codes in display order. Ties on sort_order fall
// back to id order, so the listing is stable across calls.
func (r *postgresStatusCodeRepository) ListOrdered(ctx context.Context, activeOnly bool) ([]models.StatusCode, error) {
	spec := map[string]interface{}{}
	if activeOnly {
		spec["is_active"] = true
	}

	var statusCodes []models.StatusCode
	order := []criteria.OrderSpec{{Field: "sort_order", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &statusCodes, spec, order, criteria.Unbounded()); err != nil {
		return nil, fmt.Errorf("failed to list status codes: %w", err)
	}
	return statusCodes, nil
}

func (r *postgresStatusCodeRepository) CodeAvailable(ctx context.Context, code string, excludeID *int64) (bool, error) {
	return r.modules.Validation.Available(ctx, map[string]interface{}{"code": code}, excludeID)
}

func (r *postgresStatusCodeRepository) HealthCheck(ctx context.Context) facade.Health {
	return r.modules.HealthCheck(ctx)
}
