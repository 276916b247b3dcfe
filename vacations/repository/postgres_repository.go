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
	"github.com/Rafael-Arenas/plan-sub003/vacations/models"
)

type postgresVacationRepository struct {
	modules *facade.Facade
}

// NewPostgresVacationRepository creates a PostgreSQL backed vacation repository.
func NewPostgresVacationRepository(client *postgres.Client, registry *metadata.Registry) (VacationRepository, error) {
	table, err := registry.Lookup(TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vacation metadata: %w", err)
	}
	return &postgresVacationRepository{
		modules: facade.New(postgres.NewStore(client, table)),
	}, nil
}

func (r *postgresVacationRepository) Create(ctx context.Context, vacation *models.Vacation) error {
	now := time.Now().UTC()
	vacation.CreatedAt = now
	vacation.UpdatedAt = now

	id, err := r.modules.CRUD.Create(ctx, vacation)
	if err != nil {
		return fmt.Errorf("failed to create vacation: %w", err)
	}
	vacation.ID = id
	return nil
}

func (r *postgresVacationRepository) GetByID(ctx context.Context, id int64) (*models.Vacation, error) {
	var vacation models.Vacation
	if err := r.modules.CRUD.GetByID(ctx, &vacation, id); err != nil {
		return nil, fmt.Errorf("failed to get vacation %d: %w", id, err)
	}
	return &vacation, nil
}

func (r *postgresVacationRepository) Update(ctx context.Context, vacation *models.Vacation) error {
	vacation.UpdatedAt = time.Now().UTC()
	if err := r.modules.CRUD.Update(ctx, vacation); err != nil {
		return fmt.Errorf("failed to update vacation %d: %w", vacation.ID, err)
	}
	return nil
}

func (r *postgresVacationRepository) Delete(ctx context.Context, id int64) error {
	if err := r.modules.CRUD.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vacation %d: %w", id, err)
	}
	return nil
}

func (r *postgresVacationRepository) Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Vacation, error) {
	var vacations []models.Vacation
	if err := r.modules.Query.FindByCriteria(ctx, &vacations, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query vacations: %w", err)
	}
	return vacations, nil
}

func (r *postgresVacationRepository) FindForEmployee(ctx context.Context, employeeID int64, page criteria.Pagination) ([]models.Vacation, error) {
	var vacations []models.Vacation
	spec := map[string]interface{}{"employee_id": employeeID}
	order := []criteria.OrderSpec{{Field: "start_date", Direction: criteria.Desc}}
	if err := r.modules.Query.FindByCriteria(ctx, &vacations, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query vacations for employee %d: %w", employeeID, err)
	}
	return vacations, nil
}

// FindOverlapping returns the employee's vacations intersecting the inclusive
// window: a vacation overlaps when it starts no later than the window end and
// ends no earlier than the window start.
func (r *postgresVacationRepository) FindOverlapping(ctx context.Context, employeeID int64, windowStart, windowEnd time.Time) ([]models.Vacation, error) {
	var vacations []models.Vacation
	spec := map[string]interface{}{
		"and": []map[string]interface{}{
			{"employee_id": employeeID},
			{"start_date": map[string]interface{}{"operator": "lte", "value": windowEnd}},
			{"end_date": map[string]interface{}{"operator": "gte", "value": windowStart}},
		},
	}
	order := []criteria.OrderSpec{{Field: "start_date", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &vacations, spec, order, criteria.Unbounded()); err != nil {
		return nil, fmt.Errorf("failed to query overlapping vacations for employee %d: %w", employeeID, err)
	}
	return vacations, nil
}

func (r *postgresVacationRepository) FindByStatus(ctx context.Context, status string, page criteria.Pagination) ([]models.Vacation, error) {
	var vacations []models.Vacation
	spec := map[string]interface{}{"status": status}
	order := []criteria.OrderSpec{{Field: "start_date", Direction: criteria.Desc}}
	if err := r.modules.Query.FindByCriteria(ctx, &vacations, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query vacations by status: %w", err)
	}
	return vacations, nil
}

func (r *postgresVacationRepository) CountByStatus(ctx context.Context, statuses []string) (map[string]int64, error) {
	values := make([]interface{}, len(statuses))
	for i, s := range statuses {
		values[i] = s
	}
	counts, err := r.modules.Stats.Breakdown(ctx, "status", values)
	if err != nil {
		return nil, fmt.Errorf("failed to count vacations by status: %w", err)
	}
	return counts, nil
}

func (r *postgresVacationRepository) CountForEmployee(ctx context.Context, employeeID int64) (int64, error) {
	n, err := r.modules.Stats.CountWhere(ctx, map[string]interface{}{"employee_id": employeeID})
	if err != nil {
		return 0, fmt.Errorf("failed to count vacations for employee %d: %w", employeeID, err)
	}
	return n, nil
}

func (r *postgresVacationRepository) HealthCheck(ctx context.Context) facade.Health {
	return r.modules.HealthCheck(ctx)
}
