// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/postgres"
	"github.com/Rafael-Arenas/plan-sub003/workloads/models"
)

type postgresWorkloadRepository struct {
	client  *postgres.Client
	modules *facade.Facade
}

// NewPostgresWorkloadRepository creates a PostgreSQL backed workload
// repository. It keeps the raw client for the SUM aggregate, which the
// criteria engine does not express.
func NewPostgresWorkloadRepository(client *postgres.Client, registry *metadata.Registry) (WorkloadRepository, error) {
	table, err := registry.Lookup(TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workload metadata: %w", err)
	}
	return &postgresWorkloadRepository{
		client:  client,
		modules: facade.New(postgres.NewStore(client, table)),
	}, nil
}

func (r *postgresWorkloadRepository) Create(ctx context.Context, workload *models.Workload) error {
	now := time.Now().UTC()
	workload.CreatedAt = now
	workload.UpdatedAt = now

	id, err := r.modules.CRUD.Create(ctx, workload)
	if err != nil {
		return fmt.Errorf("failed to create workload: %w", err)
	}
	workload.ID = id
	return nil
}

func (r *postgresWorkloadRepository) GetByID(ctx context.Context, id int64) (*models.Workload, error) {
	var workload models.Workload
	if err := r.modules.CRUD.GetByID(ctx, &workload, id); err != nil {
		return nil, fmt.Errorf("failed to get workload %d: %w", id, err)
	}
	return &workload, nil
}

func (r *postgresWorkloadRepository) Update(ctx context.Context, workload *models.Workload) error {
	workload.UpdatedAt = time.Now().UTC()
	if err := r.modules.CRUD.Update(ctx, workload); err != nil {
		return fmt.Errorf("failed to update workload %d: %w", workload.ID, err)
	}
	return nil
}

func (r *postgresWorkloadRepository) Delete(ctx context.Context, id int64) error {
	if err := r.modules.CRUD.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workload %d: %w", id, err)
	}
	return nil
}

func (r *postgresWorkloadRepository) Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Workload, error) {
	var workloads []models.Workload
	if err := r.modules.Query.FindByCriteria(ctx, &workloads, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query workloads: %w", err)
	}
	return workloads, nil
}

// FindForWeek returns the employee's workloads for the seven days starting at
// weekStart.
func (r *postgresWorkloadRepository) FindForWeek(ctx context.Context, employeeID int64, weekStart time.Time) ([]models.Workload, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)
	var workloads []models.Workload
	spec := map[string]interface{}{
		"and": []map[string]interface{}{
			{"employee_id": employeeID},
			{"date": map[string]interface{}{"operator": "gte", "value": weekStart}},
			{"date": map[string]interface{}{"operator": "lte", "value": weekEnd}},
		},
	}
	order := []criteria.OrderSpec{{Field: "date", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &workloads, spec, order, criteria.Unbounded()); err != nil {
		return nil, fmt.Errorf("failed to query workloads for employee %d: %w", employeeID, err)
	}
	return workloads, nil
}

// FindUnreported lists workloads whose actual hours were never filled in.
func (r *postgresWorkloadRepository) FindUnreported(ctx context.Context, page criteria.Pagination) ([]models.Workload, error) {
	var workloads []models.Workload
	spec := map[string]interface{}{
		"actual_hours": map[string]interface{}{"operator": "is_null"},
	}
	order := []criteria.OrderSpec{{Field: "date", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &workloads, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query unreported workloads: %w", err)
	}
	return workloads, nil
}

// SumPlannedHours totals the planned hours of one employee over an inclusive
// date range.
func (r *postgresWorkloadRepository) SumPlannedHours(ctx context.Context, employeeID int64, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(planned_hours), 0)
		FROM workloads
		WHERE employee_id = $1 AND date >= $2 AND date <= $3`

	var total decimal.Decimal
	if err := r.client.DB().GetContext(ctx, &total, query, employeeID, from, to); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum planned hours for employee %d: %w", employeeID, err)
	}
	return total, nil
}

func (r *postgresWorkloadRepository) CountForProject(ctx context.Context, projectID int64) (int64, error) {
	n, err := r.modules.Stats.CountWhere(ctx, map[string]interface{}{"project_id": projectID})
	if err != nil {
		return 0, fmt.Errorf("failed to count workloads for project %d: %w", projectID, err)
	}
	return n, nil
}

func (r *postgresWorkloadRepository) HealthCheck(ctx context.Context) facade.Health {
	return r.modules.HealthCheck(ctx)
}
