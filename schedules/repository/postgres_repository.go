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
	"github.com/Rafael-Arenas/plan-sub003/schedules/models"
)

type postgresScheduleRepository struct {
	modules *facade.Facade
}

func NewPostgresScheduleRepository(client *postgres.Client, registry *metadata.Registry) (ScheduleRepository, error) {
	table, err := registry.Lookup(TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schedule metadata: %w", err)
	}
	return &postgresScheduleRepository{
		modules: facade.New(postgres.NewStore(client, table)),
	}, nil
}

func (r *postgresScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	now := time.Now().UTC()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	id, err := r.modules.CRUD.Create(ctx, schedule)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	schedule.ID = id
	return nil
}

func (r *postgresScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.modules.CRUD.GetByID(ctx, &schedule, id); err != nil {
		return nil, fmt.Errorf("failed to get schedule %d: %w", id, err)
	}
	return &schedule, nil
}

func (r *postgresScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	schedule.UpdatedAt = time.Now().UTC()
	if err := r.modules.CRUD.Update(ctx, schedule); err != nil {
		return fmt.Errorf("failed to update schedule %d: %w", schedule.ID, err)
	}
	return nil
}

func (r *postgresScheduleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.modules.CRUD.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule %d: %w", id, err)
	}
	return nil
}

func (r *postgresScheduleRepository) Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.modules.Query.FindByCriteria(ctx, &schedules, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	return schedules, nil
}

func (r *postgresScheduleRepository) FindForProject(ctx context.Context, projectID int64, page criteria.Pagination) ([]models.Schedule, error) {
	var schedules []models.Schedule
	spec := map[string]interface{}{"project_id": projectID}
	order := []criteria.OrderSpec{{Field: "date", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &schedules, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query schedules for project %d: %w", projectID, err)
	}
	return schedules, nil
}

func (r *postgresScheduleRepository) FindForEmployeeOn(ctx context.Context, employeeID int64, date time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	spec := map[string]interface{}{
		"and": []map[string]interface{}{
			{"employee_id": employeeID},
			{"date": date},
		},
	}
	order := []criteria.OrderSpec{{Field: "start_time", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &schedules, spec, order, criteria.Unbounded()); err != nil {
		return nil, fmt.Errorf("failed to query schedules for employee %d: %w", employeeID, err)
	}
	return schedules, nil
}

func (r *postgresScheduleRepository) CountConfirmed(ctx context.Context) (int64, error) {
	n, err := r.modules.Stats.CountWhere(ctx, map[string]interface{}{"is_confirmed": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed schedules: %w", err)
	}
	return n, nil
}

func (r *postgresScheduleRepository) CountForProject(ctx context.Context, projectID int64) (int64, error) {
	n, err := r.modules.Stats.CountWhere(ctx, map[string]interface{}{"project_id": projectID})
	if err != nil {
		return 0, fmt.Errorf("failed to count schedules for project %d: %w", projectID, err)
	}
	return n, nil
}

func (r *postgresScheduleRepository) HealthCheck(ctx context.Context) facade.Health {
	return r.modules.HealthCheck(ctx)
}
