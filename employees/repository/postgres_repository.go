// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Rafael-Arenas/plan-sub003/employees/models"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/postgres"
)

type postgresEmployeeRepository struct {
	modules *facade.Facade
}

// NewPostgresEmployeeRepository creates a PostgreSQL backed employee repository.
// The employees table must already be registered in the metadata registry.
func NewPostgresEmployeeRepository(client *postgres.Client, registry *metadata.Registry) (EmployeeRepository, error) {
	table, err := registry.Lookup(TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee metadata: %w", err)
	}
	return &postgresEmployeeRepository{
		modules: facade.New(postgres.NewStore(client, table)),
	}, nil
}

func (r *postgresEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"employee_code": employee.EmployeeCode}, nil); err != nil {
		return err
	}
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"email": employee.Email}, nil); err != nil {
		return err
	}

	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	id, err := r.modules.CRUD.Create(ctx, employee)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	employee.ID = id
	return nil
}

func (r *postgresEmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.modules.CRUD.GetByID(ctx, &employee, id); err != nil {
		return nil, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return &employee, nil
}

func (r *postgresEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"employee_code": employee.EmployeeCode}, &employee.ID); err != nil {
		return err
	}
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"email": employee.Email}, &employee.ID); err != nil {
		return err
	}

	employee.UpdatedAt = time.Now().UTC()
	if err := r.modules.CRUD.Update(ctx, employee); err != nil {
		return fmt.Errorf("failed to update employee %d: %w", employee.ID, err)
	}
	return nil
}

func (r *postgresEmployeeRepository) Delete(ctx context.Context, id int64) error {
	if err := r.modules.CRUD.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

func (r *postgresEmployeeRepository) Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.modules.Query.FindByCriteria(ctx, &employees, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	return employees, nil
}

func (r *postgresEmployeeRepository) FindByCode(ctx context.Context, code string) (*models.Employee, error) {
	var employee models.Employee
	found, err := r.modules.Query.FindOneByCriteria(ctx, &employee, map[string]interface{}{"employee_code": code})
	if err != nil {
		return nil, fmt.Errorf("failed to find employee by code: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &employee, nil
}

func (r *postgresEmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	found, err := r.modules.Query.FindOneByCriteria(ctx, &employee, map[string]interface{}{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &employee, nil
}

func (r *postgresEmployeeRepository) FindActive(ctx context.Context, page criteria.Pagination) ([]models.Employee, error) {
	var employees []models.Employee
	spec := map[string]interface{}{"is_active": true}
	order := []criteria.OrderSpec{{Field: "last_name", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &employees, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	return employees, nil
}

func (r *postgresEmployeeRepository) FindHiredBetween(ctx context.Context, from, to time.Time, page criteria.Pagination) ([]models.Employee, error) {
	var employees []models.Employee
	spec := map[string]interface{}{
		"and": []map[string]interface{}{
			{"hire_date": map[string]interface{}{"operator": "gte", "value": from}},
			{"hire_date": map[string]interface{}{"operator": "lte", "value": to}},
		},
	}
	order := []criteria.OrderSpec{{Field: "hire_date", Direction: criteria.Asc}}
	if err := r.modules.Query.FindByCriteria(ctx, &employees, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query employees by hire date: %w", err)
	}
	return employees, nil
}

func (r *postgresEmployeeRepository) CodeAvailable(ctx context.Context, code string, excludeID *int64) (bool, error) {
	return r.modules.Validation.Available(ctx, map[string]interface{}{"employee_code": code}, excludeID)
}

func (r *postgresEmployeeRepository) EmailAvailable(ctx context.Context, email string, excludeID *int64) (bool, error) {
	return r.modules.Validation.Available(ctx, map[string]interface{}{"email": email}, excludeID)
}

func (r *postgresEmployeeRepository) CountByPosition(ctx context.Context, positions []string) (map[string]int64, error) {
	values := make([]interface{}, len(positions))
	for i, p := range positions {
		values[i] = p
	}
	counts, err := r.modules.Stats.Breakdown(ctx, "position", values)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by position: %w", err)
	}
	return counts, nil
}

func (r *postgresEmployeeRepository) HealthCheck(ctx context.Context) facade.Health {
	return r.modules.HealthCheck(ctx)
}
