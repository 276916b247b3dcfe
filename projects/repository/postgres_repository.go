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
	"github.com/Rafael-Arenas/plan-sub003/projects/models"
)

type postgresProjectRepository struct {
	modules *facade.Facade
}

// NewPostgresProjectRepository creates a PostgreSQL backed project repository.
func NewPostgresProjectRepository(client *postgres.Client, registry *metadata.Registry) (ProjectRepository, error) {
	table, err := registry.Lookup(TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project metadata: %w", err)
	}
	return &postgresProjectRepository{
		modules: facade.New(postgres.NewStore(client, table)),
	}, nil
}

func (r *postgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"reference": project.Reference}, nil); err != nil {
		return err
	}
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"trigram": project.Trigram}, nil); err != nil {
		return err
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	id, err := r.modules.CRUD.Create(ctx, project)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = id
	return nil
}

func (r *postgresProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	if err := r.modules.CRUD.GetByID(ctx, &project, id); err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &project, nil
}

func (r *postgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"reference": project.Reference}, &project.ID); err != nil {
		return err
	}
	if err := r.modules.Validation.EnsureUnique(ctx, map[string]interface{}{"trigram": project.Trigram}, &project.ID); err != nil {
		return err
	}

	project.UpdatedAt = time.Now().UTC()
	if err := r.modules.CRUD.Update(ctx, project); err != nil {
		return fmt.Errorf("failed to update project %d: %w", project.ID, err)
	}
	return nil
}

func (r *postgresProjectRepository) Delete(ctx context.Context, id int64) error {
	if err := r.modules.CRUD.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return nil
}

func (r *postgresProjectRepository) Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Project, error) {
	var projects []models.Project
	if err := r.modules.Query.FindByCriteria(ctx, &projects, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	return projects, nil
}

func (r *postgresProjectRepository) FindByReference(ctx context.Context, reference string) (*models.Project, error) {
	var project models.Project
	found, err := r.modules.Query.FindOneByCriteria(ctx, &project, map[string]interface{}{"reference": reference})
	if err != nil {
		return nil, fmt.Errorf("failed to find project by reference: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &project, nil
}

func (r *postgresProjectRepository) FindByTrigram(ctx context.Context, trigram string) (*models.Project, error) {
	var project models.Project
	spec := map[string]interface{}{
		"trigram": map[string]interface{}{"operator": "iexact", "value": trigram},
	}
	found, err := r.modules.Query.FindOneByCriteria(ctx, &project, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to find project by trigram: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &project, nil
}

func (r *postgresProjectRepository) FindByClient(ctx context.Context, clientID int64, page criteria.Pagination) ([]models.Project, error) {
	var projects []models.Project
	spec := map[string]interface{}{"client_id": clientID}
	order := []criteria.OrderSpec{{Field: "priority", Direction: criteria.Desc}}
	if err := r.modules.Query.FindByCriteria(ctx, &projects, spec, order, page); err != nil {
		return nil, fmt.Errorf("failed to query projects for client %d: %w", clientID, err)
	}
	return projects, nil
}

// FindUnscheduled lists active projects that have no start date yet.
func (r *postgresProjectRepository) FindUnscheduled(ctx context.Context, page criteria.Pagination) ([]models.Project, error) {
	var projects []models.Project
	spec := map[string]interface{}{
		"and": []map[string]interface{}{
			{"is_active": true},
			{"start_date": map[string]interface{}{"operator": "is_null"}},
		},
	}
	if err := r.modules.Query.FindByCriteria(ctx, &projects, spec, nil, page); err != nil {
		return nil, fmt.Errorf("failed to query unscheduled projects: %w", err)
	}
	return projects, nil
}

func (r *postgresProjectRepository) ReferenceAvailable(ctx context.Context, reference string, excludeID *int64) (bool, error) {
	return r.modules.Validation.Available(ctx, map[string]interface{}{"reference": reference}, excludeID)
}

func (r *postgresProjectRepository) TrigramAvailable(ctx context.Context, trigram string, excludeID *int64) (bool, error) {
	return r.modules.Validation.Available(ctx, map[string]interface{}{"trigram": trigram}, excludeID)
}

func (r *postgresProjectRepository) CountForClient(ctx context.Context, clientID int64) (int64, error) {
	n, err := r.modules.Stats.CountWhere(ctx, map[string]interface{}{"client_id": clientID})
	if err != nil {
		return 0, fmt.Errorf("failed to count projects for client %d: %w", clientID, err)
	}
	return n, nil
}

func (r *postgresProjectRepository) HealthCheck(ctx context.Context) facade.Health {
	return r.modules.HealthCheck(ctx)
}
