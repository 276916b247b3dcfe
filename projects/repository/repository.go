// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/projects/models"
)

const TableName = "projects"

var Table = metadata.MustTable(TableName, "id",
	metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "reference", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "trigram", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "name", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "details", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "client_id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "start_date", Kind: metadata.KindDate, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "end_date", Kind: metadata.KindDate, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "priority", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "status_code_id", Kind: metadata.KindInt, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "responsible_employee_id", Kind: metadata.KindInt, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "is_active", Kind: metadata.KindBool, Operators: metadata.BoolOperators()},
	metadata.Field{Name: "created_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "updated_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
)

// ProjectRepository is the persistence surface for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error

	Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Project, error)
	FindByReference(ctx context.Context, reference string) (*models.Project, error)
	FindByTrigram(ctx context.Context, trigram string) (*models.Project, error)
	FindByClient(ctx context.Context, clientID int64, page criteria.Pagination) ([]models.Project, error)
	FindUnscheduled(ctx context.Context, page criteria.Pagination) ([]models.Project, error)

	ReferenceAvailable(ctx context.Context, reference string, excludeID *int64) (bool, error)
	TrigramAvailable(ctx context.Context, trigram string, excludeID *int64) (bool, error)
	CountForClient(ctx context.Context, clientID int64) (int64, error)

	HealthCheck(ctx context.Context) facade.Health
}
