// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/Rafael-Arenas/plan-sub003/clients/models"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

// TableName is the clients table registered in the metadata registry.
const TableName = "clients"

// Table describes the queryable fields of clients.
var Table = metadata.MustTable(TableName, "id",
	metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "name", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "code", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "contact_person", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "email", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "phone", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "notes", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "is_active", Kind: metadata.KindBool, Operators: metadata.BoolOperators()},
	metadata.Field{Name: "created_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "updated_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
)

// ClientRepository is the persistence surface for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id int64) error

	Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Client, error)
	FindByCode(ctx context.Context, code string) (*models.Client, error)
	SearchByName(ctx context.Context, pattern string, page criteria.Pagination) ([]models.Client, error)
	Count(ctx context.Context, spec map[string]interface{}) (int64, error)

	CodeAvailable(ctx context.Context, code string, excludeID *int64) (bool, error)
	CountActive(ctx context.Context) (int64, error)

	HealthCheck(ctx context.Context) facade.Health
}
