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
	"github.com/Rafael-Arenas/plan-sub003/statuscodes/models"
)

const TableName = "status_codes"

var Table = metadata.MustTable(TableName, "id",
	metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "code", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "name", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "description", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "color", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "icon", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "sort_order", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "is_active", Kind: metadata.KindBool, Operators: metadata.BoolOperators()},
	metadata.Field{Name: "created_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "updated_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
)

type StatusCodeRepository interface {
	Create(ctx context.Context, statusCode *models.StatusCode) error
	GetByID(ctx context.Context, id int64) (*models.StatusCode, error)
	Update(ctx context.Context, statusCode *models.StatusCode) error
	Delete(ctx context.Context, id int64) error

	Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.StatusCode, error)
	FindByCode(ctx context.Context, code string) (*models.StatusCode, error)
	ListOrdered(ctx context.Context, activeOnly bool) ([]models.StatusCode, error)

	CodeAvailable(ctx context.Context, code string, excludeID *int64) (bool, error)

	HealthCheck(ctx context.Context) facade.Health
}
