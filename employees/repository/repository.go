// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"time"

	"github.com/Rafael-Arenas/plan-sub003/employees/models"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

const TableName = "employees"

var Table = metadata.MustTable(TableName, "id",
	metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "employee_code", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "first_name", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "last_name", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "email", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "phone", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "position", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "qualification_level", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "weekly_hours", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "hire_date", Kind: metadata.KindDate, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "is_active", Kind: metadata.KindBool, Operators: metadata.BoolOperators()},
	metadata.Field{Name: "created_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "updated_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
)

// EmployeeRepository is the persistence surface for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) error

	Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Employee, error)
	FindByCode(ctx context.Context, code string) (*models.Employee, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	FindActive(ctx context.Context, page criteria.Pagination) ([]models.Employee, error)
	FindHiredBetween(ctx context.Context, from, to time.Time, page criteria.Pagination) ([]models.Employee, error)

	CodeAvailable(ctx context.Context, code string, excludeID *int64) (bool, error)
	EmailAvailable(ctx context.Context, email string, excludeID *int64) (bool, error)
	CountByPosition(ctx context.Context, positions []string) (map[string]int64, error)

	HealthCheck(ctx context.Context) facade.Health
}
