// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"time"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/vacations/models"
)

const TableName = "vacations"

var Table = metadata.MustTable(TableName, "id",
	metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "employee_id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "start_date", Kind: metadata.KindDate, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "end_date", Kind: metadata.KindDate, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "type", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "status", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	metadata.Field{Name: "reason", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "total_days", Kind: metadata.KindDecimal, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "business_days", Kind: metadata.KindDecimal, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "created_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "updated_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
)

// VacationRepository is the persistence surface for vacations.
type VacationRepository interface {
	Create(ctx context.Context, vacation *models.Vacation) error
	GetByID(ctx context.Context, id int64) (*models.Vacation, error)
	Update(ctx context.Context, vacation *models.Vacation) error
	Delete(ctx context.Context, id int64) error

	Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Vacation, error)
	FindForEmployee(ctx context.Context, employeeID int64, page criteria.Pagination) ([]models.Vacation, error)
	FindOverlapping(ctx context.Context, employeeID int64, windowStart, windowEnd time.Time) ([]models.Vacation, error)
	FindByStatus(ctx context.Context, status string, page criteria.Pagination) ([]models.Vacation, error)

	CountByStatus(ctx context.Context, statuses []string) (map[string]int64, error)
	CountForEmployee(ctx context.Context, employeeID int64) (int64, error)

	HealthCheck(ctx context.Context) facade.Health
}
