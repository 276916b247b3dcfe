// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/workloads/models"
)

const TableName = "workloads"

var Table = metadata.MustTable(TableName, "id",
	metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "employee_id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "project_id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "date", Kind: metadata.KindDate, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "planned_hours", Kind: metadata.KindDecimal, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "actual_hours", Kind: metadata.KindDecimal, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "utilization_percent", Kind: metadata.KindDecimal, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "notes", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "created_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "updated_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
)

// WorkloadRepository is the persistence surface for daily workloads.
type WorkloadRepository interface {
	Create(ctx context.Context, workload *models.Workload) error
	GetByID(ctx context.Context, id int64) (*models.Workload, error)
	Update(ctx context.Context, workload *models.Workload) error
	Delete(ctx context.Context, id int64) error

	Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Workload, error)
	FindForWeek(ctx context.Context, employeeID int64, weekStart time.Time) ([]models.Workload, error)
	FindUnreported(ctx context.Context, page criteria.Pagination) ([]models.Workload, error)

	SumPlannedHours(ctx context.Context, employeeID int64, from, to time.Time) (decimal.Decimal, error)
	CountForProject(ctx context.Context, projectID int64) (int64, error)

	HealthCheck(ctx context.Context) facade.Health
}
