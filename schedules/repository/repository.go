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
	"github.com/Rafael-Arenas/plan-sub003/schedules/models"
)

const TableName = "schedules"

var Table = metadata.MustTable(TableName, "id",
	metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "employee_id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "project_id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "date", Kind: metadata.KindDate, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "start_time", Kind: metadata.KindDateTime, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "end_time", Kind: metadata.KindDateTime, Nullable: true, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "description", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
	metadata.Field{Name: "is_confirmed", Kind: metadata.KindBool, Operators: metadata.BoolOperators()},
	metadata.Field{Name: "created_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
	metadata.Field{Name: "updated_at", Kind: metadata.KindDateTime, Operators: metadata.ComparableOperators()},
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByID(ctx context.Context, id int64) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id int64) error

	Find(ctx context.Context, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) ([]models.Schedule, error)
	FindForProject(ctx context.Context, projectID int64, page criteria.Pagination) ([]models.Schedule, error)
	FindForEmployeeOn(ctx context.Context, employeeID int64, date time.Time) ([]models.Schedule, error)

	CountConfirmed(ctx context.Context) (int64, error)
	CountForProject(ctx context.Context, projectID int64) (int64, error)

	HealthCheck(ctx context.Context) facade.Health
}
