// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workload records the planned and actual hours of one employee on one
// project for one day. ActualHours and UtilizationPercent stay null until
// the day is reported.
type Workload struct {
	ID                 int64               `db:"id" json:"id"`
	EmployeeID         int64               `db:"employee_id" json:"employeeId"`
	ProjectID          int64               `db:"project_id" json:"projectId"`
	Date               time.Time           `db:"date" json:"date"`
	PlannedHours       decimal.Decimal     `db:"planned_hours" json:"plannedHours"`
	ActualHours        decimal.NullDecimal `db:"actual_hours" json:"actualHours,omitempty"`
	UtilizationPercent decimal.NullDecimal `db:"utilization_percent" json:"utilizationPercent,omitempty"`
	Notes              *string             `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time           `db:"updated_at" json:"updatedAt"`
}
