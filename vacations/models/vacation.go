// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vacation is an employee absence over an inclusive date window. TotalDays
// counts calendar days, BusinessDays excludes weekends and holidays; both
// carry fractions for half-day absences.
type Vacation struct {
	ID           int64           `db:"id" json:"id"`
	EmployeeID   int64           `db:"employee_id" json:"employeeId"`
	StartDate    time.Time       `db:"start_date" json:"startDate"`
	EndDate      time.Time       `db:"end_date" json:"endDate"`
	Type         string          `db:"type" json:"type"`
	Status       string          `db:"status" json:"status"`
	Reason       *string         `db:"reason" json:"reason,omitempty"`
	TotalDays    decimal.Decimal `db:"total_days" json:"totalDays"`
	BusinessDays decimal.Decimal `db:"business_days" json:"businessDays"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"`
}
