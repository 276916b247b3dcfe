// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "time"

// Schedule assigns an employee to a project for part of a day.
type Schedule struct {
	ID          int64      `db:"id" json:"id"`
	EmployeeID  int64      `db:"employee_id" json:"employeeId"`
	ProjectID   int64      `db:"project_id" json:"projectId"`
	Date        time.Time  `db:"date" json:"date"`
	StartTime   *time.Time `db:"start_time" json:"startTime,omitempty"`
	EndTime     *time.Time `db:"end_time" json:"endTime,omitempty"`
	Description *string    `db:"description" json:"description,omitempty"`
	IsConfirmed bool       `db:"is_confirmed" json:"isConfirmed"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
