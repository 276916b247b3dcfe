// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "time"

// Employee is a member of the planning staff. EmployeeCode and Email are
// unique; both carry unique indexes and advisory pre-checks.
type Employee struct {
	ID                 int64     `db:"id" json:"id"`
	EmployeeCode       string    `db:"employee_code" json:"employeeCode"`
	FirstName          string    `db:"first_name" json:"firstName"`
	LastName           string    `db:"last_name" json:"lastName"`
	Email              string    `db:"email" json:"email"`
	Phone              *string   `db:"phone" json:"phone,omitempty"`
	Position           *string   `db:"position" json:"position,omitempty"`
	QualificationLevel *string   `db:"qualification_level" json:"qualificationLevel,omitempty"`
	WeeklyHours        int64     `db:"weekly_hours" json:"weeklyHours"`
	HireDate           time.Time `db:"hire_date" json:"hireDate"`
	IsActive           bool      `db:"is_active" json:"isActive"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName joins the name parts the way schedules and reports display them.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
