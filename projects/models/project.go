// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "time"

// Project is a client engagement planned over a date window. Reference and
// trigram are both unique business identifiers; the trigram is the short
// code used on schedules and reports.
type Project struct {
	ID                    int64      `db:"id" json:"id"`
	Reference             string     `db:"reference" json:"reference"`
	Trigram               string     `db:"trigram" json:"trigram"`
	Name                  string     `db:"name" json:"name"`
	Details               *string    `db:"details" json:"details,omitempty"`
	ClientID              int64      `db:"client_id" json:"clientId"`
	StartDate             *time.Time `db:"start_date" json:"startDate,omitempty"`
	EndDate               *time.Time `db:"end_date" json:"endDate,omitempty"`
	Priority              int64      `db:"priority" json:"priority"`
	StatusCodeID          *int64     `db:"status_code_id" json:"statusCodeId,omitempty"`
	ResponsibleEmployeeID *int64     `db:"responsible_employee_id" json:"responsibleEmployeeId,omitempty"`
	IsActive              bool       `db:"is_active" json:"isActive"`
	CreatedAt             time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updatedAt"`
}
