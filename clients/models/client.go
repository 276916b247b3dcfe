// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "time"

// Client is a customer the agency plans projects for. Code is unique across
// clients and is the identifier users type, so most lookups go through it.
type Client struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Code          string    `db:"code" json:"code"`
	ContactPerson *string   `db:"contact_person" json:"contactPerson,omitempty"`
	Email         *string   `db:"email" json:"email,omitempty"`
	Phone         *string   `db:"phone" json:"phone,omitempty"`
	Notes         *string   `db:"notes" json:"notes,omitempty"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
