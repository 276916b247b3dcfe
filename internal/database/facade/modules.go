// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package facade

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
)

// emptyProbe is the cheap no-op query used by every module's health ping:
// a count with the always-true empty predicate.
func emptyProbe(ctx context.Context, engine Engine) error {
	_, err := engine.Count(ctx, criteria.And{})
	return err
}

// CRUDModule is the write boundary of an entity facade. Uniqueness is
// ultimately enforced here by the table's unique constraints; a violating
// Create or Update returns postgres.DuplicateError whatever the validation
// module said moments earlier.
type CRUDModule struct {
	engine Engine
}

// Create inserts the entity and returns the generated primary key.
func (m *CRUDModule) Create(ctx context.Context, entity interface{}) (int64, error) {
	return m.engine.Insert(ctx, entity)
}

// GetByID loads one row by primary key into dest; postgres.ErrNotFound on a
// miss.
func (m *CRUDModule) GetByID(ctx context.Context, dest interface{}, id int64) error {
	return m.engine.GetByID(ctx, dest, id)
}

// Update rewrites the row identified by the entity's primary-key field.
func (m *CRUDModule) Update(ctx context.Context, entity interface{}) error {
	return m.engine.Update(ctx, entity)
}

// Delete removes one row by primary key.
func (m *CRUDModule) Delete(ctx context.Context, id int64) error {
	return m.engine.DeleteByID(ctx, id)
}

func (m *CRUDModule) ping(ctx context.Context) error {
	return emptyProbe(ctx, m.engine)
}

// QueryModule exposes criteria-based reads. Every method normalizes the
// caller's nested-map spec before anything touches the database.
type QueryModule struct {
	engine Engine
}

// FindByCriteria normalizes spec and scans the matching rows into dest,
// ordered and paginated.
func (m *QueryModule) FindByCriteria(ctx context.Context, dest interface{}, spec map[string]interface{}, order []criteria.OrderSpec, page criteria.Pagination) error {
	pred, err := criteria.Normalize(spec, m.engine.Table())
	if err != nil {
		return err
	}
	return m.engine.FindMany(ctx, dest, pred, order, page)
}

// FindOneByCriteria normalizes spec and scans the first matching row into
// dest, reporting whether one was found.
func (m *QueryModule) FindOneByCriteria(ctx context.Context, dest interface{}, spec map[string]interface{}) (bool, error) {
	pred, err := criteria.Normalize(spec, m.engine.Table())
	if err != nil {
		return false, err
	}
	return m.engine.FindOne(ctx, dest, pred)
}

// CountByCriteria normalizes spec and counts the matching rows.
func (m *QueryModule) CountByCriteria(ctx context.Context, spec map[string]interface{}) (int64, error) {
	pred, err := criteria.Normalize(spec, m.engine.Table())
	if err != nil {
		return 0, err
	}
	return m.engine.Count(ctx, pred)
}

func (m *QueryModule) ping(ctx context.Context) error {
	return emptyProbe(ctx, m.engine)
}

// ConflictError is the validation module's advisory duplicate report: a row
// with the given field values already exists. It is a pre-check result with
// a readable message, not the authoritative uniqueness signal — that is
// postgres.DuplicateError at the write boundary.
type ConflictError struct {
	Table  string
	Fields map[string]interface{}
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		parts = append(parts, name)
	}
	sort.Strings(parts)
	for i, name := range parts {
		parts[i] = fmt.Sprintf("%s=%v", name, e.Fields[name])
	}
	return fmt.Sprintf("%s with %s already exists", e.Table, strings.Join(parts, ", "))
}

// ValidationModule answers uniqueness pre-checks through the existence
// oracle.
type ValidationModule struct {
	engine Engine
}

// Available reports whether no other row (ignoring excludeID) carries the
// given field values.
func (m *ValidationModule) Available(ctx context.Context, fields map[string]interface{}, excludeID *int64) (bool, error) {
	taken, err := m.engine.Exists(ctx, fields, excludeID)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// EnsureUnique returns a ConflictError when a conflicting row exists. The
// check is deliberately non-atomic with the write that follows it; see
// ConflictError.
func (m *ValidationModule) EnsureUnique(ctx context.Context, fields map[string]interface{}, excludeID *int64) error {
	available, err := m.Available(ctx, fields, excludeID)
	if err != nil {
		return err
	}
	if !available {
		return &ConflictError{Table: m.engine.Table().Name, Fields: fields}
	}
	return nil
}

func (m *ValidationModule) ping(ctx context.Context) error {
	return emptyProbe(ctx, m.engine)
}

// StatisticsModule aggregates counts over criteria. Everything here is a
// count-shaped query through the engine; no rows are materialized.
type StatisticsModule struct {
	engine Engine
}

// Total counts every row of the entity table.
func (m *StatisticsModule) Total(ctx context.Context) (int64, error) {
	return m.engine.Count(ctx, criteria.And{})
}

// CountWhere counts the rows matching a criteria spec.
func (m *StatisticsModule) CountWhere(ctx context.Context, spec map[string]interface{}) (int64, error) {
	pred, err := criteria.Normalize(spec, m.engine.Table())
	if err != nil {
		return 0, err
	}
	return m.engine.Count(ctx, pred)
}

// Breakdown counts rows per candidate value of one field, e.g. vacations by
// status. Values absent from the table simply count zero.
func (m *StatisticsModule) Breakdown(ctx context.Context, field string, values []interface{}) (map[string]int64, error) {
	table := m.engine.Table()
	out := make(map[string]int64, len(values))
	for _, v := range values {
		pred, err := criteria.Normalize(map[string]interface{}{field: v}, table)
		if err != nil {
			return nil, err
		}
		n, err := m.engine.Count(ctx, pred)
		if err != nil {
			return nil, err
		}
		out[fmt.Sprintf("%v", v)] = n
	}
	return out, nil
}

func (m *StatisticsModule) ping(ctx context.Context) error {
	return emptyProbe(ctx, m.engine)
}
