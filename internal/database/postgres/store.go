// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

// Store executes compiled queries for one entity table. Reads are safe for
// concurrent use; each call borrows a connection from the client pool and
// releases it before returning, on every path. Cancellation of the caller
// context aborts the in-flight statement.
type Store struct {
	client *Client
	table  metadata.Table
}

// NewStore binds a store to a table's metadata.
func NewStore(client *Client, table metadata.Table) *Store {
	return &Store{client: client, table: table}
}

// Table returns the bound field metadata.
func (s *Store) Table() metadata.Table {
	return s.table
}

// FindMany executes the predicate with the given ordering and pagination and
// scans the rows into dest (a pointer to a slice). Row order matches the
// compiled order list, tie-break included.
func (s *Store) FindMany(ctx context.Context, dest interface{}, pred criteria.Predicate, order []criteria.OrderSpec, page criteria.Pagination) error {
	query, args, err := Compile(pred, order, page, s.table)
	if err != nil {
		return err
	}
	if err := sqlx.SelectContext(ctx, s.client.db, dest, query, args...); err != nil {
		return translate("find "+s.table.Name, err)
	}
	return nil
}

// FindOne executes the predicate with an implicit LIMIT 1 and scans the row
// into dest. It returns false (and leaves dest untouched) on zero rows.
//
// When the predicate is built from a non-unique field, "the" row is whatever
// sorts first by primary key; single-row semantics are a caller contract,
// not something the engine enforces.
func (s *Store) FindOne(ctx context.Context, dest interface{}, pred criteria.Predicate) (bool, error) {
	query, args, err := Compile(pred, nil, criteria.Limited(1, 0), s.table)
	if err != nil {
		return false, err
	}
	if err := sqlx.GetContext(ctx, s.client.db, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, translate("find one "+s.table.Name, err)
	}
	return true, nil
}

// Count executes a COUNT variant of the predicate. Ordering never applies.
func (s *Store) Count(ctx context.Context, pred criteria.Predicate) (int64, error) {
	query, args, err := CompileCount(pred, s.table)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := sqlx.GetContext(ctx, s.client.db, &n, query, args...); err != nil {
		return 0, translate("count "+s.table.Name, err)
	}
	return n, nil
}

// Exists answers "does a row matching fieldCriteria already exist, ignoring
// the row excludeID". It is the pre-check used by every entity's validation
// module before a write.
//
// This is a read followed later by an independent write; a concurrent
// writer can insert a conflicting row in between, and Exists cannot make
// that atomic. The table's unique constraint is the authoritative guard —
// a violating write surfaces as DuplicateError at the write boundary.
// Exists only buys a friendlier error message ahead of time.
func (s *Store) Exists(ctx context.Context, fieldCriteria map[string]interface{}, excludeID *int64) (bool, error) {
	pred, err := criteria.Normalize(fieldCriteria, s.table)
	if err != nil {
		return false, err
	}
	if excludeID != nil {
		pred = criteria.And{
			pred,
			criteria.Comparison{Field: s.table.PrimaryKey, Operator: metadata.OpNotEq, Value: *excludeID},
		}
	}
	n, err := s.Count(ctx, pred)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByID scans the row with the given primary key into dest, or reports
// ErrNotFound.
func (s *Store) GetByID(ctx context.Context, dest interface{}, id int64) error {
	found, err := s.FindOne(ctx, dest, criteria.Comparison{
		Field:    s.table.PrimaryKey,
		Operator: metadata.OpEq,
		Value:    id,
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s %d: %w", s.table.Name, id, ErrNotFound)
	}
	return nil
}

// Insert writes a new row from the entity's db-tagged fields and returns the
// generated primary key. Unique-constraint violations come back as
// DuplicateError regardless of any earlier Exists pre-check.
func (s *Store) Insert(ctx context.Context, entity interface{}) (int64, error) {
	cols := s.table.InsertColumns()
	named := make([]string, len(cols))
	for i, c := range cols {
		named[i] = ":" + c
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		s.table.Name,
		strings.Join(cols, ", "),
		strings.Join(named, ", "),
		s.table.PrimaryKey,
	)

	rows, err := sqlx.NamedQueryContext(ctx, s.client.db, query, entity)
	if err != nil {
		return 0, translate("insert "+s.table.Name, err)
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, translate("insert "+s.table.Name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, translate("insert "+s.table.Name, err)
	}
	return id, nil
}

// Update rewrites every non-key column of the row identified by the entity's
// primary-key field. Zero rows affected is reported as ErrNotFound.
func (s *Store) Update(ctx context.Context, entity interface{}) error {
	cols := s.table.InsertColumns()
	assignments := make([]string, len(cols))
	for i, c := range cols {
		assignments[i] = c + " = :" + c
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s",
		s.table.Name,
		strings.Join(assignments, ", "),
		s.table.PrimaryKey,
		s.table.PrimaryKey,
	)

	res, err := sqlx.NamedExecContext(ctx, s.client.db, query, entity)
	if err != nil {
		return translate("update "+s.table.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return translate("update "+s.table.Name, err)
	}
	if affected == 0 {
		return fmt.Errorf("update %s: %w", s.table.Name, ErrNotFound)
	}
	return nil
}

// DeleteByID removes the row with the given primary key, reporting
// ErrNotFound when nothing was deleted.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", s.table.Name, s.table.PrimaryKey)

	res, err := s.client.db.ExecContext(ctx, query, id)
	if err != nil {
		return translate("delete "+s.table.Name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return translate("delete "+s.table.Name, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete %s %d: %w", s.table.Name, id, ErrNotFound)
	}
	return nil
}
