// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

// ErrNotFound is reported by the CRUD layer when a lookup-by-id, update or
// delete touches no row. The query engine itself never returns it: absence
// from FindOne is a nil result, not an error.
var ErrNotFound = errors.New("record not found")

// DuplicateError is the authoritative uniqueness signal, raised at the write
// boundary when a storage unique constraint is violated. Any Exists
// pre-check is advisory only; a concurrent writer can always slip between
// the read and the write.
type DuplicateError struct {
	Constraint string
	cause      error
}

func (e *DuplicateError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("duplicate key violates constraint %q", e.Constraint)
	}
	return "duplicate key"
}

func (e *DuplicateError) Unwrap() error {
	return e.cause
}

// BackendError wraps a lower-level database failure (connectivity loss,
// timeout, malformed statement) with the operation that hit it. The original
// cause stays attached and is never swallowed.
type BackendError struct {
	Op    string
	cause error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend failure: %v", e.Op, e.cause)
}

func (e *BackendError) Unwrap() error {
	return e.cause
}

// translate maps driver errors to the package taxonomy. sql.ErrNoRows passes
// through untouched; everything else keeps its cause attached, so sentinels
// like context.Canceled still match through errors.Is.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return &DuplicateError{Constraint: pqErr.Constraint, cause: err}
	}
	return &BackendError{Op: op, cause: err}
}
