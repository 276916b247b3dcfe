// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package criteria turns the caller-facing nested-map filter format into a
// validated, typed predicate tree. Normalization is pure and deterministic;
// all field, operator and value checking happens here, before any SQL is
// built.
package criteria

import "github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"

// Predicate is a boolean expression over the fields of one entity table.
// It is a closed set: Comparison leaves combined by And, Or and Not.
//
// Conventions, relied on by the compiler and covered by tests:
//   - And(nil) / And{} matches every row (no filter).
//   - Or(nil) / Or{} matches no row.
type Predicate interface {
	isPredicate()
}

// Comparison is a leaf predicate: field <operator> value.
// Invariants established by Normalize: the field exists in the table
// metadata, the operator is allowed on that field, and the value's runtime
// type matches the field kind (nil only together with OpIsNull).
type Comparison struct {
	Field    string
	Operator metadata.Operator
	Value    interface{}
}

// And is the conjunction of its children. Empty And is always true.
type And []Predicate

// Or is the disjunction of its children. Empty Or is always false.
type Or []Predicate

// Not negates its inner predicate. The criteria map format has no "not"
// key; Not exists for programmatic composition such as exclude-id checks.
type Not struct {
	Inner Predicate
}

func (Comparison) isPredicate() {}
func (And) isPredicate()        {}
func (Or) isPredicate()         {}
func (Not) isPredicate()        {}

// Direction of an order term.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// OrderSpec is one ordering term; lists apply primary-first. The compiler
// appends a primary-key tie-break so pagination is stable across calls.
type OrderSpec struct {
	Field     string
	Direction Direction
}

// Pagination bounds a result window. A nil Limit means unbounded; Limit of
// zero is a legal request for an empty page. Offset without Limit is legal.
type Pagination struct {
	Limit  *int64
	Offset int64
}

// Limited is a convenience constructor for a bounded window.
func Limited(limit, offset int64) Pagination {
	return Pagination{Limit: &limit, Offset: offset}
}

// Unbounded returns pagination that applies no window at all.
func Unbounded() Pagination {
	return Pagination{}
}

// Validate rejects negative limits and offsets.
func (p Pagination) Validate() error {
	if p.Limit != nil && *p.Limit < 0 {
		return &InvalidPaginationError{Reason: "limit must not be negative"}
	}
	if p.Offset < 0 {
		return &InvalidPaginationError{Reason: "offset must not be negative"}
	}
	return nil
}
