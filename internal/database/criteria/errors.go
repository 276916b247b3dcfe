// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package criteria

import (
	"fmt"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

// UnknownFieldError reports a criteria key that is neither a registered
// field nor a combinator. Client-input error; retrying cannot succeed.
type UnknownFieldError struct {
	Table string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("criteria: unknown field %q on table %q", e.Field, e.Table)
}

// UnsupportedOperatorError reports an operator that is not legal for the
// referenced field.
type UnsupportedOperatorError struct {
	Table    string
	Field    string
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("criteria: operator %q is not supported on field %q of table %q", e.Operator, e.Field, e.Table)
}

// TypeMismatchError reports a criteria value whose runtime type does not
// match the field's declared scalar kind.
type TypeMismatchError struct {
	Table    string
	Field    string
	Operator metadata.Operator
	Value    interface{}
	Want     metadata.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("criteria: value %v (%T) does not match %s field %q of table %q (operator %q)",
		e.Value, e.Value, e.Want, e.Field, e.Table, e.Operator)
}

// MalformedSpecError reports a structurally invalid criteria spec, such as
// a combinator whose value is not a list of nested specs.
type MalformedSpecError struct {
	Reason string
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("criteria: malformed spec: %s", e.Reason)
}

// InvalidPaginationError reports a negative limit or offset.
type InvalidPaginationError struct {
	Reason string
}

func (e *InvalidPaginationError) Error() string {
	return fmt.Sprintf("criteria: invalid pagination: %s", e.Reason)
}
