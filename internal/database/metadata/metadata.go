// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package metadata describes the queryable surface of each entity table:
// field names, scalar kinds, nullability and the operators each field
// accepts. Tables are registered once at process start and are immutable
// afterwards; every criteria normalization and query compilation validates
// against this registry before any SQL is built.
package metadata

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Kind enumerates the scalar types a queryable field may hold.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindDate
	KindDateTime
	KindDecimal
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Matches reports whether the runtime type of v is acceptable for this kind.
// A nil value never matches; IS NULL handling is decided before this check.
func (k Kind) Matches(v interface{}) bool {
	if v == nil {
		return false
	}
	switch k {
	case KindInt:
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		}
		return false
	case KindFloat:
		switch reflect.ValueOf(v).Kind() {
		case reflect.Float32, reflect.Float64:
			return true
		}
		return false
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindDate, KindDateTime:
		_, ok := v.(time.Time)
		return ok
	case KindDecimal:
		_, ok := v.(decimal.Decimal)
		return ok
	}
	return false
}

// Operator enumerates the comparison operators the criteria format accepts.
// The string values are the wire names used inside criteria specs.
type Operator string

const (
	OpEq     Operator = "eq"
	OpNotEq  Operator = "neq"
	OpGt     Operator = "gt"
	OpGte    Operator = "gte"
	OpLt     Operator = "lt"
	OpLte    Operator = "lte"
	OpILike  Operator = "ilike"
	OpIExact Operator = "iexact"
	OpIn     Operator = "in"
	OpIsNull Operator = "is_null"
)

// operatorKinds restricts each operator to the scalar kinds it is legal on.
var operatorKinds = map[Operator][]Kind{
	OpEq:     {KindInt, KindFloat, KindString, KindBool, KindDate, KindDateTime, KindDecimal},
	OpNotEq:  {KindInt, KindFloat, KindString, KindBool, KindDate, KindDateTime, KindDecimal},
	OpGt:     {KindInt, KindFloat, KindString, KindDate, KindDateTime, KindDecimal},
	OpGte:    {KindInt, KindFloat, KindString, KindDate, KindDateTime, KindDecimal},
	OpLt:     {KindInt, KindFloat, KindString, KindDate, KindDateTime, KindDecimal},
	OpLte:    {KindInt, KindFloat, KindString, KindDate, KindDateTime, KindDecimal},
	OpILike:  {KindString},
	OpIExact: {KindString},
	OpIn:     {KindInt, KindFloat, KindString, KindDate, KindDateTime, KindDecimal},
	OpIsNull: {KindInt, KindFloat, KindString, KindBool, KindDate, KindDateTime, KindDecimal},
}

// ParseOperator resolves the wire name of an operator from a criteria spec.
func ParseOperator(s string) (Operator, bool) {
	op := Operator(s)
	_, ok := operatorKinds[op]
	return op, ok
}

// SupportsKind reports whether the operator is legal on fields of kind k.
func (o Operator) SupportsKind(k Kind) bool {
	for _, kk := range operatorKinds[o] {
		if kk == k {
			return true
		}
	}
	return false
}

// Field describes one queryable column of an entity table.
type Field struct {
	Name      string
	Kind      Kind
	Nullable  bool
	Operators []Operator
}

// Allows reports whether op may be applied to this field.
func (f Field) Allows(op Operator) bool {
	for _, o := range f.Operators {
		if o == op {
			return true
		}
	}
	return false
}

// Table is the immutable per-entity field metadata. Columns() yields a
// deterministic column order (primary key first, then sorted field names)
// so compiled SQL is reproducible.
type Table struct {
	Name       string
	PrimaryKey string
	fields     map[string]Field
	columns    []string
}

// NewTable builds a Table and validates it: the primary key must be among
// the fields and every declared operator must be legal for its field's kind.
func NewTable(name, primaryKey string, fields ...Field) (Table, error) {
	if name == "" {
		return Table{}, fmt.Errorf("metadata: table name is required")
	}
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if _, dup := byName[f.Name]; dup {
			return Table{}, fmt.Errorf("metadata: duplicate field %q in table %q", f.Name, name)
		}
		for _, op := range f.Operators {
			if _, known := operatorKinds[op]; !known {
				return Table{}, fmt.Errorf("metadata: unknown operator %q on field %q of table %q", op, f.Name, name)
			}
			if !op.SupportsKind(f.Kind) {
				return Table{}, fmt.Errorf("metadata: operator %q is not applicable to %s field %q of table %q", op, f.Kind, f.Name, name)
			}
		}
		byName[f.Name] = f
	}
	if _, ok := byName[primaryKey]; !ok {
		return Table{}, fmt.Errorf("metadata: primary key %q is not a field of table %q", primaryKey, name)
	}

	names := make([]string, 0, len(byName))
	for n := range byName {
		if n != primaryKey {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	columns := append([]string{primaryKey}, names...)

	return Table{Name: name, PrimaryKey: primaryKey, fields: byName, columns: columns}, nil
}

// MustTable is NewTable that panics; intended for package-level table
// definitions that run at process start.
func MustTable(name, primaryKey string, fields ...Field) Table {
	t, err := NewTable(name, primaryKey, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

// Field looks up a field by name.
func (t Table) Field(name string) (Field, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// Columns returns the deterministic column list: primary key first, then the
// remaining fields in sorted order.
func (t Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// InsertColumns returns Columns() without the primary key, for INSERT
// statements against serial keys.
func (t Table) InsertColumns() []string {
	out := make([]string, 0, len(t.columns)-1)
	for _, c := range t.columns {
		if c != t.PrimaryKey {
			out = append(out, c)
		}
	}
	return out
}

// FieldNames returns every field name in sorted order, primary key included.
func (t Table) FieldNames() []string {
	names := make([]string, 0, len(t.fields))
	for n := range t.fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TextOperators is the conventional operator set for string fields.
func TextOperators() []Operator {
	return []Operator{OpEq, OpNotEq, OpILike, OpIExact, OpIn, OpIsNull}
}

// ComparableOperators is the conventional operator set for numeric, date,
// datetime and decimal fields.
func ComparableOperators() []Operator {
	return []Operator{OpEq, OpNotEq, OpGt, OpGte, OpLt, OpLte, OpIn, OpIsNull}
}

// BoolOperators is the conventional operator set for boolean fields.
func BoolOperators() []Operator {
	return []Operator{OpEq, OpNotEq, OpIsNull}
}

// NotRegisteredError is returned when a table is requested from a registry it
// was never registered with. This is a configuration error and callers are
// expected to fail fast rather than treat it as an empty result.
type NotRegisteredError struct {
	Table string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("metadata: table %q is not registered", e.Table)
}

// Registry holds the immutable table metadata for every entity. Safe for
// concurrent readers; registration happens once during startup.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]Table)}
}

// Register adds a table to the registry. Re-registering a name is rejected
// because metadata is immutable after registration.
func (r *Registry) Register(t Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[t.Name]; exists {
		return fmt.Errorf("metadata: table %q already registered", t.Name)
	}
	r.tables[t.Name] = t
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(t Table) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the metadata for a table, or NotRegisteredError.
func (r *Registry) Lookup(name string) (Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[name]
	if !ok {
		return Table{}, &NotRegisteredError{Table: name}
	}
	return t, nil
}
