// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package criteria

import (
	"sort"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

// Combinator keys recognized at any nesting level of a criteria spec.
const (
	combinatorAnd = "and"
	combinatorOr  = "or"
)

// Normalize parses an untyped criteria spec into a validated Predicate.
//
// Spec keys are either a field name mapped to a bare scalar (implicit eq),
// a field name mapped to {"operator": ..., "value": ...}, or the literal
// keys "and"/"or" mapped to a list of nested specs.
//
// Normalization is pure and deterministic: keys are visited in sorted order,
// so the same spec always yields a structurally equal predicate. An empty
// spec yields the always-true And{}.
//
// A bare nil value under an equality operator normalizes to an is_null
// comparison rather than failing the type check; a naive `= NULL` never
// matches in SQL, and that is not what callers mean.
func Normalize(spec map[string]interface{}, table metadata.Table) (Predicate, error) {
	preds, err := normalizeEntries(spec, table)
	if err != nil {
		return nil, err
	}
	if len(preds) == 1 {
		return preds[0], nil
	}
	return And(preds), nil
}

func normalizeEntries(spec map[string]interface{}, table metadata.Table) ([]Predicate, error) {
	keys := make([]string, 0, len(spec))
	for k := range spec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	preds := make([]Predicate, 0, len(keys))
	for _, key := range keys {
		value := spec[key]

		switch key {
		case combinatorAnd, combinatorOr:
			children, err := normalizeGroup(key, value, table)
			if err != nil {
				return nil, err
			}
			if key == combinatorAnd {
				preds = append(preds, And(children))
			} else {
				preds = append(preds, Or(children))
			}
			continue
		}

		field, ok := table.Field(key)
		if !ok {
			return nil, &UnknownFieldError{Table: table.Name, Field: key}
		}

		cmp, err := normalizeComparison(table, field, value)
		if err != nil {
			return nil, err
		}
		preds = append(preds, cmp)
	}
	return preds, nil
}

// normalizeGroup parses the list value of an "and"/"or" key. Each element
// is a nested spec and normalizes recursively.
func normalizeGroup(key string, value interface{}, table metadata.Table) ([]Predicate, error) {
	var nested []map[string]interface{}
	switch v := value.(type) {
	case []map[string]interface{}:
		nested = v
	case []interface{}:
		nested = make([]map[string]interface{}, 0, len(v))
		for _, e := range v {
			m, ok := e.(map[string]interface{})
			if !ok {
				return nil, &MalformedSpecError{Reason: "\"" + key + "\" element is not a nested spec"}
			}
			nested = append(nested, m)
		}
	case nil:
		nested = nil
	default:
		return nil, &MalformedSpecError{Reason: "\"" + key + "\" must map to a list of nested specs"}
	}

	children := make([]Predicate, 0, len(nested))
	for _, m := range nested {
		child, err := Normalize(m, table)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func normalizeComparison(table metadata.Table, field metadata.Field, value interface{}) (Comparison, error) {
	op := metadata.OpEq
	if m, ok := value.(map[string]interface{}); ok {
		rawOp, present := m["operator"]
		if !present {
			return Comparison{}, &MalformedSpecError{Reason: "field spec for \"" + field.Name + "\" has no \"operator\" key"}
		}
		opName, ok := rawOp.(string)
		if !ok {
			return Comparison{}, &MalformedSpecError{Reason: "operator for \"" + field.Name + "\" is not a string"}
		}
		parsed, known := metadata.ParseOperator(opName)
		if !known {
			return Comparison{}, &UnsupportedOperatorError{Table: table.Name, Field: field.Name, Operator: opName}
		}
		op = parsed
		value = m["value"]
	}

	// nil under an equality operator becomes is_null (see Normalize doc).
	if value == nil && op == metadata.OpEq {
		op = metadata.OpIsNull
	}

	if op != metadata.OpIsNull && !field.Allows(op) {
		return Comparison{}, &UnsupportedOperatorError{Table: table.Name, Field: field.Name, Operator: string(op)}
	}

	switch op {
	case metadata.OpIsNull:
		if value != nil {
			return Comparison{}, &TypeMismatchError{Table: table.Name, Field: field.Name, Operator: op, Value: value, Want: field.Kind}
		}
		return Comparison{Field: field.Name, Operator: op, Value: nil}, nil

	case metadata.OpIn:
		elems, ok := toSlice(value)
		if !ok {
			return Comparison{}, &TypeMismatchError{Table: table.Name, Field: field.Name, Operator: op, Value: value, Want: field.Kind}
		}
		for _, e := range elems {
			if !field.Kind.Matches(e) {
				return Comparison{}, &TypeMismatchError{Table: table.Name, Field: field.Name, Operator: op, Value: e, Want: field.Kind}
			}
		}
		return Comparison{Field: field.Name, Operator: op, Value: elems}, nil

	default:
		if !field.Kind.Matches(value) {
			return Comparison{}, &TypeMismatchError{Table: table.Name, Field: field.Name, Operator: op, Value: value, Want: field.Kind}
		}
		return Comparison{Field: field.Name, Operator: op, Value: value}, nil
	}
}

func toSlice(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []int64:
		out := make([]interface{}, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []int:
		out := make([]interface{}, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}
