// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

// Compile lowers a predicate plus ordering and pagination into a
// parameterized SELECT. Compilation is pure translation: no I/O, and the
// same inputs always produce the same SQL and argument list.
//
// The entity primary key (ascending) is appended to the effective order
// unless the caller already ordered by it, so repeated paginated calls see
// a stable row sequence even when the explicit order has duplicate keys.
//
// Fields are re-checked against the table metadata here; a predicate that
// references an unknown field fails with UnknownFieldError instead of the
// condition being silently dropped.
func Compile(pred criteria.Predicate, order []criteria.OrderSpec, page criteria.Pagination, table metadata.Table) (string, []interface{}, error) {
	if err := page.Validate(); err != nil {
		return "", nil, err
	}

	where, err := lowerPredicate(pred, table)
	if err != nil {
		return "", nil, err
	}

	orderBy, err := orderClauses(order, table)
	if err != nil {
		return "", nil, err
	}

	builder := sq.Select(table.Columns()...).
		From(table.Name).
		Where(where).
		OrderBy(orderBy...).
		PlaceholderFormat(sq.Dollar)

	if page.Limit != nil {
		builder = builder.Limit(uint64(*page.Limit))
	}
	if page.Offset > 0 {
		builder = builder.Offset(uint64(page.Offset))
	}

	return builder.ToSql()
}

// CompileCount lowers a predicate into a COUNT query. Ordering and
// pagination are irrelevant to counting and never apply.
func CompileCount(pred criteria.Predicate, table metadata.Table) (string, []interface{}, error) {
	where, err := lowerPredicate(pred, table)
	if err != nil {
		return "", nil, err
	}

	return sq.Select("COUNT(*)").
		From(table.Name).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// lowerPredicate recursively converts the predicate tree into squirrel
// sqlizers. Empty And compiles to TRUE and empty Or to FALSE; this is the
// documented convention behind "empty criteria match everything" and
// "empty disjunctions match nothing".
func lowerPredicate(pred criteria.Predicate, table metadata.Table) (sq.Sqlizer, error) {
	switch p := pred.(type) {
	case nil:
		return sq.Expr("TRUE"), nil

	case criteria.Comparison:
		return lowerComparison(p, table)

	case criteria.And:
		if len(p) == 0 {
			return sq.Expr("TRUE"), nil
		}
		conj := make(sq.And, 0, len(p))
		for _, child := range p {
			s, err := lowerPredicate(child, table)
			if err != nil {
				return nil, err
			}
			conj = append(conj, s)
		}
		return conj, nil

	case criteria.Or:
		if len(p) == 0 {
			return sq.Expr("FALSE"), nil
		}
		disj := make(sq.Or, 0, len(p))
		for _, child := range p {
			s, err := lowerPredicate(child, table)
			if err != nil {
				return nil, err
			}
			disj = append(disj, s)
		}
		return disj, nil

	case criteria.Not:
		inner, err := lowerPredicate(p.Inner, table)
		if err != nil {
			return nil, err
		}
		return notSqlizer{inner: inner}, nil

	default:
		return nil, fmt.Errorf("postgres: unsupported predicate node %T", pred)
	}
}

func lowerComparison(cmp criteria.Comparison, table metadata.Table) (sq.Sqlizer, error) {
	if _, ok := table.Field(cmp.Field); !ok {
		return nil, &criteria.UnknownFieldError{Table: table.Name, Field: cmp.Field}
	}

	switch cmp.Operator {
	case metadata.OpEq:
		return sq.Eq{cmp.Field: cmp.Value}, nil
	case metadata.OpNotEq:
		return sq.NotEq{cmp.Field: cmp.Value}, nil
	case metadata.OpGt:
		return sq.Gt{cmp.Field: cmp.Value}, nil
	case metadata.OpGte:
		return sq.GtOrEq{cmp.Field: cmp.Value}, nil
	case metadata.OpLt:
		return sq.Lt{cmp.Field: cmp.Value}, nil
	case metadata.OpLte:
		return sq.LtOrEq{cmp.Field: cmp.Value}, nil
	case metadata.OpILike:
		return sq.ILike{cmp.Field: cmp.Value}, nil
	case metadata.OpIExact:
		return sq.Expr(fmt.Sprintf("lower(%s) = lower(?)", cmp.Field), cmp.Value), nil
	case metadata.OpIn:
		// squirrel renders a slice under Eq as IN; an empty list becomes
		// the always-false (1=0).
		return sq.Eq{cmp.Field: cmp.Value}, nil
	case metadata.OpIsNull:
		return sq.Eq{cmp.Field: nil}, nil
	default:
		return nil, &criteria.UnsupportedOperatorError{Table: table.Name, Field: cmp.Field, Operator: string(cmp.Operator)}
	}
}

// orderClauses renders the effective ORDER BY list with the primary-key
// tie-break appended.
func orderClauses(order []criteria.OrderSpec, table metadata.Table) ([]string, error) {
	clauses := make([]string, 0, len(order)+1)
	pkListed := false

	for _, spec := range order {
		if _, ok := table.Field(spec.Field); !ok {
			return nil, &criteria.UnknownFieldError{Table: table.Name, Field: spec.Field}
		}
		dir := "ASC"
		if spec.Direction == criteria.Desc {
			dir = "DESC"
		}
		if spec.Field == table.PrimaryKey {
			pkListed = true
		}
		clauses = append(clauses, spec.Field+" "+dir)
	}

	if !pkListed {
		clauses = append(clauses, table.PrimaryKey+" ASC")
	}
	return clauses, nil
}

// notSqlizer negates an inner sqlizer; squirrel has no Not combinator.
type notSqlizer struct {
	inner sq.Sqlizer
}

func (n notSqlizer) ToSql() (string, []interface{}, error) {
	s, args, err := n.inner.ToSql()
	if err != nil {
		return "", nil, err
	}
	return "NOT (" + s + ")", args, nil
}
