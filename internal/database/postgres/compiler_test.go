// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

func compilerTable(t *testing.T) metadata.Table {
	t.Helper()
	table, err := metadata.NewTable("clients", "id",
		metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
		metadata.Field{Name: "code", Kind: metadata.KindString, Operators: metadata.TextOperators()},
		metadata.Field{Name: "name", Kind: metadata.KindString, Operators: metadata.TextOperators()},
		metadata.Field{Name: "notes", Kind: metadata.KindString, Nullable: true, Operators: metadata.TextOperators()},
		metadata.Field{Name: "is_active", Kind: metadata.KindBool, Operators: metadata.BoolOperators()},
	)
	require.NoError(t, err)
	return table
}

const selectPrefix = "SELECT id, code, is_active, name, notes FROM clients"

func TestCompile_Comparisons(t *testing.T) {
	table := compilerTable(t)

	cases := []struct {
		name     string
		pred     criteria.Predicate
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "eq",
			pred:     criteria.Comparison{Field: "code", Operator: metadata.OpEq, Value: "ACME"},
			wantSQL:  selectPrefix + " WHERE code = $1 ORDER BY id ASC",
			wantArgs: []interface{}{"ACME"},
		},
		{
			name:     "neq",
			pred:     criteria.Comparison{Field: "code", Operator: metadata.OpNotEq, Value: "ACME"},
			wantSQL:  selectPrefix + " WHERE code <> $1 ORDER BY id ASC",
			wantArgs: []interface{}{"ACME"},
		},
		{
			name:     "gt",
			pred:     criteria.Comparison{Field: "id", Operator: metadata.OpGt, Value: int64(5)},
			wantSQL:  selectPrefix + " WHERE id > $1 ORDER BY id ASC",
			wantArgs: []interface{}{int64(5)},
		},
		{
			name:     "lte",
			pred:     criteria.Comparison{Field: "id", Operator: metadata.OpLte, Value: int64(5)},
			wantSQL:  selectPrefix + " WHERE id <= $1 ORDER BY id ASC",
			wantArgs: []interface{}{int64(5)},
		},
		{
			name:     "ilike",
			pred:     criteria.Comparison{Field: "name", Operator: metadata.OpILike, Value: "%corp%"},
			wantSQL:  selectPrefix + " WHERE name ILIKE $1 ORDER BY id ASC",
			wantArgs: []interface{}{"%corp%"},
		},
		{
			name:     "iexact",
			pred:     criteria.Comparison{Field: "name", Operator: metadata.OpIExact, Value: "Acme"},
			wantSQL:  selectPrefix + " WHERE lower(name) = lower($1) ORDER BY id ASC",
			wantArgs: []interface{}{"Acme"},
		},
		{
			name:     "in",
			pred:     criteria.Comparison{Field: "code", Operator: metadata.OpIn, Value: []interface{}{"A", "B"}},
			wantSQL:  selectPrefix + " WHERE code IN ($1,$2) ORDER BY id ASC",
			wantArgs: []interface{}{"A", "B"},
		},
		{
			name:    "empty in matches nothing",
			pred:    criteria.Comparison{Field: "code", Operator: metadata.OpIn, Value: []interface{}{}},
			wantSQL: selectPrefix + " WHERE (1=0) ORDER BY id ASC",
		},
		{
			name:    "is_null",
			pred:    criteria.Comparison{Field: "notes", Operator: metadata.OpIsNull, Value: nil},
			wantSQL: selectPrefix + " WHERE notes IS NULL ORDER BY id ASC",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := Compile(tc.pred, nil, criteria.Unbounded(), table)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestCompile_Combinators(t *testing.T) {
	table := compilerTable(t)

	t.Run("and", func(t *testing.T) {
		pred := criteria.And{
			criteria.Comparison{Field: "code", Operator: metadata.OpEq, Value: "A"},
			criteria.Comparison{Field: "is_active", Operator: metadata.OpEq, Value: true},
		}
		sql, args, err := Compile(pred, nil, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE (code = $1 AND is_active = $2) ORDER BY id ASC", sql)
		assert.Equal(t, []interface{}{"A", true}, args)
	})

	t.Run("or", func(t *testing.T) {
		pred := criteria.Or{
			criteria.Comparison{Field: "code", Operator: metadata.OpEq, Value: "A"},
			criteria.Comparison{Field: "code", Operator: metadata.OpEq, Value: "B"},
		}
		sql, args, err := Compile(pred, nil, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE (code = $1 OR code = $2) ORDER BY id ASC", sql)
		assert.Equal(t, []interface{}{"A", "B"}, args)
	})

	t.Run("not", func(t *testing.T) {
		pred := criteria.Not{Inner: criteria.Comparison{Field: "code", Operator: metadata.OpEq, Value: "A"}}
		sql, args, err := Compile(pred, nil, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE NOT (code = $1) ORDER BY id ASC", sql)
		assert.Equal(t, []interface{}{"A"}, args)
	})

	t.Run("empty and is TRUE", func(t *testing.T) {
		sql, args, err := Compile(criteria.And{}, nil, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE TRUE ORDER BY id ASC", sql)
		assert.Empty(t, args)
	})

	t.Run("empty or is FALSE", func(t *testing.T) {
		sql, _, err := Compile(criteria.Or{}, nil, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE FALSE ORDER BY id ASC", sql)
	})

	t.Run("nil predicate is TRUE", func(t *testing.T) {
		sql, _, err := Compile(nil, nil, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE TRUE ORDER BY id ASC", sql)
	})
}

func TestCompile_Ordering(t *testing.T) {
	table := compilerTable(t)

	t.Run("tie-break appended after explicit order", func(t *testing.T) {
		order := []criteria.OrderSpec{{Field: "name", Direction: criteria.Desc}}
		sql, _, err := Compile(criteria.And{}, order, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE TRUE ORDER BY name DESC, id ASC", sql)
	})

	t.Run("tie-break not duplicated when pk ordered explicitly", func(t *testing.T) {
		order := []criteria.OrderSpec{{Field: "id", Direction: criteria.Desc}}
		sql, _, err := Compile(criteria.And{}, order, criteria.Unbounded(), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE TRUE ORDER BY id DESC", sql)
	})

	t.Run("unknown order field is rejected", func(t *testing.T) {
		order := []criteria.OrderSpec{{Field: "nickname", Direction: criteria.Asc}}
		_, _, err := Compile(criteria.And{}, order, criteria.Unbounded(), table)

		var unknown *criteria.UnknownFieldError
		require.ErrorAs(t, err, &unknown)
	})
}

func TestCompile_Pagination(t *testing.T) {
	table := compilerTable(t)

	t.Run("limit and offset", func(t *testing.T) {
		sql, _, err := Compile(criteria.And{}, nil, criteria.Limited(10, 20), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE TRUE ORDER BY id ASC LIMIT 10 OFFSET 20", sql)
	})

	t.Run("limit zero is a legal empty page", func(t *testing.T) {
		sql, _, err := Compile(criteria.And{}, nil, criteria.Limited(0, 0), table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE TRUE ORDER BY id ASC LIMIT 0", sql)
	})

	t.Run("offset without limit", func(t *testing.T) {
		sql, _, err := Compile(criteria.And{}, nil, criteria.Pagination{Offset: 5}, table)
		require.NoError(t, err)
		assert.Equal(t, selectPrefix+" WHERE TRUE ORDER BY id ASC OFFSET 5", sql)
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		negative := int64(-1)
		_, _, err := Compile(criteria.And{}, nil, criteria.Pagination{Limit: &negative}, table)

		var invalid *criteria.InvalidPaginationError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestCompile_UnknownFieldRejected(t *testing.T) {
	table := compilerTable(t)

	// fields are re-checked at compile time even though normalization already
	// validated them; a hand-built predicate cannot bypass the metadata.
	pred := criteria.Comparison{Field: "nickname", Operator: metadata.OpEq, Value: "x"}
	_, _, err := Compile(pred, nil, criteria.Unbounded(), table)

	var unknown *criteria.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nickname", unknown.Field)
}

func TestCompile_Deterministic(t *testing.T) {
	table := compilerTable(t)
	pred := criteria.And{
		criteria.Comparison{Field: "code", Operator: metadata.OpEq, Value: "A"},
		criteria.Comparison{Field: "is_active", Operator: metadata.OpEq, Value: true},
	}
	order := []criteria.OrderSpec{{Field: "name", Direction: criteria.Asc}}

	firstSQL, firstArgs, err := Compile(pred, order, criteria.Limited(5, 10), table)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		sql, args, err := Compile(pred, order, criteria.Limited(5, 10), table)
		require.NoError(t, err)
		assert.Equal(t, firstSQL, sql)
		assert.Equal(t, firstArgs, args)
	}
}

func TestCompileCount(t *testing.T) {
	table := compilerTable(t)

	t.Run("count with predicate", func(t *testing.T) {
		pred := criteria.Comparison{Field: "is_active", Operator: metadata.OpEq, Value: true}
		sql, args, err := CompileCount(pred, table)
		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM clients WHERE is_active = $1", sql)
		assert.Equal(t, []interface{}{true}, args)
	})

	t.Run("count everything", func(t *testing.T) {
		sql, _, err := CompileCount(criteria.And{}, table)
		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM clients WHERE TRUE", sql)
	})
}
