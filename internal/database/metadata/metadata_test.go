// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package metadata

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_Validation(t *testing.T) {
	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewTable("", "id", Field{Name: "id", Kind: KindInt})
		require.Error(t, err)
	})

	t.Run("rejects missing primary key", func(t *testing.T) {
		_, err := NewTable("things", "id", Field{Name: "name", Kind: KindString})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "primary key")
	})

	t.Run("rejects duplicate fields", func(t *testing.T) {
		_, err := NewTable("things", "id",
			Field{Name: "id", Kind: KindInt},
			Field{Name: "id", Kind: KindInt},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate field")
	})

	t.Run("rejects ilike on non-string field", func(t *testing.T) {
		_, err := NewTable("things", "id",
			Field{Name: "id", Kind: KindInt, Operators: []Operator{OpILike}},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not applicable")
	})

	t.Run("rejects unknown operator", func(t *testing.T) {
		_, err := NewTable("things", "id",
			Field{Name: "id", Kind: KindInt, Operators: []Operator{Operator("regex")}},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown operator")
	})
}

func TestTable_Columns_Deterministic(t *testing.T) {
	table := MustTable("things", "id",
		Field{Name: "zeta", Kind: KindString},
		Field{Name: "id", Kind: KindInt},
		Field{Name: "alpha", Kind: KindString},
		Field{Name: "mid", Kind: KindString},
	)

	// pk first, the rest sorted.
	assert.Equal(t, []string{"id", "alpha", "mid", "zeta"}, table.Columns())
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, table.InsertColumns())

	// returned slice is a copy
	cols := table.Columns()
	cols[0] = "mutated"
	assert.Equal(t, []string{"id", "alpha", "mid", "zeta"}, table.Columns())
}

func TestKind_Matches(t *testing.T) {
	cases := []struct {
		name  string
		kind  Kind
		value interface{}
		want  bool
	}{
		{"int accepts int", KindInt, 42, true},
		{"int accepts int64", KindInt, int64(42), true},
		{"int rejects float", KindInt, 4.2, false},
		{"int rejects string", KindInt, "42", false},
		{"float accepts float64", KindFloat, 4.2, true},
		{"float rejects int", KindFloat, 42, false},
		{"string accepts string", KindString, "x", true},
		{"string rejects bool", KindString, true, false},
		{"bool accepts bool", KindBool, false, true},
		{"date accepts time", KindDate, time.Now(), true},
		{"datetime accepts time", KindDateTime, time.Now(), true},
		{"date rejects string", KindDate, "2026-01-01", false},
		{"decimal accepts decimal", KindDecimal, decimal.NewFromInt(7), true},
		{"decimal rejects float", KindDecimal, 7.0, false},
		{"nil never matches", KindString, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Matches(tc.value))
		})
	}
}

func TestOperator_SupportsKind(t *testing.T) {
	assert.True(t, OpILike.SupportsKind(KindString))
	assert.False(t, OpILike.SupportsKind(KindInt))
	assert.False(t, OpIExact.SupportsKind(KindDate))
	assert.True(t, OpGt.SupportsKind(KindDecimal))
	assert.False(t, OpGt.SupportsKind(KindBool))
	assert.True(t, OpIsNull.SupportsKind(KindBool))
}

func TestParseOperator(t *testing.T) {
	op, ok := ParseOperator("ilike")
	require.True(t, ok)
	assert.Equal(t, OpILike, op)

	_, ok = ParseOperator("like")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	table := MustTable("things", "id", Field{Name: "id", Kind: KindInt})

	registry := NewRegistry()
	require.NoError(t, registry.Register(table))

	t.Run("lookup returns registered table", func(t *testing.T) {
		got, err := registry.Lookup("things")
		require.NoError(t, err)
		assert.Equal(t, "things", got.Name)
	})

	t.Run("lookup of unknown table fails fast", func(t *testing.T) {
		_, err := registry.Lookup("missing")
		require.Error(t, err)

		var notRegistered *NotRegisteredError
		require.ErrorAs(t, err, &notRegistered)
		assert.Equal(t, "missing", notRegistered.Table)
	})

	t.Run("re-registration is rejected", func(t *testing.T) {
		err := registry.Register(table)
		require.Error(t, err)
	})

	t.Run("must register panics on duplicate", func(t *testing.T) {
		assert.Panics(t, func() { registry.MustRegister(table) })
	})
}
