// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package facade

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

// stubEngine counts probe calls and fails Count with countErr when set.
type stubEngine struct {
	table      metadata.Table
	countCalls int64
	countErr   error

	existsResult bool
}

func (s *stubEngine) Table() metadata.Table { return s.table }

func (s *stubEngine) FindMany(ctx context.Context, dest interface{}, pred criteria.Predicate, order []criteria.OrderSpec, page criteria.Pagination) error {
	return nil
}

func (s *stubEngine) FindOne(ctx context.Context, dest interface{}, pred criteria.Predicate) (bool, error) {
	return false, nil
}

func (s *stubEngine) Count(ctx context.Context, pred criteria.Predicate) (int64, error) {
	atomic.AddInt64(&s.countCalls, 1)
	if s.countErr != nil {
		return 0, s.countErr
	}
	return 3, nil
}

func (s *stubEngine) Exists(ctx context.Context, fieldCriteria map[string]interface{}, excludeID *int64) (bool, error) {
	return s.existsResult, nil
}

func (s *stubEngine) GetByID(ctx context.Context, dest interface{}, id int64) error { return nil }
func (s *stubEngine) Insert(ctx context.Context, entity interface{}) (int64, error) { return 1, nil }
func (s *stubEngine) Update(ctx context.Context, entity interface{}) error          { return nil }
func (s *stubEngine) DeleteByID(ctx context.Context, id int64) error                { return nil }

func newStubEngine(t *testing.T) *stubEngine {
	t.Helper()
	table, err := metadata.NewTable("widgets", "id",
		metadata.Field{Name: "id", Kind: metadata.KindInt, Operators: metadata.ComparableOperators()},
		metadata.Field{Name: "code", Kind: metadata.KindString, Operators: metadata.TextOperators()},
	)
	require.NoError(t, err)
	return &stubEngine{table: table}
}

func TestHealthCheck_AllHealthy(t *testing.T) {
	engine := newStubEngine(t)
	f := New(engine)

	health := f.HealthCheck(context.Background())

	assert.Equal(t, Healthy, health.Overall)
	assert.Len(t, health.Modules, 4)
	for name, module := range health.Modules {
		assert.Equal(t, Healthy, module.Status, "module %s", name)
		assert.Empty(t, module.Reason)
	}
	assert.NotEqual(t, uuid.Nil, health.CheckID)

	// one probe per module, no retries
	assert.Equal(t, int64(4), atomic.LoadInt64(&engine.countCalls))
}

func TestHealthCheck_DegradedCarriesReason(t *testing.T) {
	engine := newStubEngine(t)
	engine.countErr = errors.New("connection refused")
	f := New(engine)

	health := f.HealthCheck(context.Background())

	assert.Equal(t, Degraded, health.Overall)
	for name, module := range health.Modules {
		assert.Equal(t, Degraded, module.Status, "module %s", name)
		assert.Equal(t, "connection refused", module.Reason, "module %s", name)
	}

	// a failed probe is reported, never repeated
	assert.Equal(t, int64(4), atomic.LoadInt64(&engine.countCalls))
}

func TestHealthCheck_FreshCheckIDPerCall(t *testing.T) {
	f := New(newStubEngine(t))

	first := f.HealthCheck(context.Background())
	second := f.HealthCheck(context.Background())
	assert.NotEqual(t, first.CheckID, second.CheckID)
}

func TestValidationModule(t *testing.T) {
	engine := newStubEngine(t)
	f := New(engine)

	t.Run("available when nothing conflicts", func(t *testing.T) {
		engine.existsResult = false
		ok, err := f.Validation.Available(context.Background(), map[string]interface{}{"code": "A"}, nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, f.Validation.EnsureUnique(context.Background(), map[string]interface{}{"code": "A"}, nil))
	})

	t.Run("conflict yields ConflictError", func(t *testing.T) {
		engine.existsResult = true
		err := f.Validation.EnsureUnique(context.Background(), map[string]interface{}{"code": "A", "name": "x"}, nil)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "widgets", conflict.Table)
		assert.Equal(t, "widgets with code=A, name=x already exists", conflict.Error())
	})
}

func TestQueryModule_RejectsBadSpecBeforeEngine(t *testing.T) {
	engine := newStubEngine(t)
	f := New(engine)

	before := atomic.LoadInt64(&engine.countCalls)
	_, err := f.Query.CountByCriteria(context.Background(), map[string]interface{}{"nickname": "x"})

	var unknown *criteria.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, before, atomic.LoadInt64(&engine.countCalls))
}

func TestStatisticsModule_Breakdown(t *testing.T) {
	f := New(newStubEngine(t))

	counts, err := f.Stats.Breakdown(context.Background(), "code", []interface{}{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 3, "B": 3}, counts)
}

func TestFacade_Name(t *testing.T) {
	f := New(newStubEngine(t))
	assert.Equal(t, "widgets", f.Name())
}
