// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package facade composes the per-entity repository surface: CRUD, query,
// validation and statistics sub-modules, each a thin typed view over the
// criteria engine, plus a fan-out health check across them. Composition
// replaces the interface-inheritance facades of earlier designs; every
// sub-module holds the same narrow Engine handle, so substituting a mock is
// trivial.
package facade

import (
	"context"
	"sync"

	uuid "github.com/gofrs/uuid"

	"github.com/Rafael-Arenas/plan-sub003/internal/database/criteria"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
)

// Engine is the capability surface the sub-modules need from the storage
// layer. *postgres.Store implements it.
type Engine interface {
	Table() metadata.Table

	FindMany(ctx context.Context, dest interface{}, pred criteria.Predicate, order []criteria.OrderSpec, page criteria.Pagination) error
	FindOne(ctx context.Context, dest interface{}, pred criteria.Predicate) (bool, error)
	Count(ctx context.Context, pred criteria.Predicate) (int64, error)
	Exists(ctx context.Context, fieldCriteria map[string]interface{}, excludeID *int64) (bool, error)

	GetByID(ctx context.Context, dest interface{}, id int64) error
	Insert(ctx context.Context, entity interface{}) (int64, error)
	Update(ctx context.Context, entity interface{}) error
	DeleteByID(ctx context.Context, id int64) error
}

// Facade wires one typed handle per sub-module for a single entity.
type Facade struct {
	name string

	CRUD       *CRUDModule
	Query      *QueryModule
	Validation *ValidationModule
	Stats      *StatisticsModule
}

// New builds the facade for the engine's entity table.
func New(engine Engine) *Facade {
	return &Facade{
		name:       engine.Table().Name,
		CRUD:       &CRUDModule{engine: engine},
		Query:      &QueryModule{engine: engine},
		Validation: &ValidationModule{engine: engine},
		Stats:      &StatisticsModule{engine: engine},
	}
}

// Name returns the entity table name the facade serves.
func (f *Facade) Name() string {
	return f.name
}

// Status of a health probe.
type Status string

const (
	Healthy  Status = "healthy"
	Degraded Status = "degraded"
)

// ModuleHealth is the per-module outcome of one health check.
type ModuleHealth struct {
	Status Status
	Reason string
}

// Health aggregates one health-check pass. Health is computed per call and
// never persisted between calls.
type Health struct {
	CheckID uuid.UUID
	Overall Status
	Modules map[string]ModuleHealth
}

// HealthCheck probes every sub-module with a cheap empty-predicate count,
// fanning out concurrently and collecting per-module results. Overall
// status is Degraded iff any module failed. This is plain fan-out/fan-in:
// no retries, no backoff; a failed probe is reported, not repeated.
func (f *Facade) HealthCheck(ctx context.Context) Health {
	checkID := uuid.Must(uuid.NewV4())

	probes := []struct {
		name string
		ping func(context.Context) error
	}{
		{"crud", f.CRUD.ping},
		{"query", f.Query.ping},
		{"validation", f.Validation.ping},
		{"statistics", f.Stats.ping},
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		modules = make(map[string]ModuleHealth, len(probes))
	)

	for _, probe := range probes {
		wg.Add(1)
		go func(name string, ping func(context.Context) error) {
			defer wg.Done()
			status := ModuleHealth{Status: Healthy}
			if err := ping(ctx); err != nil {
				status = ModuleHealth{Status: Degraded, Reason: err.Error()}
			}
			mu.Lock()
			modules[name] = status
			mu.Unlock()
		}(probe.name, probe.ping)
	}
	wg.Wait()

	overall := Healthy
	for _, m := range modules {
		if m.Status != Healthy {
			overall = Degraded
			break
		}
	}

	return Health{CheckID: checkID, Overall: overall, Modules: modules}
}
