// Copyright (c) 2025 Rafael Arenas
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command healthcheck connects to the planning database, builds every entity
// repository, fans out their health checks and reports per-module status.
// Exits non-zero when any facade is degraded.
package main

import (
	"context"
	"os"
	"time"

	uuid "github.com/gofrs/uuid"

	clientsrepo "github.com/Rafael-Arenas/plan-sub003/clients/repository"
	employeesrepo "github.com/Rafael-Arenas/plan-sub003/employees/repository"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/facade"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/metadata"
	"github.com/Rafael-Arenas/plan-sub003/internal/database/postgres"
	"github.com/Rafael-Arenas/plan-sub003/internal/pkg/log"
	"github.com/Rafael-Arenas/plan-sub003/internal/platform/config"
	projectsrepo "github.com/Rafael-Arenas/plan-sub003/projects/repository"
	schedulesrepo "github.com/Rafael-Arenas/plan-sub003/schedules/repository"
	statuscodesrepo "github.com/Rafael-Arenas/plan-sub003/statuscodes/repository"
	vacationsrepo "github.com/Rafael-Arenas/plan-sub003/vacations/repository"
	workloadsrepo "github.com/Rafael-Arenas/plan-sub003/workloads/repository"
)

// newRegistry registers every entity table. MustRegister panics on a
// duplicate name, so a wiring mistake fails at startup.
func newRegistry() *metadata.Registry {
	registry := metadata.NewRegistry()
	registry.MustRegister(clientsrepo.Table)
	registry.MustRegister(employeesrepo.Table)
	registry.MustRegister(projectsrepo.Table)
	registry.MustRegister(vacationsrepo.Table)
	registry.MustRegister(schedulesrepo.Table)
	registry.MustRegister(statuscodesrepo.Table)
	registry.MustRegister(workloadsrepo.Table)
	return registry
}

type healthChecker interface {
	HealthCheck(ctx context.Context) facade.Health
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	requestID := uuid.Must(uuid.NewV4())
	ctx = log.WithRequestID(ctx, requestID.String())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("failed to load configuration: %s", err.Error())
		os.Exit(1)
	}

	client, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.ErrorWithContext(ctx, "failed to connect to postgres: %s", err.Error())
		os.Exit(1)
	}
	defer client.Close()

	registry := newRegistry()

	repos := map[string]healthChecker{}
	build := func(name string, repo healthChecker, err error) {
		if err != nil {
			log.ErrorWithContext(ctx, "failed to build %s repository: %s", name, err.Error())
			os.Exit(1)
		}
		repos[name] = repo
	}

	clientsRepo, err := clientsrepo.NewPostgresClientRepository(client, registry)
	build("clients", clientsRepo, err)
	employeesRepo, err := employeesrepo.NewPostgresEmployeeRepository(client, registry)
	build("employees", employeesRepo, err)
	projectsRepo, err := projectsrepo.NewPostgresProjectRepository(client, registry)
	build("projects", projectsRepo, err)
	vacationsRepo, err := vacationsrepo.NewPostgresVacationRepository(client, registry)
	build("vacations", vacationsRepo, err)
	schedulesRepo, err := schedulesrepo.NewPostgresScheduleRepository(client, registry)
	build("schedules", schedulesRepo, err)
	statusCodesRepo, err := statuscodesrepo.NewPostgresStatusCodeRepository(client, registry)
	build("status_codes", statusCodesRepo, err)
	workloadsRepo, err := workloadsrepo.NewPostgresWorkloadRepository(client, registry)
	build("workloads", workloadsRepo, err)

	degraded := false
	for name, repo := range repos {
		health := repo.HealthCheck(ctx)
		if health.Overall == facade.Healthy {
			log.InfoWithContext(ctx, "%s: %s (check %s)", name, health.Overall, health.CheckID)
			continue
		}

		degraded = true
		for module, status := range health.Modules {
			if status.Status != facade.Healthy {
				log.WarnWithContext(ctx, "%s/%s: %s (%s)", name, module, status.Status, status.Reason)
			}
		}
	}

	if degraded {
		log.ErrorWithContext(ctx, "health check failed: one or more modules degraded")
		os.Exit(1)
	}
	log.InfoWithContext(ctx, "all facades healthy")
}
