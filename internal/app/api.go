package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	"github.com/nfrund/sculpt/internal/config"
	"github.com/nfrund/sculpt/internal/database"
	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/progress"
	"github.com/nfrund/sculpt/internal/pubsub"
	"github.com/nfrund/sculpt/internal/storage"
	"github.com/nfrund/sculpt/internal/workoutapi"
)

const connectTimeout = 10 * time.Second

// NewWorkoutAPI wires the workout data service: repository, event bus,
// progress tracker and HTTP server.
func NewWorkoutAPI(cfg config.Provider) *App {
	a := newApp(cfg, "workout_api")

	do.Provide(a.injector, a.provideRepository)
	do.Provide(a.injector, a.provideBus)
	do.Provide(a.injector, a.provideTracker)
	do.Provide(a.injector, func(i do.Injector) (*workoutapi.Service, error) {
		return workoutapi.NewService(
			do.MustInvoke[domain.WorkoutRepository](i),
			do.MustInvoke[*pubsub.WatermillBridge](i),
			do.MustInvoke[*progress.Tracker](i),
			do.MustInvoke[*metrics.Manager](i),
		), nil
	})
	do.Provide(a.injector, func(i do.Injector) (*workoutapi.Server, error) {
		svc, err := do.Invoke[*workoutapi.Service](i)
		if err != nil {
			return nil, err
		}
		return workoutapi.NewServer(svc, workoutapi.Options{
			ExtraOrigins: []string{a.cfg.GetAppBaseURL()},
			Metrics:      do.MustInvoke[*metrics.Manager](i),
			Gatherer:     do.MustInvoke[*prometheus.Registry](i),
		}), nil
	})
	return a
}

// RunWorkoutAPI serves the workout data service until ctx is done.
func (a *App) RunWorkoutAPI(ctx context.Context) error {
	srv, err := do.Invoke[*workoutapi.Server](a.injector)
	if err != nil {
		return fmt.Errorf("build workout api: %w", err)
	}
	return srv.Start(ctx, a.cfg.GetWorkoutAPIAddr())
}

func (a *App) provideRepository(i do.Injector) (domain.WorkoutRepository, error) {
	ctx, cancel := context.WithTimeout(a.ctx, connectTimeout)
	defer cancel()

	store := a.cfg.GetWorkoutStore()
	slog.Info("Opening workout store", "store", store)

	switch store {
	case config.StoreMemory, "":
		return storage.NewMemoryWorkoutStore(), nil

	case config.StoreFile:
		repo, err := storage.NewOsFileWorkoutStore(a.cfg.GetWorkoutDataDir())
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.StoreSurreal:
		db, err := database.NewSurrealDB(ctx, a.cfg)
		if err != nil {
			return nil, err
		}
		a.onClose(func() {
			if err := db.Close(context.Background()); err != nil {
				slog.Warn("Failed to close SurrealDB connection", "error", err)
			}
		})
		return database.NewSurrealWorkoutStore(db), nil

	case config.StorePostgres:
		pool, err := database.NewPostgresPool(ctx, a.cfg.GetDatabaseURL())
		if err != nil {
			return nil, err
		}
		a.onClose(pool.Close)

		reg := do.MustInvoke[*prometheus.Registry](i)
		reg.MustRegister(pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": "sculpt"}))

		repo := database.NewPostgresWorkoutStore(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown workout store %q", store)
	}
}

func (a *App) provideBus(do.Injector) (*pubsub.WatermillBridge, error) {
	tracer, shutdown, err := pubsub.NewTracer(a.ctx, pubsub.TracingConfig{
		Enabled:     a.cfg.GetTracingEnabled(),
		ServiceName: a.cfg.GetTracingServiceName(),
		ZipkinURL:   a.cfg.GetTracingZipkinURL(),
		SampleRatio: a.cfg.GetTracingSampleRatio(),
	})
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}
	a.onClose(shutdown)

	bus := pubsub.NewWatermillBridge(tracer)
	a.onClose(func() {
		if err := bus.Close(); err != nil {
			slog.Warn("Failed to close event bus", "error", err)
		}
	})
	return bus, nil
}

// provideTracker seeds the totals from the store, then follows the bus for
// as long as the app lives.
func (a *App) provideTracker(i do.Injector) (*progress.Tracker, error) {
	repo, err := do.Invoke[domain.WorkoutRepository](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}

	tracker := progress.NewTracker()
	if err := tracker.Seed(a.ctx, repo); err != nil {
		return nil, err
	}
	if err := tracker.Subscribe(a.ctx, bus); err != nil {
		return nil, err
	}
	return tracker, nil
}
