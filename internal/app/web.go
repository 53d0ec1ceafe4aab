package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	"github.com/nfrund/sculpt/internal/config"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/server"
	"github.com/nfrund/sculpt/internal/workout"
	"github.com/nfrund/sculpt/internal/workspace"
)

// NewWeb wires the web application: workout client, session workspaces and
// the echo server with its routes.
func NewWeb(cfg config.Provider) *App {
	a := newApp(cfg, "web")

	do.Provide(a.injector, func(do.Injector) (*workout.Client, error) {
		return workout.NewClient(a.cfg.GetWorkoutAPIURL(), nil), nil
	})
	do.Provide(a.injector, a.provideWorkspaces)
	do.Provide(a.injector, func(i do.Injector) (*server.Server, error) {
		srv := server.New(server.Dependencies{
			Cfg:        a.cfg,
			Summary:    do.MustInvoke[*workout.Client](i),
			Workspaces: do.MustInvoke[*workspace.Registry](i),
			Metrics:    do.MustInvoke[*metrics.Manager](i),
			Gatherer:   do.MustInvoke[*prometheus.Registry](i),
		})
		srv.RegisterRoutes()
		return srv, nil
	})
	return a
}

// RunWeb serves the web application until ctx is done.
func (a *App) RunWeb(ctx context.Context) error {
	srv, err := do.Invoke[*server.Server](a.injector)
	if err != nil {
		return fmt.Errorf("build web server: %w", err)
	}
	return srv.Start(ctx, a.cfg.GetAppAddr())
}

// provideWorkspaces builds the session registry and starts its idle sweep.
func (a *App) provideWorkspaces(i do.Injector) (*workspace.Registry, error) {
	client := do.MustInvoke[*workout.Client](i)
	reg := workspace.NewRegistry(
		workspace.WorkoutFactory(client, a.cfg.GetNotificationDuration()),
		a.cfg.GetSessionIdleTTL(),
		do.MustInvoke[*metrics.Manager](i),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		reg.Run(a.ctx, 0)
	}()
	a.onClose(func() { <-done })
	return reg, nil
}
