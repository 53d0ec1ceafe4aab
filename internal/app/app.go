// Package app wires the services of both binaries in a samber/do injector.
package app

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"

	"github.com/nfrund/sculpt/internal/config"
	"github.com/nfrund/sculpt/internal/metrics"
)

const metricsNamespace = "sculpt"

// App owns an injector and everything that has to be released on Close.
type App struct {
	cfg      config.Provider
	injector do.Injector

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closers []func()
}

func newApp(cfg config.Provider, subsystem string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		cfg:      cfg,
		injector: do.New(),
		ctx:      ctx,
		cancel:   cancel,
	}

	do.ProvideValue(a.injector, cfg)
	do.Provide(a.injector, func(do.Injector) (*prometheus.Registry, error) {
		return metrics.SetupPrometheus(), nil
	})
	do.Provide(a.injector, func(i do.Injector) (*metrics.Manager, error) {
		reg := do.MustInvoke[*prometheus.Registry](i)
		return metrics.NewManager(metricsNamespace, subsystem, reg), nil
	})
	return a
}

// Invoke resolves a service from the app's injector.
func Invoke[T any](a *App) (T, error) {
	return do.Invoke[T](a.injector)
}

func (a *App) onClose(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closers = append(a.closers, fn)
}

// Close stops background work and releases resources in reverse order.
func (a *App) Close() {
	a.cancel()

	a.mu.Lock()
	closers := a.closers
	a.closers = nil
	a.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}
