// Package workspace keeps the per-browser-session workout form state.
package workspace

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/sculpt/internal/form"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/notify"
	"github.com/nfrund/sculpt/internal/workout"
)

// DefaultIdleTTL is how long an untouched workspace is kept.
const DefaultIdleTTL = 30 * time.Minute

// Workspace is one session's workout form and its success notification.
type Workspace struct {
	Form     *form.Controller
	Notifier *notify.Notifier

	lastSeen time.Time
}

// Factory builds the state for a new session.
type Factory func() *Workspace

// WorkoutFactory builds workspaces whose form posts through client and whose
// notification stays up for notifyFor.
func WorkoutFactory(client *workout.Client, notifyFor time.Duration) Factory {
	return func() *Workspace {
		return &Workspace{
			Form:     workout.NewForm(workout.SubmitEffect(client)),
			Notifier: notify.New(notifyFor),
		}
	}
}

// Registry maps session ids to workspaces. It is safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
	factory    Factory
	idleTTL    time.Duration
	now        func() time.Time
	metrics    *metrics.Manager
}

// NewRegistry creates an empty registry. A non-positive idleTTL uses
// DefaultIdleTTL; m may be nil.
func NewRegistry(factory Factory, idleTTL time.Duration, m *metrics.Manager) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Registry{
		workspaces: make(map[string]*Workspace),
		factory:    factory,
		idleTTL:    idleTTL,
		now:        time.Now,
		metrics:    m,
	}
}

// Get returns the workspace for id, creating it on first use, and marks it as seen.
func (r *Registry) Get(id string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[id]
	if !ok {
		ws = r.factory()
		r.workspaces[id] = ws
		r.setGauge()
	}
	ws.lastSeen = r.now()
	return ws
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Sweep drops workspaces idle for longer than the TTL. Workspaces with a
// submission in flight are kept.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTTL)
	removed := 0
	for id, ws := range r.workspaces {
		if ws.lastSeen.After(cutoff) || ws.Form.Busy() {
			continue
		}
		ws.Notifier.Stop()
		delete(r.workspaces, id)
		removed++
	}
	if removed > 0 {
		r.setGauge()
	}
	return removed
}

// Run sweeps every interval until ctx is done, then stops every notifier.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.idleTTL / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				slog.Debug("Evicted idle workspaces", "count", n)
			}
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ws := range r.workspaces {
		ws.Notifier.Stop()
		delete(r.workspaces, id)
	}
	r.setGauge()
}

func (r *Registry) setGauge() {
	if r.metrics != nil {
		r.metrics.GaugeActiveWorkspaces.Set(float64(len(r.workspaces)))
	}
}
