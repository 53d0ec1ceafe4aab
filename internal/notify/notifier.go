// Package notify provides the auto-dismissing success notification.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a notification stays visible after a signal.
const DefaultDuration = 2000 * time.Millisecond

// Notifier is a fire-and-forget visibility flag. Signal shows it; it hides
// itself once the duration has elapsed since the most recent Signal.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	visible  bool
	message  string
	gen      uint64
	timer    *time.Timer
}

// New creates a hidden notifier. A non-positive duration uses DefaultDuration.
func New(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{duration: duration}
}

// Signal makes the notification visible with the given message and restarts
// the hide deadline.
func (n *Notifier) Signal(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.gen++
	gen := n.gen
	n.visible = true
	n.message = message

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.duration, func() {
		n.hide(gen)
	})
}

// hide only applies to the signal that scheduled it; a newer signal wins.
func (n *Notifier) hide(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.gen != gen {
		return
	}
	n.visible = false
	n.message = ""
}

// Visible reports whether the notification is currently shown.
func (n *Notifier) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

// Message returns the current message, or "" when hidden.
func (n *Notifier) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}

// Duration returns the configured display window.
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// Stop hides the notification and cancels any pending timer.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	n.visible = false
	n.message = ""
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
