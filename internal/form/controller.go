// Package form implements the stateful form controller shared by the login,
// registration and workout forms.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nfrund/sculpt/internal/validation"
)

var (
	// ErrBusy is returned when the form is already submitting.
	ErrBusy = errors.New("form submission already in progress")

	// ErrInvalid is returned by Submit when validation failed. The details
	// are available from Errors.
	ErrInvalid = errors.New("form has validation errors")

	// ErrUnknownField is returned when a change targets a field the form does not have.
	ErrUnknownField = errors.New("unknown form field")
)

// Validator computes the errors for a snapshot of the field values.
type Validator func(values map[string]string) validation.FieldErrors

// Effect runs after a successful validation with a snapshot of the values.
type Effect func(ctx context.Context, values map[string]string) error

// Options tune the controller for a specific form.
type Options struct {
	// ClearOnChange drops a field's error as soon as the field is edited.
	ClearOnChange bool
	// ResetOnSuccess empties every field once the effect succeeds.
	ResetOnSuccess bool
}

// Controller owns the field values, the last validation result and the busy
// flag of one form instance. It is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	fields   []string
	values   map[string]string
	errors   validation.FieldErrors
	busy     bool
	validate Validator
	effect   Effect
	opts     Options
}

// New creates a controller for the given fields, all starting empty.
func New(fields []string, validate Validator, effect Effect, opts Options) *Controller {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f] = ""
	}
	return &Controller{
		fields:   fields,
		values:   values,
		errors:   validation.FieldErrors{},
		validate: validate,
		effect:   effect,
		opts:     opts,
	}
}

// Fields returns the field names in declaration order.
func (c *Controller) Fields() []string {
	out := make([]string, len(c.fields))
	copy(out, c.fields)
	return out
}

// Change updates exactly one field. Inputs are disabled while busy, so a
// change during a submission is rejected with ErrBusy.
func (c *Controller) Change(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	if _, ok := c.values[field]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	c.values[field] = value
	if c.opts.ClearOnChange {
		delete(c.errors, field)
	}
	return nil
}

// Load applies a full set of values, one Change per known field. Unknown keys
// are ignored and fields missing from values keep their current value.
func (c *Controller) Load(values map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	for _, f := range c.fields {
		v, ok := values[f]
		if !ok {
			continue
		}
		c.values[f] = v
		if c.opts.ClearOnChange {
			delete(c.errors, f)
		}
	}
	return nil
}

// Submit validates the current values and, when they are valid, runs the
// effect with the busy flag held. The busy flag is always released once the
// effect returns.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}

	snapshot := c.snapshot()
	errs := c.validate(snapshot)
	if errs == nil {
		errs = validation.FieldErrors{}
	}
	c.errors = errs
	if !errs.Valid() {
		c.mu.Unlock()
		return ErrInvalid
	}
	if c.effect == nil {
		if c.opts.ResetOnSuccess {
			c.reset()
		}
		c.mu.Unlock()
		return nil
	}
	c.busy = true
	c.mu.Unlock()

	err := c.effect(ctx, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err == nil && c.opts.ResetOnSuccess {
		c.reset()
	}
	return err
}

// Values returns a copy of the current field values.
func (c *Controller) Values() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Value returns the current value of a single field.
func (c *Controller) Value(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[field]
}

// Errors returns a copy of the last validation result.
func (c *Controller) Errors() validation.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

// Busy reports whether a submission effect is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Reset empties all values and errors.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.errors = validation.FieldErrors{}
}

func (c *Controller) reset() {
	for _, f := range c.fields {
		c.values[f] = ""
	}
}

func (c *Controller) snapshot() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
