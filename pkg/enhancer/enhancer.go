// Package enhancer coordinates page behavior attachment. It is the explicit
// initialization routine replacing the browser's implicit page-load hook:
// callers hand it a document and get back a disposable session.
package enhancer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tejaspathak99/pagekit/pkg/behaviors"
	"github.com/tejaspathak99/pagekit/pkg/behaviors/dismiss"
	"github.com/tejaspathak99/pagekit/pkg/behaviors/validate"
	"github.com/tejaspathak99/pagekit/pkg/confirm"
	"github.com/tejaspathak99/pagekit/pkg/page"
	"github.com/tejaspathak99/pagekit/pkg/schedule"
)

// Option customises the enhancer configuration.
type Option func(*Enhancer)

// WithScheduler injects the timer implementation used by alert dismissal.
func WithScheduler(scheduler schedule.Scheduler) Option {
	return func(e *Enhancer) {
		if scheduler != nil {
			e.scheduler = scheduler
		}
	}
}

// WithConfirmProvider injects the user-interaction service behind Confirm.
func WithConfirmProvider(provider confirm.Provider) Option {
	return func(e *Enhancer) {
		if provider != nil {
			e.provider = provider
		}
	}
}

// WithRegistry replaces the behavior registry. The built-in behaviors are
// only registered when no registry is supplied.
func WithRegistry(registry *behaviors.Registry) Option {
	return func(e *Enhancer) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// WithDismissDelay overrides the alert auto-dismiss delay.
func WithDismissDelay(d time.Duration) Option {
	return func(e *Enhancer) {
		if d > 0 {
			e.dismissDelay = d
		}
	}
}

// WithMarkerClass overrides the form validation marker class.
func WithMarkerClass(name string) Option {
	return func(e *Enhancer) {
		if name != "" {
			e.markerClass = name
		}
	}
}

// WithBehavior registers an additional behavior alongside the built-ins.
func WithBehavior(name string, priority int, behavior behaviors.Behavior) Option {
	return func(e *Enhancer) {
		e.extra = append(e.extra, extraBehavior{name: name, priority: priority, behavior: behavior})
	}
}

type extraBehavior struct {
	name     string
	priority int
	behavior behaviors.Behavior
}

// Enhancer attaches the configured behaviors to documents and exposes the
// confirmation gate. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Enhancer struct {
	scheduler    schedule.Scheduler
	provider     confirm.Provider
	registry     *behaviors.Registry
	dismissDelay time.Duration
	markerClass  string
	extra        []extraBehavior
	gate         *confirm.Gate
}

// Built-in attach priorities. Behaviors are independent; the order only
// keeps attachment deterministic.
const (
	priorityDismiss  = 90
	priorityValidate = 80
)

// New constructs an Enhancer applying any provided options.
func New(options ...Option) *Enhancer {
	e := &Enhancer{
		dismissDelay: dismiss.DefaultDelay,
		markerClass:  validate.DefaultMarkerClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

func (e *Enhancer) applyDefaults() {
	if e.scheduler == nil {
		e.scheduler = schedule.Timers{}
	}
	if e.provider == nil {
		e.provider = confirm.Terminal{}
	}
	if e.registry == nil {
		e.registry = behaviors.NewRegistry()
		e.registry.Register("alert-dismiss", priorityDismiss, dismiss.New(
			dismiss.WithScheduler(e.scheduler),
			dismiss.WithDelay(e.dismissDelay),
		))
		e.registry.Register("form-validation", priorityValidate, validate.New(
			validate.WithMarkerClass(e.markerClass),
		))
	}
	for _, entry := range e.extra {
		e.registry.Register(entry.name, entry.priority, entry.behavior)
	}
	e.extra = nil

	gate, err := confirm.NewGate(e.provider)
	if err == nil {
		e.gate = gate
	}
}

// Attach runs every registered behavior against the document and returns a
// session holding the registrations.
func (e *Enhancer) Attach(ctx context.Context, doc page.Document) (*Session, error) {
	if ctx == nil {
		return nil, errors.New("enhancer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("enhancer: document is required")
	}

	registrations, err := e.registry.Attach(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("enhancer: attach behaviors: %w", err)
	}
	return &Session{registrations: registrations}, nil
}

// Confirm presents the destructive-action prompt and reports the decision.
// An empty message uses the default prompt text.
func (e *Enhancer) Confirm(ctx context.Context, message string) bool {
	if e == nil || e.gate == nil {
		return false
	}
	return e.gate.Confirm(ctx, message)
}

// Behaviors reports the registered behavior names in attach order.
func (e *Enhancer) Behaviors() []string {
	if e == nil || e.registry == nil {
		return nil
	}
	return e.registry.Names()
}

// Session owns the registrations produced by a single Attach call.
type Session struct {
	mu            sync.Mutex
	registrations []page.Registration
	closed        bool
}

// Registrations reports how many handler tokens the session holds.
func (s *Session) Registrations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.registrations)
}

// Close releases every registration. Closing twice is a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	registrations := s.registrations
	s.registrations = nil
	s.mu.Unlock()

	for _, reg := range registrations {
		if reg != nil {
			reg.Close()
		}
	}
}
