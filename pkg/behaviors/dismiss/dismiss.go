// Package dismiss schedules automatic closing of notification alerts.
package dismiss

import (
	"context"
	"errors"
	"time"

	"github.com/tejaspathak99/pagekit/pkg/page"
	"github.com/tejaspathak99/pagekit/pkg/schedule"
)

// DefaultDelay is how long an alert stays on the page before it is closed.
const DefaultDelay = 5000 * time.Millisecond

// Option customises the behavior before attachment.
type Option func(*Behavior)

// WithDelay overrides the dismissal delay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(b *Behavior) {
		if d > 0 {
			b.delay = d
		}
	}
}

// WithScheduler injects the timer implementation.
func WithScheduler(scheduler schedule.Scheduler) Option {
	return func(b *Behavior) {
		if scheduler != nil {
			b.scheduler = scheduler
		}
	}
}

// Behavior closes every alert present at attach time after a fixed delay.
// Timers are one-shot and cannot be aborted; each alert expires on its own,
// independent of the others.
type Behavior struct {
	delay     time.Duration
	scheduler schedule.Scheduler
}

// New constructs the behavior with wall-clock timers and the default delay.
func New(options ...Option) *Behavior {
	b := &Behavior{
		delay:     DefaultDelay,
		scheduler: schedule.Timers{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Name reports the behavior identifier.
func (b *Behavior) Name() string {
	return "alert-dismiss"
}

// Attach schedules one close per alert currently on the document. A page
// without alerts schedules nothing. No registrations are returned: dismissal
// exposes no cancellation.
func (b *Behavior) Attach(ctx context.Context, doc page.Document) ([]page.Registration, error) {
	if ctx == nil {
		return nil, errors.New("dismiss: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("dismiss: document is required")
	}

	for _, alert := range doc.Alerts() {
		if alert == nil {
			continue
		}
		// Close is idempotent per the page.Alert contract, so a user
		// dismissing the alert first degrades to a no-op here.
		b.scheduler.AfterFunc(b.delay, alert.Close)
	}
	return nil, nil
}
