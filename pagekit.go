// Package pagekit gives server-rendered marketplace pages their client-side
// behaviors: alert auto-dismiss, delete confirmation, and submit-time form
// validation styling. The behaviors exist twice, deliberately in lockstep: as
// a deterministic Go engine over abstract page handles, and as the embedded
// browser runtime this package serves to real pages.
package pagekit

import (
	"context"

	"github.com/tejaspathak99/pagekit/pkg/config"
	"github.com/tejaspathak99/pagekit/pkg/confirm"
	"github.com/tejaspathak99/pagekit/pkg/enhancer"
	"github.com/tejaspathak99/pagekit/pkg/page"
)

// DefaultConfirmMessage is the prompt text used when no message is supplied.
const DefaultConfirmMessage = confirm.DefaultMessage

// Option configures an Enhancer; alias exported via the root package for
// convenience.
type Option = enhancer.Option

// Session owns the registrations produced by a single Enhance call.
type Session = enhancer.Session

// New exposes the enhancer constructor from the top-level module.
func New(options ...Option) *enhancer.Enhancer {
	return enhancer.New(options...)
}

// Enhance attaches the configured behaviors to a document and returns the
// session holding the registrations. It is the simplest entry point for
// callers that just want the stock behaviors.
func Enhance(ctx context.Context, doc page.Document, options ...Option) (*Session, error) {
	return enhancer.New(options...).Attach(ctx, doc)
}

// ConfirmDelete gates a destructive action behind the supplied provider. An
// empty message uses DefaultConfirmMessage; a provider failure counts as a
// decline.
func ConfirmDelete(ctx context.Context, provider confirm.Provider, message string) bool {
	gate, err := confirm.NewGate(provider)
	if err != nil {
		return false
	}
	return gate.Confirm(ctx, message)
}

// OptionsFromSettings maps a loaded settings file onto enhancer options.
func OptionsFromSettings(settings config.Settings) []Option {
	return []Option{
		enhancer.WithDismissDelay(settings.Dismiss.Delay.Std()),
		enhancer.WithMarkerClass(settings.Validate.MarkerClass),
	}
}

// WithScheduler re-exports the enhancer option for callers configuring the
// timer implementation through the root package.
var WithScheduler = enhancer.WithScheduler

// WithConfirmProvider re-exports the enhancer option for injecting the
// confirmation provider.
var WithConfirmProvider = enhancer.WithConfirmProvider
