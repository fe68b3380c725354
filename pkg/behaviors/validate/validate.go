// Package validate marks forms on submit and blocks invalid submissions.
package validate

import (
	"context"
	"errors"
	"strings"

	"github.com/tejaspathak99/pagekit/pkg/page"
)

// DefaultMarkerClass is the class external stylesheets key off to highlight
// invalid fields after a submit attempt.
const DefaultMarkerClass = "was-validated"

// Option customises the behavior before attachment.
type Option func(*Behavior)

// WithMarkerClass overrides the marker class. Blank values are ignored.
func WithMarkerClass(name string) Option {
	return func(b *Behavior) {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" {
			b.marker = trimmed
		}
	}
}

// Behavior attaches a submit-time validity check to every form present at
// attach time. The handler persists for the lifetime of the page unless its
// registration is closed.
type Behavior struct {
	marker string
}

// New constructs the behavior with the default marker class.
func New(options ...Option) *Behavior {
	b := &Behavior{marker: DefaultMarkerClass}
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
	return "form-validation"
}

// Attach registers one submit handler per form and returns one registration
// token per form. On every submit attempt the handler blocks submission when
// the form reports invalid, and marks the form regardless of the outcome.
func (b *Behavior) Attach(ctx context.Context, doc page.Document) ([]page.Registration, error) {
	if ctx == nil {
		return nil, errors.New("validate: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("validate: document is required")
	}

	var registrations []page.Registration
	for _, form := range doc.Forms() {
		if form == nil {
			continue
		}
		target := form
		reg := target.OnSubmit(func(event page.SubmitEvent) {
			if !target.CheckValidity() {
				if event != nil {
					event.PreventDefault()
					event.StopPropagation()
				}
			}
			target.AddClass(b.marker)
		})
		if reg != nil {
			registrations = append(registrations, reg)
		}
	}
	return registrations, nil
}
