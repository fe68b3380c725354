// Package confirm gates destructive actions behind a yes/no prompt. The
// prompt itself is an injectable Provider so callers and tests can decide how
// the question reaches the user.
package confirm

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// DefaultMessage is shown when callers do not supply their own prompt text.
const DefaultMessage = "Are you sure you want to delete this item?"

// ErrScriptExhausted reports that a Scripted provider ran out of answers.
var ErrScriptExhausted = errors.New("confirm: scripted answers exhausted")

// Prompt describes a single yes/no question.
type Prompt struct {
	Message string
	Default bool
	Help    string
}

// Provider presents a Prompt to the user and reports the decision. The call
// blocks the caller until the user responds.
type Provider interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, prompt Prompt) (bool, error)

func (f ProviderFunc) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	return f(ctx, prompt)
}

// Gate wraps a Provider with the destructive-action contract: an empty
// message falls back to DefaultMessage, and a provider failure counts as a
// decline so callers always get a plain boolean.
type Gate struct {
	provider Provider
}

// NewGate constructs a Gate over the supplied provider.
func NewGate(provider Provider) (*Gate, error) {
	if provider == nil {
		return nil, errors.New("confirm: provider is required")
	}
	return &Gate{provider: provider}, nil
}

// Confirm asks the user and returns true only on an explicit accept.
func (g *Gate) Confirm(ctx context.Context, message string) bool {
	if g == nil || g.provider == nil {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = DefaultMessage
	}
	ok, err := g.provider.Confirm(ctx, Prompt{Message: msg})
	if err != nil {
		return false
	}
	return ok
}

// Scripted replays a fixed sequence of answers and records every prompt it
// received, for tests and non-interactive runs.
type Scripted struct {
	mu      sync.Mutex
	answers []bool
	prompts []Prompt
}

// NewScripted builds a provider that answers with the supplied sequence.
func NewScripted(answers ...bool) *Scripted {
	return &Scripted{answers: append([]bool(nil), answers...)}
}

func (s *Scripted) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return false, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return false, ErrScriptExhausted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Prompts returns a copy of every prompt the provider has seen.
func (s *Scripted) Prompts() []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Prompt(nil), s.prompts...)
}
