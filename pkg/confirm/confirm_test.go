package confirm

import (
	"context"
	"errors"
	"testing"
)

func TestGate_DefaultMessage(t *testing.T) {
	provider := NewScripted(true)
	gate, err := NewGate(provider)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}

	if !gate.Confirm(context.Background(), "") {
		t.Fatal("expected accept")
	}

	prompts := provider.Prompts()
	if len(prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(prompts))
	}
	if prompts[0].Message != "Are you sure you want to delete this item?" {
		t.Fatalf("unexpected default message: %q", prompts[0].Message)
	}
}

func TestGate_CustomMessagePassesThrough(t *testing.T) {
	provider := NewScripted(false)
	gate, err := NewGate(provider)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}

	if gate.Confirm(context.Background(), "Remove supplier account?") {
		t.Fatal("expected decline")
	}
	if got := provider.Prompts()[0].Message; got != "Remove supplier account?" {
		t.Fatalf("message not passed through: %q", got)
	}
}

func TestGate_WhitespaceMessageFallsBack(t *testing.T) {
	provider := NewScripted(true)
	gate, _ := NewGate(provider)

	gate.Confirm(context.Background(), "   ")
	if got := provider.Prompts()[0].Message; got != DefaultMessage {
		t.Fatalf("expected fallback to default message, got %q", got)
	}
}

func TestGate_ProviderErrorCountsAsDecline(t *testing.T) {
	failing := ProviderFunc(func(context.Context, Prompt) (bool, error) {
		return true, errors.New("tty closed")
	})
	gate, err := NewGate(failing)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	if gate.Confirm(context.Background(), "") {
		t.Fatal("expected provider failure to decline")
	}
}

func TestNewGate_RequiresProvider(t *testing.T) {
	if _, err := NewGate(nil); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestScripted_SequenceAndExhaustion(t *testing.T) {
	provider := NewScripted(true, false)

	first, err := provider.Confirm(context.Background(), Prompt{Message: "one"})
	if err != nil || !first {
		t.Fatalf("expected accept, got %v %v", first, err)
	}
	second, err := provider.Confirm(context.Background(), Prompt{Message: "two"})
	if err != nil || second {
		t.Fatalf("expected decline, got %v %v", second, err)
	}
	if _, err := provider.Confirm(context.Background(), Prompt{Message: "three"}); !errors.Is(err, ErrScriptExhausted) {
		t.Fatalf("expected exhaustion error, got %v", err)
	}
	if got := len(provider.Prompts()); got != 3 {
		t.Fatalf("expected three recorded prompts, got %d", got)
	}
}

func TestScripted_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := NewScripted(true)
	if _, err := provider.Confirm(ctx, Prompt{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
