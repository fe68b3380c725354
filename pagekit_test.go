package pagekit

import (
	"context"
	"testing"
	"time"

	"github.com/tejaspathak99/pagekit/pkg/config"
	"github.com/tejaspathak99/pagekit/pkg/confirm"
	"github.com/tejaspathak99/pagekit/pkg/page"
	"github.com/tejaspathak99/pagekit/pkg/schedule"
	"github.com/tejaspathak99/pagekit/pkg/testsupport"
)

func TestEnhance_EndToEnd(t *testing.T) {
	clock := schedule.NewManual()
	alert := &testsupport.FakeAlert{}
	form := testsupport.NewFakeForm(false)
	doc := testsupport.NewFakeDocument([]page.Alert{alert}, []page.Form{form})

	session, err := Enhance(context.Background(), doc,
		WithScheduler(clock),
		WithConfirmProvider(confirm.NewScripted()),
	)
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	defer session.Close()

	clock.Advance(5 * time.Second)
	if !alert.Closed() {
		t.Fatal("expected alert dismissed after 5s")
	}

	event := form.Submit()
	if !event.DefaultPrevented() || !form.HasClass("was-validated") {
		t.Fatal("expected validation behavior active")
	}
}

func TestConfirmDelete(t *testing.T) {
	provider := confirm.NewScripted(true)
	if !ConfirmDelete(context.Background(), provider, "") {
		t.Fatal("expected accept")
	}
	if got := provider.Prompts()[0].Message; got != DefaultConfirmMessage {
		t.Fatalf("expected default message, got %q", got)
	}
	if ConfirmDelete(context.Background(), nil, "") {
		t.Fatal("expected nil provider to decline")
	}
}

func TestOptionsFromSettings(t *testing.T) {
	settings := config.Default()
	settings.Dismiss.Delay = config.Duration(time.Second)
	settings.Validate.MarkerClass = "checked"

	clock := schedule.NewManual()
	alert := &testsupport.FakeAlert{}
	form := testsupport.NewFakeForm(true)
	doc := testsupport.NewFakeDocument([]page.Alert{alert}, []page.Form{form})

	options := append(OptionsFromSettings(settings),
		WithScheduler(clock),
		WithConfirmProvider(confirm.NewScripted()),
	)
	if _, err := Enhance(context.Background(), doc, options...); err != nil {
		t.Fatalf("enhance: %v", err)
	}

	clock.Advance(time.Second)
	if !alert.Closed() {
		t.Fatal("expected settings delay honoured")
	}
	form.Submit()
	if !form.HasClass("checked") {
		t.Fatal("expected settings marker class honoured")
	}
}
