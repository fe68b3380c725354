package snippet

import (
	"context"
	"strings"
	"testing"
	"time"

	theme "github.com/goliatone/go-theme"
)

func newRenderer(t *testing.T, options ...Option) *Renderer {
	t.Helper()
	renderer, err := New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func render(t *testing.T, renderer *Renderer, data Data) string {
	t.Helper()
	out, err := renderer.Render(context.Background(), data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_Defaults(t *testing.T) {
	out := render(t, newRenderer(t), Data{})

	for _, want := range []string{
		"<script>",
		"querySelectorAll('.alert')",
		", 5000)",
		"classList.add('was-validated')",
		"Are you sure you want to delete this item?",
		"function confirmDelete(message)",
		"event.preventDefault()",
		"event.stopPropagation()",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("snippet missing %q:\n%s", want, out)
		}
	}
}

func TestRender_CustomData(t *testing.T) {
	out := render(t, newRenderer(t), Data{
		DismissDelay:   2 * time.Second,
		AlertSelector:  ".flash",
		MarkerClass:    "marketplace-validated",
		ConfirmMessage: "Remove this product?",
	})

	if !strings.Contains(out, ", 2000)") {
		t.Fatalf("expected 2000ms delay in snippet:\n%s", out)
	}
	if !strings.Contains(out, "querySelectorAll('.flash')") {
		t.Fatalf("expected custom selector:\n%s", out)
	}
	if !strings.Contains(out, "classList.add('marketplace-validated')") {
		t.Fatalf("expected custom marker class:\n%s", out)
	}
	if !strings.Contains(out, "Remove this product?") {
		t.Fatalf("expected custom message:\n%s", out)
	}
}

func TestRender_SanitizesMessage(t *testing.T) {
	out := render(t, newRenderer(t), Data{
		ConfirmMessage: "Delete <script>alert(1)</script>now?",
	})

	if strings.Contains(out, "<script>alert(1)") {
		t.Fatalf("markup survived sanitization:\n%s", out)
	}
	if !strings.Contains(out, "Delete") || !strings.Contains(out, "now?") {
		t.Fatalf("message text lost during sanitization:\n%s", out)
	}
}

func TestRender_EscapesQuotes(t *testing.T) {
	out := render(t, newRenderer(t), Data{
		ConfirmMessage: "Delete 'Acme' item?",
	})
	if !strings.Contains(out, `Delete \'Acme\' item?`) {
		t.Fatalf("expected escaped quotes:\n%s", out)
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
}

func (s stubThemeSelector) Select(string, string, ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, s.err
}

func TestRender_ThemeTokensOverrideClasses(t *testing.T) {
	selector := stubThemeSelector{selection: &theme.Selection{
		Theme:   "marketplace",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name: "marketplace",
			Tokens: map[string]string{
				TokenAlertClass:     "mk-alert",
				TokenValidatedClass: "mk-validated",
			},
		},
	}}

	out := render(t, newRenderer(t, WithThemeSelector(selector, "marketplace", "dark")), Data{})
	if !strings.Contains(out, "querySelectorAll('.mk-alert')") {
		t.Fatalf("expected theme alert class:\n%s", out)
	}
	if !strings.Contains(out, "classList.add('mk-validated')") {
		t.Fatalf("expected theme validated class:\n%s", out)
	}
}

func TestRender_RequiresContext(t *testing.T) {
	renderer := newRenderer(t)
	if _, err := renderer.Render(nil, Data{}); err == nil { //nolint:staticcheck
		t.Fatal("expected error for nil context")
	}
}

func TestJSEscape(t *testing.T) {
	got := jsEscape(`a\'b"c` + "\n" + `</scr`)
	want := `a\\\'b\"c\n<\/scr`
	if got != want {
		t.Fatalf("jsEscape mismatch: want %q, got %q", want, got)
	}
}
