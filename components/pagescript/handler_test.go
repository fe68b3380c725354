package pagescript

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tejaspathak99/pagekit/pkg/snippet"
)

func TestScriptHandler_ServesRuntime(t *testing.T) {
	handler := ScriptHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/pagekit.js", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/javascript; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Fatalf("unexpected cache header %q", got)
	}
	if !strings.Contains(rec.Body.String(), "confirmDelete") {
		t.Fatal("runtime body missing confirmDelete")
	}
}

func TestScriptHandler_HeadOmitsBody(t *testing.T) {
	handler := ScriptHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/assets/pagekit.js", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body on HEAD, got %d bytes", rec.Body.Len())
	}
}

func TestScriptHandler_MethodNotAllowed(t *testing.T) {
	handler := ScriptHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/assets/pagekit.js", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); !strings.Contains(got, http.MethodGet) {
		t.Fatalf("expected Allow header, got %q", got)
	}
}

func TestHandlers_GuardRejects(t *testing.T) {
	guard := func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no session")}
	}

	for name, handler := range map[string]http.Handler{
		"script":  ScriptHandler(WithGuard(guard)),
		"snippet": SnippetHandler(WithGuard(guard)),
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}
}

func TestSnippetHandler_ServesRenderedSnippet(t *testing.T) {
	handler := SnippetHandler(WithSnippetData(snippet.Data{
		AlertSelector:  ".flash",
		ConfirmMessage: "Remove listing?",
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/pagekit-snippet.html", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "querySelectorAll('.flash')") {
		t.Fatalf("snippet missing custom selector:\n%s", body)
	}
	if !strings.Contains(body, "Remove listing?") {
		t.Fatalf("snippet missing custom message:\n%s", body)
	}
}

func TestStatusError(t *testing.T) {
	err := StatusError{Code: http.StatusTeapot, Err: errors.New("nope")}
	if err.StatusCode() != http.StatusTeapot {
		t.Fatalf("unexpected status %d", err.StatusCode())
	}
	if err.Error() != "nope" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if (StatusError{}).StatusCode() != http.StatusInternalServerError {
		t.Fatal("zero StatusError should map to 500")
	}
}
