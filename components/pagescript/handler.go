package pagescript

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	pagekit "github.com/tejaspathak99/pagekit"
	"github.com/tejaspathak99/pagekit/pkg/snippet"
)

// HTTPError lets guards pick the response status for rejected requests.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError is a plain HTTPError implementation.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// ScriptHandler serves the embedded browser runtime.
func ScriptHandler(fns ...OptionFn) http.Handler {
	return ScriptHandlerWithOptions(NewOptions(fns...))
}

// ScriptHandlerWithOptions serves the runtime from a pre-built Options value.
func ScriptHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts) {
			return
		}

		script := pagekit.RuntimeScript()
		if len(script) == 0 {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		setCacheHeader(w, opts)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(script)
	})
}

// SnippetHandler serves the rendered inline behavior snippet.
func SnippetHandler(fns ...OptionFn) http.Handler {
	return SnippetHandlerWithOptions(NewOptions(fns...))
}

// SnippetHandlerWithOptions serves the snippet from a pre-built Options value.
func SnippetHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	var once sync.Once
	renderer := opts.Renderer
	var rendererErr error

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts) {
			return
		}

		once.Do(func() {
			if renderer == nil {
				renderer, rendererErr = snippet.New()
			}
		})
		if rendererErr != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		body, err := renderer.Render(r.Context(), opts.Snippet)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		setCacheHeader(w, opts)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	})
}

func admit(w http.ResponseWriter, r *http.Request, opts Options) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if opts.Guard != nil {
		if err := opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return false
		}
	}
	return true
}

func setCacheHeader(w http.ResponseWriter, opts Options) {
	if opts.CacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", opts.CacheMaxAge))
	}
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
