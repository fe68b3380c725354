package pagescript

import (
	"net/http"
	"strings"

	"github.com/tejaspathak99/pagekit/pkg/snippet"
)

// GuardFunc can reject a request before any asset is served.
type GuardFunc func(r *http.Request) error

// Options configure the component routes and the snippet payload.
type Options struct {
	ScriptPath  string
	SnippetPath string
	CacheMaxAge int
	Guard       GuardFunc

	Snippet  snippet.Data
	Renderer *snippet.Renderer
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the stock component configuration.
func DefaultOptions() Options {
	return Options{
		ScriptPath:  "/assets/pagekit.js",
		SnippetPath: "/assets/pagekit-snippet.html",
		CacheMaxAge: 3600,
	}
}

// NewOptions builds Options from defaults plus any overrides, applying
// clamps so handlers always see usable values.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if strings.TrimSpace(opts.ScriptPath) == "" {
		opts.ScriptPath = "/assets/pagekit.js"
	}
	if strings.TrimSpace(opts.SnippetPath) == "" {
		opts.SnippetPath = "/assets/pagekit-snippet.html"
	}
	if opts.CacheMaxAge < 0 {
		opts.CacheMaxAge = 0
	}
	return opts
}

// WithScriptPath overrides where the runtime script is mounted.
func WithScriptPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ScriptPath = path
	}
}

// WithSnippetPath overrides where the inline snippet is mounted.
func WithSnippetPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SnippetPath = path
	}
}

// WithCacheMaxAge sets the Cache-Control max-age in seconds.
func WithCacheMaxAge(seconds int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CacheMaxAge = seconds
	}
}

// WithGuard installs a request guard on both routes.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithSnippetData sets the values injected into the rendered snippet.
func WithSnippetData(data snippet.Data) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Snippet = data
	}
}

// WithRenderer injects a pre-built snippet renderer.
func WithRenderer(renderer *snippet.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}
