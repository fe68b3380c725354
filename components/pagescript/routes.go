package pagescript

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// ScriptMountPath returns the full mount path for the runtime script under
// basePath.
func ScriptMountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.ScriptPath)
}

// SnippetMountPath returns the full mount path for the snippet under
// basePath.
func SnippetMountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.SnippetPath)
}

// RegisterRoutes registers the script and snippet handlers under basePath on
// mux, returning the registered patterns in that order.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	opts := NewOptions(fns...)
	return RegisterRoutesWithOptions(mux, basePath, opts)
}

// RegisterRoutesWithOptions registers handlers using a pre-built Options
// value. Callers are expected to pass Options produced by NewOptions so
// defaults apply.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("pagescript: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	scriptPattern := mountPath(basePath, opts.ScriptPath)
	snippetPattern := mountPath(basePath, opts.SnippetPath)
	if scriptPattern == snippetPattern {
		return nil, fmt.Errorf("pagescript: script and snippet paths collide at %q", scriptPattern)
	}

	mux.Handle(scriptPattern, ScriptHandlerWithOptions(opts))
	mux.Handle(snippetPattern, SnippetHandlerWithOptions(opts))
	return []string{scriptPattern, snippetPattern}, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
