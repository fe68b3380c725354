// Package snippet renders the inline <script> block that gives
// server-rendered pages the stock behaviors: alert auto-dismiss, the
// confirmDelete gate, and submit-time validation marking.
package snippet

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/tejaspathak99/pagekit/pkg/behaviors/dismiss"
	"github.com/tejaspathak99/pagekit/pkg/confirm"
	rendertemplate "github.com/tejaspathak99/pagekit/pkg/render/template"
	"github.com/tejaspathak99/pagekit/pkg/render/template/pongo"
)

// Option customises the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        *bluemonday.Policy
	themeSelector    theme.ThemeSelector
	themeName        string
	themeVariant     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer overrides the policy applied to the confirm message.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// WithThemeSelector resolves chrome class names from a go-theme selection's
// tokens before rendering.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Renderer produces the inline behavior snippet.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	sanitizer     *bluemonday.Policy
	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
}

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("snippet: configure template renderer: %w", err)
		}
		renderer = engine
	}
	sanitizer := cfg.sanitizer
	if sanitizer == nil {
		sanitizer = bluemonday.StrictPolicy()
	}

	return &Renderer{
		templates:     renderer,
		sanitizer:     sanitizer,
		themeSelector: cfg.themeSelector,
		themeName:     cfg.themeName,
		themeVariant:  cfg.themeVariant,
	}, nil
}

// Data carries the knobs injected into the inline script. Zero values fall
// back to the stock behavior contract.
type Data struct {
	DismissDelay   time.Duration
	AlertSelector  string
	MarkerClass    string
	ConfirmMessage string
}

// Render produces the inline <script> block.
func (r *Renderer) Render(ctx context.Context, data Data) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("snippet: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("snippet: template renderer is nil")
	}

	resolved, err := r.resolve(data)
	if err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate("templates/snippet.tmpl", map[string]any{
		"dismiss_delay_ms": int(resolved.DismissDelay / time.Millisecond),
		"alert_selector":   jsEscape(resolved.AlertSelector),
		"marker_class":     jsEscape(resolved.MarkerClass),
		"confirm_message":  jsEscape(resolved.ConfirmMessage),
	})
	if err != nil {
		return nil, fmt.Errorf("snippet: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) resolve(data Data) (Data, error) {
	if data.DismissDelay <= 0 {
		data.DismissDelay = dismiss.DefaultDelay
	}
	if strings.TrimSpace(data.AlertSelector) == "" {
		data.AlertSelector = DefaultAlertSelector
	}
	if strings.TrimSpace(data.MarkerClass) == "" {
		data.MarkerClass = DefaultValidatedClass
	}
	if strings.TrimSpace(data.ConfirmMessage) == "" {
		data.ConfirmMessage = confirm.DefaultMessage
	}

	// Message text may originate outside the application; strip any markup
	// before it lands inside the script literal. The sanitizer entity-escapes
	// the surviving text, so unescape back to plain text for jsEscape.
	data.ConfirmMessage = strings.TrimSpace(html.UnescapeString(r.sanitizer.Sanitize(data.ConfirmMessage)))

	if r.themeSelector != nil {
		selection, err := r.themeSelector.Select(r.themeName, r.themeVariant)
		if err != nil {
			return Data{}, fmt.Errorf("snippet: resolve theme: %w", err)
		}
		if selection != nil && selection.Manifest != nil {
			if token := strings.TrimSpace(selection.Manifest.Tokens[TokenAlertClass]); token != "" {
				data.AlertSelector = "." + token
			}
			if token := strings.TrimSpace(selection.Manifest.Tokens[TokenValidatedClass]); token != "" {
				data.MarkerClass = token
			}
		}
	}
	return data, nil
}

// jsEscape makes a string safe to embed inside a single-quoted JavaScript
// literal in the generated snippet.
func jsEscape(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"</", `<\/`,
	)
	return replacer.Replace(value)
}
