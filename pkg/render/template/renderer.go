// Package template defines the rendering seam between snippet generation and
// the concrete template engine.
package template

import (
	"io"
)

// TemplateRenderer is the seam snippet rendering relies on, so the template
// engine can be swapped or faked without touching renderer logic.
type TemplateRenderer interface {
	// RenderTemplate renders a named template from the engine's bundle.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString renders inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
