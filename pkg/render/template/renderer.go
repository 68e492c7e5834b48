package template

import (
	"io"
)

// TemplateRenderer is the engine contract elements rely on. Render accepts
// either a template name or inline template content; the other methods are
// explicit about which one they take. Every render method returns the output
// and also copies it into any supplied writers.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// Flusher is implemented by engines that cache parsed templates and can drop
// that cache, e.g. when template files change on disk.
type Flusher interface {
	Flush()
}
