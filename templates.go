// Package elements is the entry point of the element renderer module: it
// exposes the embedded templates and browser assets. The element catalogue
// lives in pkg/elements and the request-level renderer in pkg/view.
package elements

import (
	"io/fs"

	"github.com/goliatone/go-elements/pkg/views"
)

// EmbeddedTemplates exposes the built-in helper, element and layout
// templates so callers can reuse or extend them without importing the views
// package directly.
func EmbeddedTemplates() fs.FS {
	return views.TemplatesFS()
}
