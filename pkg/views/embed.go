// Package views embeds the pongo2 templates used by helpers, elements and
// page layouts.
package views

import (
	"embed"
	"io/fs"
)

//go:embed templates/helpers/*.tpl templates/elements/*.tpl templates/layouts/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the template bundle rooted at the templates directory,
// so names look like "elements/nav".
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
