// Package template defines the template engine seam elements and helpers
// render through. The gotemplate subpackage provides the pongo2 backed
// implementation; tests and callers can substitute their own.
package template
