// Package view wires the element registry, the template engine and the
// translator together and renders elements or whole pages for a request.
package view
