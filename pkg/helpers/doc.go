// Package helpers renders the small UI fragments elements repeat: select
// boxes, pagination links, file upload widgets and list search forms. Each
// helper returns markup that elements embed in their own templates.
package helpers
