// Package elements contains the stateless renderers for the admin and search
// front end: navigation, menus, settings forms, management tables, status
// panels, advertisements and query statistics. Each element builds a small
// view model from the page data and renders it through its template under
// elements/<name>.
package elements
