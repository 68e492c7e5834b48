package helpers

import (
	"github.com/goliatone/go-elements/pkg/render"
)

// maxPageLinks bounds the numbered links shown around the current page.
const maxPageLinks = 5

// PaginationConfig describes a window into a result list.
type PaginationConfig struct {
	Start   int
	PerPage int
	Total   int
	// URL returns the link for the page starting at row start.
	URL func(start int) string
}

// PageLink is one numbered page.
type PageLink struct {
	Number  int
	Start   int
	URL     string
	Current bool
}

// Pager is the computed pagination state.
type Pager struct {
	Links []PageLink
	Prev  *PageLink
	Next  *PageLink
	Pages int
}

// Paginate computes the page links. It returns a zero Pager when everything
// fits on one page.
func Paginate(cfg PaginationConfig) Pager {
	if cfg.PerPage <= 0 || cfg.Total <= cfg.PerPage {
		return Pager{}
	}
	pages := (cfg.Total + cfg.PerPage - 1) / cfg.PerPage
	start := cfg.Start
	if start < 0 {
		start = 0
	}
	current := start / cfg.PerPage
	if current >= pages {
		current = pages - 1
	}

	first := current - maxPageLinks/2
	if first < 0 {
		first = 0
	}
	last := first + maxPageLinks - 1
	if last >= pages {
		last = pages - 1
		first = last - maxPageLinks + 1
		if first < 0 {
			first = 0
		}
	}

	link := func(index int) PageLink {
		rowStart := index * cfg.PerPage
		url := ""
		if cfg.URL != nil {
			url = cfg.URL(rowStart)
		}
		return PageLink{Number: index + 1, Start: rowStart, URL: url, Current: index == current}
	}

	pager := Pager{Pages: pages}
	for i := first; i <= last; i++ {
		pager.Links = append(pager.Links, link(i))
	}
	if current > 0 {
		prev := link(current - 1)
		pager.Prev = &prev
	}
	if current < pages-1 {
		next := link(current + 1)
		pager.Next = &next
	}
	return pager
}

// Pagination renders the page links, or "" when there is a single page.
func Pagination(page *render.Page, cfg PaginationConfig) (string, error) {
	pager := Paginate(cfg)
	if pager.Pages <= 1 {
		return "", nil
	}
	return renderHelper(page, "helpers/pagination", "pager", pager)
}
