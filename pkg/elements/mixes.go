package elements

import (
	"context"
	"io"
	"strconv"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Mixes lists crawl mixes with a filter form and pagination. Any mix other
// than the current index can be made the index.
type Mixes struct{}

type mixRow struct {
	Name      string
	Timestamp string
	Owner     string
	Fragments int
	Current   bool
	Edit      Link
	SetIndex  Link
	Delete    Link
}

type mixesView struct {
	Form       FormTarget
	Title      string
	Search     string
	Pagination string
	Rows       []mixRow
	Empty      string
}

const defaultMixesPerPage = 20

func (e *Mixes) Name() string { return NameMixes }

func (e *Mixes) Render(_ context.Context, page *render.Page, w io.Writer) error {
	mixes, _ := decodeSection[[]model.CrawlMix](page.Data, model.KeyMixes)
	query := page.Data.String(model.KeyQuery)
	current := page.Data.String(model.KeyCurrentIndex)

	search, err := helpers.SearchForm(page, helpers.SearchFormConfig{
		Controller:  "admin",
		Activity:    "mixCrawls",
		Query:       query,
		Label:       page.T("mixes_search"),
		Placeholder: page.T("mixes_search_placeholder"),
	})
	if err != nil {
		return err
	}

	perPage := page.Data.Int(model.KeyLimit)
	if perPage <= 0 {
		perPage = defaultMixesPerPage
	}
	total := page.Data.Int(model.KeyTotal)
	if total == 0 {
		total = len(mixes)
	}
	pagination, err := helpers.Pagination(page, helpers.PaginationConfig{
		Start:   page.Data.Int(model.KeyStart),
		PerPage: perPage,
		Total:   total,
		URL: func(start int) string {
			params := []string{"start", strconv.Itoa(start)}
			if query != "" {
				params = append(params, "q", query)
			}
			return adminURL(page, "mixCrawls", params...)
		},
	})
	if err != nil {
		return err
	}

	view := mixesView{
		Form:       formTarget(page, "admin", "mixCrawls", "createmix"),
		Title:      page.T("mixes_title"),
		Search:     search,
		Pagination: pagination,
	}
	if len(mixes) == 0 {
		view.Empty = page.T("mixes_none")
	}
	for _, mix := range mixes {
		row := mixRow{
			Name:      mix.Name,
			Timestamp: mix.Timestamp,
			Owner:     mix.Owner,
			Fragments: mix.Fragments,
			Current:   mix.Timestamp == current,
			Edit: Link{
				Label: page.T("mixes_edit"),
				URL:   adminURL(page, "mixCrawls", "arg", "editmix", "timestamp", mix.Timestamp),
				Class: "edit",
			},
			Delete: Link{
				Label:   page.T("mixes_delete"),
				URL:     adminURL(page, "mixCrawls", "arg", "deletemix", "timestamp", mix.Timestamp),
				Class:   "delete",
				Confirm: page.T("mixes_confirm_delete", mix.Name),
			},
		}
		if row.Current {
			row.SetIndex = Link{Label: page.T("mixes_search_index"), Class: "current-index"}
		} else {
			row.SetIndex = Link{
				Label: page.T("mixes_set_index"),
				URL:   adminURL(page, "mixCrawls", "arg", "index", "timestamp", mix.Timestamp),
				Class: "set-index",
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return renderView(page, NameMixes, view, w)
}
