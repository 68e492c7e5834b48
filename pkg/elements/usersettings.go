package elements

import (
	"context"
	"io"
	"strconv"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// UserSettings is the search settings form: results per page, whether
// results open in new tabs, and the interface language.
type UserSettings struct{}

type userSettingsView struct {
	formView
	OpenInTabs bool
	Cancel     string
}

var defaultPerPage = []string{"10", "20", "50", "100"}

func (e *UserSettings) Name() string { return NameSettings }

func (e *UserSettings) Render(_ context.Context, page *render.Page, w io.Writer) error {
	view := userSettingsView{
		formView: formView{
			Form:   formTarget(page, "settings", "", "save"),
			Title:  page.T("settings_title"),
			Submit: page.T("settings_save"),
		},
		OpenInTabs: page.Data.Bool(model.KeyOpenInTabs),
		Cancel:     page.URL("search", true),
	}

	perPage := page.Data.Strings(model.KeyPerPageOptions)
	if len(perPage) == 0 {
		perPage = defaultPerPage
	}
	selected := page.Data.String(model.KeyPerPage)
	if selected == "" {
		selected = strconv.Itoa(10)
	}
	html, err := helpers.Select(page, helpers.SelectConfig{
		ID:       "per_page",
		Options:  helpers.OptionsFromValues(perPage...),
		Selected: selected,
	})
	if err != nil {
		return err
	}
	view.Rows = append(view.Rows, selectRow{ID: "per_page", Label: page.T("settings_results_per_page"), HTML: html})

	if languages := page.Data.StringMap(model.KeyLanguages); len(languages) > 0 {
		html, err := helpers.Select(page, helpers.SelectConfig{
			ID:       "locale",
			Name:     "l",
			Options:  helpers.OptionsFromMap(languages),
			Selected: page.Locale(),
		})
		if err != nil {
			return err
		}
		view.Rows = append(view.Rows, selectRow{ID: "locale", Label: page.T("settings_language"), HTML: html})
	}

	return renderView(page, NameSettings, view, w)
}
