package helpers

import (
	"sort"
	"strings"

	"github.com/goliatone/go-elements/pkg/render"
)

// HiddenField is an extra hidden input carried by a search form.
type HiddenField struct {
	Name  string
	Value string
}

// SearchFormConfig describes the filter form shown above list screens.
type SearchFormConfig struct {
	ID          string
	Controller  string
	Activity    string
	Param       string
	Query       string
	Label       string
	Placeholder string
	Hidden      map[string]string
}

type searchFormView struct {
	SearchFormConfig
	Action     string
	TokenParam string
	Token      string
	Hidden     []HiddenField
}

// SearchForm renders a GET form back to the controller/activity. The token
// rides along as a hidden field on admin pages only. Param defaults to "q".
func SearchForm(page *render.Page, cfg SearchFormConfig) (string, error) {
	if strings.TrimSpace(cfg.Param) == "" {
		cfg.Param = "q"
	}
	if strings.TrimSpace(cfg.ID) == "" {
		cfg.ID = "search-" + cfg.Activity
	}
	view := searchFormView{
		SearchFormConfig: cfg,
		Action:           page.URL("", false),
		TokenParam:       page.URLs.TokenParam(),
		Token:            page.URLs.Token(),
	}
	names := make([]string, 0, len(cfg.Hidden))
	for name := range cfg.Hidden {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		view.Hidden = append(view.Hidden, HiddenField{Name: name, Value: cfg.Hidden[name]})
	}
	return renderHelper(page, "helpers/searchform", "search", view)
}
