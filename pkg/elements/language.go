package elements

import (
	"context"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Language lists the available locales; picking one reloads the current
// controller with the l parameter.
type Language struct{}

type languageView struct {
	Title   string
	Locales []Link
}

func (e *Language) Name() string { return NameLanguage }

func (e *Language) Render(_ context.Context, page *render.Page, w io.Writer) error {
	languages := page.Data.StringMap(model.KeyLanguages)
	if len(languages) < 2 {
		return nil
	}
	current := page.Locale()
	controller := page.Data.StringOr("CONTROLLER", "search")

	tags := make([]string, 0, len(languages))
	for tag := range languages {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(languages[tags[i]]) < strings.ToLower(languages[tags[j]])
	})

	view := languageView{Title: page.T("language_title")}
	for _, tag := range tags {
		link := Link{Label: languages[tag], Class: tag}
		if strings.EqualFold(tag, current) {
			link.Current = true
		} else {
			link.URL = page.URLs.Activity(controller, "", false, url.Values{"l": {tag}})
		}
		view.Locales = append(view.Locales, link)
	}
	return renderView(page, NameLanguage, view, w)
}
