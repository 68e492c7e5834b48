package elements

import (
	"io"
	"net/url"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Link is a rendered anchor. Links without a URL render as plain labels.
type Link struct {
	Label   string
	URL     string
	Class   string
	Confirm string
	Current bool
}

// FormTarget carries the hidden inputs every admin form posts back with.
type FormTarget struct {
	Action     string
	Controller string
	Activity   string
	Arg        string
	TokenParam string
	Token      string
}

func formTarget(page *render.Page, controller, activity, arg string) FormTarget {
	return FormTarget{
		Action:     page.URL("", false),
		Controller: controller,
		Activity:   activity,
		Arg:        arg,
		TokenParam: page.URLs.TokenParam(),
		Token:      page.URLs.Token(),
	}
}

func adminURL(page *render.Page, activity string, params ...string) string {
	var extra url.Values
	if len(params) > 1 {
		extra = url.Values{}
		for i := 0; i+1 < len(params); i += 2 {
			extra.Set(params[i], params[i+1])
		}
	}
	return page.URLs.Activity("admin", activity, true, extra)
}

func renderView(page *render.Page, name string, view any, w io.Writer) error {
	return page.RenderTemplate("elements/"+name, map[string]any{"view": view}, w)
}

// decodeSection decodes the records under key. Data of the wrong shape
// yields the zero value and false, so the section is left out instead of
// failing the page.
func decodeSection[T any](data model.Data, key string) (T, bool) {
	var out T
	if err := data.Decode(key, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
