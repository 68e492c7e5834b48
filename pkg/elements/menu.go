package elements

import (
	"context"
	"io"
	"strings"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Menu lists the admin activities available to the signed-in user. The
// current activity is marked and not linked. Nothing is rendered for
// anonymous visitors.
type Menu struct{}

type menuView struct {
	Title   string
	Mobile  bool
	Entries []Link
}

func (e *Menu) Name() string { return NameMenu }

func (e *Menu) Render(_ context.Context, page *render.Page, w io.Writer) error {
	if !page.Request.LoggedIn() {
		return nil
	}
	activities, _ := decodeSection[[]model.Activity](page.Data, model.KeyActivities)
	if len(activities) == 0 {
		return nil
	}

	current := strings.TrimSpace(page.Data.String(model.KeyCurrentActivity))
	view := menuView{
		Title:  page.T("menu_activities"),
		Mobile: page.Mobile(),
	}
	for _, activity := range activities {
		method := strings.TrimSpace(activity.Method)
		if method == "" {
			continue
		}
		label := activity.Name
		if label == "" {
			label = method
		}
		entry := Link{Label: page.T(label), Class: method}
		if method == current {
			entry.Current = true
		} else {
			entry.URL = adminURL(page, method)
		}
		view.Entries = append(view.Entries, entry)
	}
	return renderView(page, NameMenu, view, w)
}
