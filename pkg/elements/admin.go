package elements

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Admin composes the activity menu with the element for the current
// activity. ELEMENT names the body directly; otherwise CURRENT_ACTIVITY is
// looked up in the settings activity map.
type Admin struct {
	settings Settings
}

func (e *Admin) Name() string { return NameAdmin }

func (e *Admin) Render(ctx context.Context, page *render.Page, w io.Writer) error {
	if _, err := io.WriteString(w, `<div class="admin-layout">`+"\n"); err != nil {
		return err
	}
	if err := page.Sub(ctx, NameMenu, page.Data, w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<main class="admin-body">`+"\n"); err != nil {
		return err
	}
	if body := e.body(page); body != "" && body != NameAdmin {
		err := page.Sub(ctx, body, page.Data, w)
		if err != nil && !errors.Is(err, render.ErrUnknownElement) {
			return err
		}
	}
	_, err := io.WriteString(w, "</main>\n</div>\n")
	return err
}

func (e *Admin) body(page *render.Page) string {
	if name := strings.TrimSpace(page.Data.String(model.KeyElement)); name != "" {
		return name
	}
	return e.settings.ElementFor(page.Data.String(model.KeyCurrentActivity))
}
