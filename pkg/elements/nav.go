package elements

import (
	"context"
	"io"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Nav is the top bar: logo, home link and the account links that depend on
// whether someone is signed in. Mobile clients get the small logo and a
// collapsible link list.
type Nav struct {
	settings Settings
}

type navView struct {
	LogoURL  string
	HomeURL  string
	SiteName string
	Mobile   bool
	LoggedIn bool
	User     string
	Links    []Link
}

func (e *Nav) Name() string { return NameNav }

func (e *Nav) Render(_ context.Context, page *render.Page, w io.Writer) error {
	view := navView{
		LogoURL:  page.Asset(e.logo(page)),
		HomeURL:  page.URL("", false),
		SiteName: page.Data.StringOr(model.KeySiteName, page.T("nav_site_name")),
		Mobile:   page.Mobile(),
		LoggedIn: page.Request.LoggedIn(),
		User:     page.Request.User,
	}

	if view.LoggedIn {
		view.Links = append(view.Links,
			Link{Label: page.T("nav_settings"), URL: page.URL("settings", true), Class: "settings"},
			Link{Label: page.T("nav_admin"), URL: page.URL("admin", true), Class: "admin"},
			Link{Label: page.T("nav_sign_out"), URL: page.URLs.Activity("admin", "signout", true, nil), Class: "sign-out"},
		)
	} else {
		view.Links = append(view.Links,
			Link{Label: page.T("nav_settings"), URL: page.URL("settings", false), Class: "settings"},
			Link{Label: page.T("nav_sign_in"), URL: page.URL("admin", false), Class: "sign-in"},
		)
		if e.settings.Registration {
			view.Links = append(view.Links, Link{
				Label: page.T("nav_create_account"),
				URL:   page.URLs.Activity("register", "createAccount", false, nil),
				Class: "create-account",
			})
		}
	}

	return renderView(page, NameNav, view, w)
}

// logo picks the data supplied logo for the device class, then the
// configured default.
func (e *Nav) logo(page *render.Page) string {
	if page.Mobile() {
		return page.Data.StringOr(model.KeyLogoSmall, e.settings.SmallLogo)
	}
	return page.Data.StringOr(model.KeyLogoMedium, e.settings.MediumLogo)
}
