package elements

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
	"github.com/goliatone/go-elements/pkg/sanitize"
)

// Appearance is the site appearance form: colours, name, logos and extra
// CSS. A preview style block reflects the current values.
type Appearance struct{}

type colorField struct {
	ID    string
	Name  string
	Label string
	Value string
}

type appearanceView struct {
	Form       FormTarget
	Title      string
	SiteName   string
	Colors     []colorField
	Uploads    []string
	AuxCSS     string
	PreviewCSS string
	Submit     string
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{8}|[a-zA-Z]{3,20})$`)

// validColor accepts hex colours and CSS colour keywords only, so values can
// be written into a style block.
func validColor(value string) bool {
	return colorPattern.MatchString(strings.TrimSpace(value))
}

var appearanceColors = []struct {
	key    string
	label  string
	cssVar string
}{
	{model.KeyForegroundColor, "appearance_foreground_color", "--fg-color"},
	{model.KeyBackgroundColor, "appearance_background_color", "--bg-color"},
	{model.KeyTopColor, "appearance_top_color", "--top-color"},
	{model.KeySideColor, "appearance_side_color", "--side-color"},
}

func (e *Appearance) Name() string { return NameAppearance }

func (e *Appearance) Render(_ context.Context, page *render.Page, w io.Writer) error {
	view := appearanceView{
		Form:     formTarget(page, "admin", "appearance", "updateappearance"),
		Title:    page.T("appearance_title"),
		SiteName: page.Data.String(model.KeySiteName),
		AuxCSS:   sanitize.CSS(page.Data.String(model.KeyAuxCSS)),
		Submit:   page.T("appearance_save"),
	}

	for _, color := range appearanceColors {
		view.Colors = append(view.Colors, colorField{
			ID:    strings.ToLower(color.key),
			Name:  strings.ToLower(color.key),
			Label: page.T(color.label),
			Value: dataColor(page, color.key),
		})
	}
	view.PreviewCSS = styleBlock(".appearance-preview", themeVars(page), view.AuxCSS)

	uploads := []struct {
		key   string
		label string
	}{
		{model.KeyLogoSmall, "appearance_logo_small"},
		{model.KeyLogoMedium, "appearance_logo_medium"},
		{model.KeyFavicon, "appearance_favicon"},
		{model.KeyBackgroundImage, "appearance_background_image"},
	}
	for _, upload := range uploads {
		id := strings.ToLower(upload.key)
		html, err := helpers.FileUpload(page, helpers.FileUploadConfig{
			ID:           id,
			Current:      page.Data.String(upload.key),
			Label:        page.T(upload.label),
			PreviewWidth: 64,
		})
		if err != nil {
			return err
		}
		view.Uploads = append(view.Uploads, html)
	}

	return renderView(page, NameAppearance, view, w)
}

// SiteStyle returns the style rules for a whole page: theme CSS variables,
// overridden by valid colours from the data, then the site's extra CSS.
func SiteStyle(page *render.Page) string {
	return styleBlock(":root", themeVars(page), sanitize.CSS(page.Data.String(model.KeyAuxCSS)))
}

func dataColor(page *render.Page, key string) string {
	value := strings.TrimSpace(page.Data.String(key))
	if value == "" || !validColor(value) {
		return ""
	}
	return value
}

func themeVars(page *render.Page) map[string]string {
	vars := map[string]string{}
	if page.Theme != nil {
		for name, value := range page.Theme.CSSVars {
			vars[name] = value
		}
	}
	for _, color := range appearanceColors {
		if value := dataColor(page, color.key); value != "" {
			vars[color.cssVar] = value
		}
	}
	return vars
}

// styleBlock writes vars as one rule for selector, in name order, followed
// by aux.
func styleBlock(selector string, vars map[string]string, aux string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		if strings.HasPrefix(name, "--") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n")
	if aux != "" {
		b.WriteString(aux)
		b.WriteString("\n")
	}
	return sanitize.CSS(b.String())
}
