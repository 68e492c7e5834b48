package render

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-elements/pkg/model"
	rendertemplate "github.com/goliatone/go-elements/pkg/render/template"
	"github.com/goliatone/go-elements/pkg/urls"
)

// PageConfig holds the collaborators shared by every page of a view.
type PageConfig struct {
	Templates  rendertemplate.TemplateRenderer
	Translator Translator
	OnMissing  MissingTranslationHandler
	Dispatcher Dispatcher
	// URLOptions configure the per-page URL builder; the token and admin
	// flag are added from the page data.
	URLOptions []urls.Option
	Theme      *theme.RendererConfig
}

// Page is what an element receives for one render: the controller data, the
// ambient request, and helpers for translating and building links.
type Page struct {
	Data    model.Data
	Request model.Request
	URLs    *urls.Builder
	Theme   *theme.RendererConfig

	cfg PageConfig
}

// NewPage builds a page. The URL builder takes its token from CSRF_TOKEN and
// emits it only when ADMIN is set.
func NewPage(cfg PageConfig, data model.Data, req model.Request) *Page {
	if data == nil {
		data = model.Data{}
	}
	opts := make([]urls.Option, 0, len(cfg.URLOptions)+2)
	opts = append(opts, cfg.URLOptions...)
	opts = append(opts,
		urls.WithTheme(cfg.Theme),
		urls.WithToken(data.String(model.KeyCSRFToken), data.Bool(model.KeyAdmin)),
	)
	return &Page{
		Data:    data,
		Request: req,
		URLs:    urls.New(opts...),
		Theme:   cfg.Theme,
		cfg:     cfg,
	}
}

// With returns a page sharing the request and collaborators but rendering
// data instead.
func (p *Page) With(data model.Data) *Page {
	return NewPage(p.cfg, data, p.Request)
}

// Admin reports whether the page is an admin page.
func (p *Page) Admin() bool {
	return p.Data.Bool(model.KeyAdmin)
}

// Mobile reports whether the compact layout applies.
func (p *Page) Mobile() bool {
	return p.Request.Mobile
}

// Locale returns the request locale, falling back to LOCALE_TAG.
func (p *Page) Locale() string {
	if locale := strings.TrimSpace(p.Request.Locale); locale != "" {
		return locale
	}
	return p.Data.String(model.KeyLocaleTag)
}

// T translates key for the page locale.
func (p *Page) T(key string, args ...any) string {
	return translateWith(p.cfg.Translator, p.cfg.OnMissing, p.Locale(), key, args)
}

// URL builds a controller link; see urls.Builder.Build.
func (p *Page) URL(controller string, withToken bool) string {
	return p.URLs.Build(controller, withToken)
}

// Asset resolves an asset name to a URL.
func (p *Page) Asset(name string) string {
	return p.URLs.Asset(name)
}

// Sub renders another element by name into w with data.
func (p *Page) Sub(ctx context.Context, name string, data model.Data, w io.Writer) error {
	if p.cfg.Dispatcher == nil {
		return errors.New("render: page has no dispatcher for sub-elements")
	}
	return p.cfg.Dispatcher.RenderElement(ctx, name, p.With(data), w)
}

// Templates returns the template engine, or nil.
func (p *Page) Templates() rendertemplate.TemplateRenderer {
	return p.cfg.Templates
}

var identPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// TemplateContext flattens the page into template variables: every Data key
// that is a valid identifier, the request flags and the helper functions
// t(key, ...), url(controller, withToken) and asset(name). extra wins over
// all of them.
func (p *Page) TemplateContext(extra map[string]any) map[string]any {
	ctx := make(map[string]any, len(p.Data)+len(extra)+12)
	for key, value := range p.Data {
		if identPattern.MatchString(key) {
			ctx[key] = value
		}
	}
	ctx["t"] = p.T
	ctx["url"] = p.URL
	ctx["asset"] = p.Asset
	ctx["mobile"] = p.Request.Mobile
	ctx["logged_in"] = p.Request.LoggedIn()
	ctx["user"] = p.Request.User
	ctx["locale"] = p.Locale()
	ctx["admin"] = p.Admin()
	ctx["token_param"] = p.URLs.TokenParam()
	ctx["token"] = p.URLs.Token()
	for key, value := range extra {
		ctx[key] = value
	}
	return ctx
}

// RenderTemplate renders a named template with the page context plus extra.
func (p *Page) RenderTemplate(name string, extra map[string]any, w io.Writer) error {
	if p.cfg.Templates == nil {
		return errors.New("render: page has no template renderer")
	}
	_, err := p.cfg.Templates.RenderTemplate(name, p.TemplateContext(extra), w)
	return err
}
