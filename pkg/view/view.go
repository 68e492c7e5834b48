package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-elements/pkg/elements"
	"github.com/goliatone/go-elements/pkg/i18n"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
	rendertemplate "github.com/goliatone/go-elements/pkg/render/template"
	"github.com/goliatone/go-elements/pkg/render/template/gotemplate"
	"github.com/goliatone/go-elements/pkg/urls"
	"github.com/goliatone/go-elements/pkg/views"
)

// DefaultLayout is the template wrapping full pages.
const DefaultLayout = "layouts/page"

// View renders registered elements for one request at a time. It is safe
// for concurrent use once constructed.
type View struct {
	registry     *render.Registry
	skipBuiltins bool
	templates    rendertemplate.TemplateRenderer
	templateDir  string
	translator   render.Translator
	onMissing    render.MissingTranslationHandler
	urlOptions   []urls.Option
	theme        *theme.RendererConfig
	settings     elements.Settings
	logger       *zap.Logger
	layout       string
}

var _ render.Dispatcher = (*View)(nil)

// New builds a view with the built-in elements, the embedded templates and
// the embedded catalogs unless options replace them.
func New(options ...Option) (*View, error) {
	v := &View{
		registry: render.NewRegistry(),
		settings: elements.DefaultSettings(),
		logger:   zap.NewNop(),
		layout:   DefaultLayout,
	}
	for _, opt := range options {
		if opt != nil {
			opt(v)
		}
	}

	if v.translator == nil {
		catalog, err := i18n.Default()
		if err != nil {
			return nil, fmt.Errorf("view: load catalogs: %w", err)
		}
		v.translator = catalog
	}

	funcs := render.TemplateI18nFuncs(v.translator, render.TemplateI18nConfig{OnMissing: v.onMissing})
	if v.templates == nil {
		engineOpts := []gotemplate.Option{
			gotemplate.WithFS(views.TemplatesFS()),
			gotemplate.WithTemplateFunc(funcs),
		}
		if dir := strings.TrimSpace(v.templateDir); dir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(dir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("view: template engine: %w", err)
		}
		v.templates = engine
	} else if err := v.templates.GlobalContext(funcs); err != nil {
		return nil, fmt.Errorf("view: template globals: %w", err)
	}

	if !v.skipBuiltins {
		if err := elements.Register(v.registry, v.settings); err != nil {
			return nil, fmt.Errorf("view: register elements: %w", err)
		}
	}
	return v, nil
}

// Registry exposes the element registry so callers can add elements.
func (v *View) Registry() *render.Registry { return v.registry }

// Elements lists the registered element names.
func (v *View) Elements() []string { return v.registry.List() }

// Settings returns the element settings.
func (v *View) Settings() elements.Settings { return v.settings }

// Flush drops cached templates when the engine supports it.
func (v *View) Flush() {
	if flusher, ok := v.templates.(rendertemplate.Flusher); ok {
		flusher.Flush()
	}
}

// Page builds the per-render page for data and req.
func (v *View) Page(data model.Data, req model.Request) *render.Page {
	return render.NewPage(render.PageConfig{
		Templates:  v.templates,
		Translator: v.translator,
		OnMissing:  v.onMissing,
		Dispatcher: v,
		URLOptions: v.urlOptions,
		Theme:      v.theme,
	}, data, req)
}

// Render renders the element name for data and req into w.
func (v *View) Render(ctx context.Context, name string, data model.Data, req model.Request, w io.Writer) error {
	return v.RenderElement(ctx, name, v.Page(data, req), w)
}

// RenderElement implements render.Dispatcher. Output is buffered so a
// failing element writes nothing; its error carries the element name.
func (v *View) RenderElement(ctx context.Context, name string, page *render.Page, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	element, err := v.registry.Get(name)
	if err != nil {
		v.logger.Debug("unknown element", zap.String("element", name))
		return err
	}

	var buf bytes.Buffer
	if err := element.Render(ctx, page, &buf); err != nil {
		err = render.WrapElementError(element.Name(), err)
		if !errors.Is(err, render.ErrUnknownElement) {
			v.logger.Warn("element render failed",
				zap.String("element", element.Name()),
				zap.Error(err),
			)
		}
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

type layoutView struct {
	Title    string
	Lang     string
	Favicon  string
	Style    string
	Mobile   bool
	Nav      string
	TopAd    string
	Body     string
	SideAd   string
	Language string
}

// RenderPage renders a full HTML document around the body element: nav bar,
// advertisements, the language picker and the site style.
func (v *View) RenderPage(ctx context.Context, body string, data model.Data, req model.Request, w io.Writer) error {
	page := v.Page(data, req)

	view := layoutView{
		Title:  page.Data.StringOr(model.KeySiteName, page.T("nav_site_name")),
		Lang:   page.Locale(),
		Style:  elements.SiteStyle(page),
		Mobile: page.Mobile(),
	}
	if view.Lang == "" {
		view.Lang = i18n.DefaultLocale
	}
	if favicon := page.Data.String(model.KeyFavicon); favicon != "" {
		view.Favicon = page.Asset(favicon)
	}

	slots := []struct {
		name string
		out  *string
	}{
		{elements.NameNav, &view.Nav},
		{elements.NameTopAd, &view.TopAd},
		{body, &view.Body},
		{elements.NameSideAd, &view.SideAd},
		{elements.NameLanguage, &view.Language},
	}
	for _, slot := range slots {
		if slot.name == "" {
			continue
		}
		var buf strings.Builder
		err := v.RenderElement(ctx, slot.name, page, &buf)
		if err != nil && (slot.name == body || !errors.Is(err, render.ErrUnknownElement)) {
			return err
		}
		*slot.out = buf.String()
	}

	return page.RenderTemplate(v.layout, map[string]any{"view": view}, w)
}
