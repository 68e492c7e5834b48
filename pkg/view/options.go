package view

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-elements/pkg/elements"
	"github.com/goliatone/go-elements/pkg/render"
	rendertemplate "github.com/goliatone/go-elements/pkg/render/template"
	"github.com/goliatone/go-elements/pkg/urls"
)

// Option configures a View.
type Option func(*View)

// WithRegistry replaces the registry. The built-in elements are registered
// into it unless WithoutBuiltins is also given.
func WithRegistry(reg *render.Registry) Option {
	return func(v *View) {
		if reg != nil {
			v.registry = reg
		}
	}
}

// WithoutBuiltins skips registering the built-in elements.
func WithoutBuiltins() Option {
	return func(v *View) {
		v.skipBuiltins = true
	}
}

// WithTemplates overrides the template engine. The default engine reads the
// embedded templates.
func WithTemplates(renderer rendertemplate.TemplateRenderer) Option {
	return func(v *View) {
		if renderer != nil {
			v.templates = renderer
		}
	}
}

// WithTemplateDir loads templates from dir first, falling back to the
// embedded set. Ignored when WithTemplates is given.
func WithTemplateDir(dir string) Option {
	return func(v *View) {
		v.templateDir = dir
	}
}

// WithTranslator overrides the embedded i18n catalog.
func WithTranslator(t render.Translator) Option {
	return func(v *View) {
		if t != nil {
			v.translator = t
		}
	}
}

// WithMissingTranslationHandler sets what is printed for untranslated keys.
func WithMissingTranslationHandler(fn render.MissingTranslationHandler) Option {
	return func(v *View) {
		v.onMissing = fn
	}
}

// WithURLOptions configures every page's URL builder.
func WithURLOptions(opts ...urls.Option) Option {
	return func(v *View) {
		v.urlOptions = append(v.urlOptions, opts...)
	}
}

// WithTheme supplies theme CSS variables and asset resolution.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(v *View) {
		v.theme = cfg
	}
}

// WithSettings replaces the element settings.
func WithSettings(settings elements.Settings) Option {
	return func(v *View) {
		v.settings = settings
	}
}

// WithLogger sets the logger used for render failures.
func WithLogger(logger *zap.Logger) Option {
	return func(v *View) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithLayout overrides the page layout template name.
func WithLayout(name string) Option {
	return func(v *View) {
		if name != "" {
			v.layout = name
		}
	}
}
