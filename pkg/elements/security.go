package elements

import (
	"context"
	"io"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Security is the security settings form. Each setting is a select box whose
// choices come from the data, labelled through translation keys.
type Security struct{}

type selectRow struct {
	ID    string
	Label string
	HTML  string
}

type formView struct {
	Form   FormTarget
	Title  string
	Rows   []selectRow
	Submit string
}

var securitySelects = []struct {
	id       string
	label    string
	current  string
	choices  string
	defaults []string
}{
	{"captcha_mode", "security_captcha_mode", model.KeyCaptchaMode, model.KeyCaptchaModes, []string{"text", "hash", "image"}},
	{"authentication_mode", "security_authentication_mode", model.KeyAuthenticationMode, model.KeyAuthenticationModes, []string{"normal", "zkp"}},
	{"recovery_mode", "security_recovery_mode", model.KeyRecoveryMode, model.KeyRecoveryModes, []string{"no_recovery", "email_link"}},
	{"autologout", "security_autologout", model.KeyAutologout, model.KeyAutologoutTimes, []string{"3600", "86400", "604800"}},
}

func (e *Security) Name() string { return NameSecurity }

func (e *Security) Render(_ context.Context, page *render.Page, w io.Writer) error {
	view := formView{
		Form:   formTarget(page, "admin", "security", "updatesecurity"),
		Title:  page.T("security_title"),
		Submit: page.T("security_save"),
	}
	for _, field := range securitySelects {
		options := choiceOptions(page, field.choices, field.defaults, field.id)
		html, err := helpers.Select(page, helpers.SelectConfig{
			ID:       field.id,
			Options:  options,
			Selected: page.Data.String(field.current),
		})
		if err != nil {
			return err
		}
		view.Rows = append(view.Rows, selectRow{ID: field.id, Label: page.T(field.label), HTML: html})
	}
	return renderView(page, NameSecurity, view, w)
}

// choiceOptions reads the choices under key, either a value -> label map or
// a list of values translated as "<prefix>_<value>". defaults apply when the
// key is absent.
func choiceOptions(page *render.Page, key string, defaults []string, prefix string) []helpers.Option {
	if labels := page.Data.StringMap(key); len(labels) > 0 {
		return helpers.OptionsFromMap(labels)
	}
	values := page.Data.Strings(key)
	if len(values) == 0 {
		values = defaults
	}
	keys := make(map[string]string, len(values))
	for _, value := range values {
		keys[value] = prefix + "_" + value
	}
	return helpers.TranslatedOptions(page, values, keys)
}
