package helpers

import (
	"sort"
	"strings"

	"github.com/goliatone/go-elements/pkg/render"
)

// Option is one entry of a select box.
type Option struct {
	Value string
	Label string
}

// SelectConfig describes a select box.
type SelectConfig struct {
	ID       string
	Name     string
	Class    string
	Label    string
	Options  []Option
	Selected string
	// SubmitOnChange submits the enclosing form when the selection changes.
	SubmitOnChange bool
	Disabled       bool
}

// Select renders a select box. Name defaults to ID.
func Select(page *render.Page, cfg SelectConfig) (string, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = cfg.ID
	}
	return renderHelper(page, "helpers/select", "sel", cfg)
}

// OptionsFromMap builds options from a value -> label map, ordered by label
// and then value so output is deterministic.
func OptionsFromMap(values map[string]string) []Option {
	out := make([]Option, 0, len(values))
	for value, label := range values {
		out = append(out, Option{Value: value, Label: label})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label == out[j].Label {
			return out[i].Value < out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// OptionsFromValues uses each value as its own label.
func OptionsFromValues(values ...string) []Option {
	out := make([]Option, 0, len(values))
	for _, value := range values {
		out = append(out, Option{Value: value, Label: value})
	}
	return out
}

// TranslatedOptions builds options whose labels are translation keys, keeping
// the order of keys. keys maps option value -> message key.
func TranslatedOptions(page *render.Page, values []string, keys map[string]string) []Option {
	out := make([]Option, 0, len(values))
	for _, value := range values {
		label := value
		if key, ok := keys[value]; ok {
			label = page.T(key)
		}
		out = append(out, Option{Value: value, Label: label})
	}
	return out
}

func renderHelper(page *render.Page, name, varName string, value any) (string, error) {
	var buf strings.Builder
	if err := page.RenderTemplate(name, map[string]any{varName: value}, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
