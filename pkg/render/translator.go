package render

import (
	"errors"
	"strings"
)

// Translator resolves a message key for a locale, formatting args into it.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides what to print when a key cannot be
// translated. err is ErrMissingTranslator when no translator is configured.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrMissingTranslator is passed to the missing handler when a page has no
// translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// missingTranslationDefault prints the key itself, which keeps untranslated
// screens usable and makes gaps easy to spot.
func missingTranslationDefault(_ string, key string, _ []any, _ error) string {
	return key
}

func translateWith(t Translator, onMissing MissingTranslationHandler, locale, key string, args []any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}
	msg, err := t.Translate(locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(locale, key, args, err)
	}
	return msg
}
