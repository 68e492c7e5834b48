// Package i18n loads flat YAML message catalogs, one file per locale, and
// exposes them through the render.Translator contract. Messages use printf
// verbs for arguments ("Page %s of %s").
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when a request names no locale or an unknown one.
const DefaultLocale = "en-US"

// ErrNotFound is returned when no catalog, including the fallback, has key.
var ErrNotFound = errors.New("i18n: translation not found")

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// LocalesFS exposes the built-in catalogs.
func LocalesFS() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return embeddedLocales
	}
	return sub
}

// Catalog holds messages keyed by locale then message key.
type Catalog struct {
	mu       sync.RWMutex
	fallback string
	messages map[string]map[string]string
	locales  []string
	matcher  language.Matcher
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithFallback sets the locale consulted when a key is missing.
func WithFallback(locale string) Option {
	return func(c *Catalog) {
		if trimmed := strings.TrimSpace(locale); trimmed != "" {
			c.fallback = trimmed
		}
	}
}

// Default loads the embedded catalogs.
func Default(options ...Option) (*Catalog, error) {
	return Load(LocalesFS(), options...)
}

// Load reads every *.yaml/*.yml file in fsys; the file name without extension
// is the locale tag.
func Load(fsys fs.FS, options ...Option) (*Catalog, error) {
	c := &Catalog{
		fallback: DefaultLocale,
		messages: make(map[string]map[string]string),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	if fsys == nil {
		c.rebuildMatcher()
		return c, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", p, err)
		}
		locale := strings.TrimSuffix(path.Base(p), ext)
		return c.AddYAML(locale, raw)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AddYAML merges a flat YAML mapping into the catalog for locale. Later
// entries win over earlier ones.
func (c *Catalog) AddYAML(locale string, raw []byte) error {
	entries := map[string]string{}
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", locale, err)
	}
	c.Add(locale, entries)
	return nil
}

// Add merges entries into the catalog for locale.
func (c *Catalog) Add(locale string, entries map[string]string) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket, ok := c.messages[locale]
	if !ok {
		bucket = make(map[string]string, len(entries))
		c.messages[locale] = bucket
	}
	for key, value := range entries {
		bucket[strings.TrimSpace(key)] = value
	}
	c.rebuildMatcherLocked()
}

// Locales returns the loaded locale tags, fallback first and the rest
// sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.locales...)
}

// Translate implements render.Translator. Lookup order: exact locale, the
// best matching loaded locale, then the fallback locale.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrNotFound
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range c.candidatesLocked(locale) {
		if format, ok := c.messages[candidate][key]; ok {
			if len(args) == 0 {
				return format, nil
			}
			return fmt.Sprintf(format, args...), nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrNotFound, locale, key)
}

// Match picks the best loaded locale for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.matcher == nil || strings.TrimSpace(acceptLanguage) == "" {
		return c.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(c.locales) {
		return c.fallback
	}
	return c.locales[index]
}

func (c *Catalog) candidatesLocked(locale string) []string {
	locale = strings.TrimSpace(locale)
	out := make([]string, 0, 3)
	if locale != "" {
		out = append(out, locale)
		if c.matcher != nil {
			if tag, err := language.Parse(locale); err == nil {
				_, index, confidence := c.matcher.Match(tag)
				if confidence != language.No && index >= 0 && index < len(c.locales) {
					out = append(out, c.locales[index])
				}
			}
		}
	}
	return append(out, c.fallback)
}

func (c *Catalog) rebuildMatcher() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rebuildMatcherLocked()
}

// rebuildMatcherLocked keeps the fallback first so it wins ties.
func (c *Catalog) rebuildMatcherLocked() {
	locales := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		if locale != c.fallback {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	if _, ok := c.messages[c.fallback]; ok {
		locales = append([]string{c.fallback}, locales...)
	}

	tags := make([]language.Tag, 0, len(locales))
	kept := make([]string, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		kept = append(kept, locale)
	}
	c.locales = kept
	if len(tags) == 0 {
		c.matcher = nil
		return
	}
	c.matcher = language.NewMatcher(tags)
}

// FormatNumber renders n with the grouping and decimal conventions of locale.
func FormatNumber(locale string, n any) string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	printer := message.NewPrinter(tag)
	switch n.(type) {
	case float32, float64:
		return printer.Sprintf("%.2f", n)
	}
	return printer.Sprintf("%d", n)
}
