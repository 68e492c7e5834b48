// Package urls builds same-origin links to controller actions and asset
// paths. It is the only place where the anti-forgery token is appended to a
// URL, which keeps the rule in one spot: the token is emitted only for admin
// pages and only when the caller asks for it.
package urls

import (
	"net/url"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultTokenParam is the query parameter carrying the anti-forgery token.
const DefaultTokenParam = "csrf_token"

// Builder is request scoped: construct one per render with the request's
// admin flag and token.
type Builder struct {
	base       string
	assetBase  string
	tokenParam string
	token      string
	admin      bool
	theme      *theme.RendererConfig
}

// Option configures a Builder.
type Option func(*Builder)

// WithBase sets the controller entry point, e.g. "/" or "/search/index.php".
func WithBase(base string) Option {
	return func(b *Builder) {
		if trimmed := strings.TrimSpace(base); trimmed != "" {
			b.base = trimmed
		}
	}
}

// WithAssetBase sets the prefix used for logos and other images.
func WithAssetBase(base string) Option {
	return func(b *Builder) {
		b.assetBase = strings.TrimSpace(base)
	}
}

// WithTokenParam overrides the token query parameter name.
func WithTokenParam(name string) Option {
	return func(b *Builder) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			b.tokenParam = trimmed
		}
	}
}

// WithToken attaches the anti-forgery token and whether the current page is
// an admin page. Outside admin pages the token is never emitted.
func WithToken(token string, admin bool) Option {
	return func(b *Builder) {
		b.token = strings.TrimSpace(token)
		b.admin = admin
	}
}

// WithTheme resolves asset names through a go-theme renderer config before
// falling back to the asset base.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(b *Builder) {
		b.theme = cfg
	}
}

// New constructs a Builder with defaults "/" and DefaultTokenParam.
func New(options ...Option) *Builder {
	b := &Builder{
		base:       "/",
		tokenParam: DefaultTokenParam,
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// TokenParam returns the token query parameter name.
func (b *Builder) TokenParam() string {
	return b.tokenParam
}

// Token returns the token when it may be emitted and "" otherwise.
func (b *Builder) Token() string {
	if b == nil || !b.admin {
		return ""
	}
	return b.token
}

// Build returns the URL for a controller: base?c=controller, plus the token
// when withToken is set and the page is an admin page. An empty controller
// yields the bare base.
func (b *Builder) Build(controller string, withToken bool) string {
	return b.Activity(controller, "", withToken, nil)
}

// Activity is Build plus an activity ("a") parameter and extra parameters.
// Parameter order is c, a, extras (sorted), token so links are stable.
func (b *Builder) Activity(controller, activity string, withToken bool, extra url.Values) string {
	if b == nil {
		return "/"
	}
	var parts []string
	if c := strings.TrimSpace(controller); c != "" {
		parts = append(parts, "c="+url.QueryEscape(c))
	}
	if a := strings.TrimSpace(activity); a != "" {
		parts = append(parts, "a="+url.QueryEscape(a))
	}
	if len(extra) > 0 {
		if encoded := extra.Encode(); encoded != "" {
			parts = append(parts, encoded)
		}
	}
	if withToken {
		if token := b.Token(); token != "" {
			parts = append(parts, url.QueryEscape(b.tokenParam)+"="+url.QueryEscape(token))
		}
	}
	if len(parts) == 0 {
		return b.base
	}
	sep := "?"
	if strings.Contains(b.base, "?") {
		sep = "&"
	}
	return b.base + sep + strings.Join(parts, "&")
}

// Asset resolves an image or stylesheet name. Absolute URLs and rooted paths
// pass through untouched.
func (b *Builder) Asset(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if isAbsolute(name) {
		return name
	}
	if b != nil && b.theme != nil && b.theme.AssetURL != nil {
		if resolved := b.theme.AssetURL(name); resolved != "" {
			return resolved
		}
	}
	if b == nil || b.assetBase == "" {
		return name
	}
	if strings.Contains(b.assetBase, "://") {
		return strings.TrimRight(b.assetBase, "/") + "/" + strings.TrimLeft(name, "/")
	}
	return path.Join(b.assetBase, name)
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "/") ||
		strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "data:")
}
