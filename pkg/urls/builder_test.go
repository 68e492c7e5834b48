package urls

import (
	"net/url"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestBuildOmitsTokenOutsideAdmin(t *testing.T) {
	b := New(WithToken("secret", false))

	got := b.Build("admin", true)
	if strings.Contains(got, "secret") {
		t.Fatalf("token leaked into non-admin url %q", got)
	}
	if got != "/?c=admin" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestBuildAppendsTokenForAdmin(t *testing.T) {
	b := New(WithBase("/index.php"), WithToken("abc|123", true))

	if got := b.Build("admin", true); got != "/index.php?c=admin&csrf_token=abc%7C123" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := b.Build("admin", false); got != "/index.php?c=admin" {
		t.Fatalf("expected no token when not requested, got %q", got)
	}
}

func TestActivityOrdersParameters(t *testing.T) {
	b := New(WithToken("t", true), WithTokenParam("TOKEN"))

	got := b.Activity("admin", "manageCrawls", true, url.Values{"arg": {"stop"}, "id": {"7"}})
	want := "/?c=admin&a=manageCrawls&arg=stop&id=7&TOKEN=t"
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestActivityKeepsExistingQuery(t *testing.T) {
	b := New(WithBase("/app?lang=fr"))
	if got := b.Build("search", false); got != "/app?lang=fr&c=search" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestBuildEmptyControllerReturnsBase(t *testing.T) {
	if got := New().Build("", true); got != "/" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestAssetResolution(t *testing.T) {
	b := New(WithAssetBase("/resources"))
	cases := map[string]string{
		"logo-s.png":               "/resources/logo-s.png",
		"/already/rooted.png":      "/already/rooted.png",
		"https://cdn.test/a.png":   "https://cdn.test/a.png",
		"":                         "",
	}
	for in, want := range cases {
		if got := b.Asset(in); got != want {
			t.Fatalf("Asset(%q) = %q, want %q", in, got, want)
		}
	}

	cdn := New(WithAssetBase("https://cdn.test/static/"))
	if got := cdn.Asset("logo.png"); got != "https://cdn.test/static/logo.png" {
		t.Fatalf("unexpected cdn asset %q", got)
	}
}

func TestAssetPrefersThemeResolver(t *testing.T) {
	b := New(WithAssetBase("/resources"), WithTheme(&theme.RendererConfig{
		Theme: "acme",
		AssetURL: func(key string) string {
			if key == "logo-m.png" {
				return "/themes/acme/logo-m.png"
			}
			return ""
		},
	}))

	if got := b.Asset("logo-m.png"); got != "/themes/acme/logo-m.png" {
		t.Fatalf("expected themed asset, got %q", got)
	}
	if got := b.Asset("other.png"); got != "/resources/other.png" {
		t.Fatalf("expected fallback asset, got %q", got)
	}
}
