package render_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-elements/pkg/render"
)

func stubElement(name string) render.Element {
	return render.ElementFunc{ID: name, Fn: func(context.Context, *render.Page, io.Writer) error { return nil }}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubElement("nav"))
	reg.MustRegister(stubElement("Menu"))

	if !reg.Has("menu") || !reg.Has(" NAV ") {
		t.Fatalf("expected case-insensitive lookups to succeed")
	}
	if _, err := reg.Get("menu"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff([]string{"menu", "nav"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RejectsDuplicatesAndBlankNames(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubElement("nav"))

	if err := reg.Register(stubElement("NAV")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := reg.Register(stubElement("  ")); err == nil {
		t.Fatalf("expected blank name to fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil element to fail")
	}
	if err := reg.Replace(stubElement("nav")); err != nil {
		t.Fatalf("replace: %v", err)
	}
}

func TestRegistry_UnknownElement(t *testing.T) {
	_, err := render.NewRegistry().Get("missing")
	if !errors.Is(err, render.ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
}

func TestWrapElementError(t *testing.T) {
	base := errors.New("boom")
	wrapped := render.WrapElementError("nav", base)

	var elementErr *render.ElementError
	if !errors.As(wrapped, &elementErr) || elementErr.Element != "nav" {
		t.Fatalf("expected ElementError for nav, got %v", wrapped)
	}
	if !errors.Is(wrapped, base) {
		t.Fatalf("expected wrapped error to unwrap to base")
	}
	if again := render.WrapElementError("nav", wrapped); again != wrapped {
		t.Fatalf("expected no double wrapping")
	}
	if render.WrapElementError("nav", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
