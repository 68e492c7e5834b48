// Package render defines the element contract, the per-render Page handed to
// elements, the element registry and translation helpers.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Element renders one fragment of a page. Implementations are stateless:
// everything they need arrives through the Page.
type Element interface {
	Name() string
	Render(ctx context.Context, page *Page, w io.Writer) error
}

// ElementFunc adapts a function into an Element.
type ElementFunc struct {
	ID string
	Fn func(ctx context.Context, page *Page, w io.Writer) error
}

func (e ElementFunc) Name() string { return e.ID }

func (e ElementFunc) Render(ctx context.Context, page *Page, w io.Writer) error {
	if e.Fn == nil {
		return nil
	}
	return e.Fn(ctx, page, w)
}

// Dispatcher renders elements by name. The view implements it so composite
// elements can delegate to sub-elements without knowing the registry.
type Dispatcher interface {
	RenderElement(ctx context.Context, name string, page *Page, w io.Writer) error
}

// ErrUnknownElement is returned when no element is registered under a name.
var ErrUnknownElement = errors.New("render: unknown element")

// ElementError wraps a failure with the name of the element that produced it.
type ElementError struct {
	Element string
	Err     error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("render: element %q: %v", e.Element, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// WrapElementError attaches the element name unless err already carries one
// for the same element.
func WrapElementError(name string, err error) error {
	if err == nil {
		return nil
	}
	var existing *ElementError
	if errors.As(err, &existing) && existing.Element == name {
		return err
	}
	return &ElementError{Element: name, Err: err}
}
