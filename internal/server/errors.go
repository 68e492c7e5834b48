package server

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-elements/pkg/render"
)

// HTTPError is an error carrying an HTTP status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError pairs an error with the status it should produce.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// statusOf maps err to a response status. Unknown elements are 404.
func statusOf(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr.StatusCode()
	}
	if errors.Is(err, render.ErrUnknownElement) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
