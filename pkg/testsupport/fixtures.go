// Package testsupport loads view-data fixtures and captures rendered output
// for tests and for the CLI.
package testsupport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-elements/pkg/model"
)

// MustLoadData loads a YAML (or JSON) fixture into a view-data map.
func MustLoadData(t *testing.T, path string) model.Data {
	t.Helper()

	data, err := LoadData(path)
	if err != nil {
		t.Fatalf("load data: %v", err)
	}
	return data
}

// LoadData reads a fixture without requiring testing.T so setup code outside
// tests (the preview server, the CLI) can share fixtures.
func LoadData(path string) (model.Data, error) {
	if path == "" {
		return nil, errors.New("testsupport: data path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read data: %w", err)
	}
	return ParseData(raw)
}

// ParseData decodes YAML into a view-data map. JSON is valid YAML, so both
// fixture styles work.
func ParseData(raw []byte) (model.Data, error) {
	out := model.Data{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("testsupport: parse data: %w", err)
	}
	return out, nil
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// CaptureOutput runs a render that only writes, returning what it wrote.
func CaptureOutput(t *testing.T, render func(io.Writer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

// AssertContains fails when any of the fragments is missing from out.
func AssertContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\noutput:\n%s", fragment, out)
		}
	}
}

// AssertNotContains fails when any of the fragments appears in out.
func AssertNotContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(out, fragment) {
			t.Fatalf("expected output not to contain %q\noutput:\n%s", fragment, out)
		}
	}
}
