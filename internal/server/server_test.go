package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-elements/pkg/csrf"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/view"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestServer(t *testing.T, options ...Option) *Server {
	t.Helper()
	v, err := view.New()
	require.NoError(t, err)
	tokens, err := csrf.NewManager(testSecret)
	require.NoError(t, err)

	opts := append([]Option{
		WithTokens(tokens, ""),
		WithDataSource(MapDataSource{
			CommonData:     {model.KeySiteName: "Preview"},
			"managecrawls": {"DESCRIPTION": "nightly"},
			"classifiers":  {model.KeyClassifiers: []any{}},
		}),
	}, options...)
	s, err := New(v, opts...)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestNewRequiresView(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestIndexRendersLandingPage(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "<title>Preview</title>")
	assert.NotContains(t, body, "csrf_token")
}

func TestIndexHonoursLocaleParam(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?l=fr-FR", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<html lang="fr-FR">`)

	rec = get(t, s, "/", map[string]string{"Accept-Language": "fr-CA,fr;q=0.8"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<html lang="fr-FR">`)
}

func TestAdminRequiresUser(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?c=admin", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var payload struct {
		Error struct {
			Status int `json:"status"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, http.StatusUnauthorized, payload.Error.Status)
}

func TestAdminPageCarriesFreshToken(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?c=admin&a=manageCrawls", map[string]string{UserHeader: "alice"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `class="admin-layout"`)
	assert.Contains(t, body, `name="csrf_token"`)
	assert.Contains(t, body, "Manage Crawls")
}

func TestAdminRejectsInvalidToken(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?c=admin&csrf_token=1%7C00ff", map[string]string{UserHeader: "alice"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAcceptsValidToken(t *testing.T) {
	tokens, err := csrf.NewManager(testSecret)
	require.NoError(t, err)
	token, err := tokens.Generate("alice")
	require.NoError(t, err)

	s := newTestServer(t)
	rec := get(t, s, "/?c=admin&a=manageClassifiers&csrf_token="+url.QueryEscape(token), map[string]string{UserHeader: "alice"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, s, "/?c=admin&csrf_token="+url.QueryEscape(token), map[string]string{UserHeader: "bob"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminUnknownActivity(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?c=admin&a=nope", map[string]string{UserHeader: "alice"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPollerRequestGetsFragment(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?c=admin&a=crawlStatus", map[string]string{
		UserHeader:         "alice",
		"X-Requested-With": "XMLHttpRequest",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="crawl-status"`)
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestListElements(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/elements", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload.Data, "nav")
	assert.Contains(t, payload.Data, "admin")
}

func TestFragmentRoute(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/elements/nav?user=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<!DOCTYPE html>")

	rec = get(t, s, "/elements/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownControllerIsNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/?c=missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssetsServed(t *testing.T) {
	s := newTestServer(t, WithAssets(fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
	}))

	rec := get(t, s, "/assets/css/site.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestRequestIDIsPreserved(t *testing.T) {
	s := newTestServer(t)
	id := "9b2f3c1e-7f44-4b55-9d1c-2f0a7e5b6c01"

	rec := get(t, s, "/elements", map[string]string{"X-Request-ID": id})
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))

	rec = get(t, s, "/elements", map[string]string{"X-Request-ID": "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get("X-Request-ID"))
}

func TestFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newTestServer(t, WithLogger(zap.New(core)))

	get(t, s, "/?c=admin", nil)

	entries := logs.FilterMessage("request rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusUnauthorized), entries[0].ContextMap()["status"])
}

func TestFileDataSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "common.yaml"), []byte("SITE_NAME: Fixtures\nADMIN: false\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nav.yml"), []byte("ADMIN: true\nLOGO_SMALL: small.png\n"), 0o644))

	ds := FileDataSource{Dir: dir}
	data, err := ds.Load(context.Background(), "nav", "../secret", "missing")
	require.NoError(t, err)
	assert.Equal(t, "Fixtures", data.String(model.KeySiteName))
	assert.True(t, data.Bool(model.KeyAdmin))
	assert.Equal(t, "small.png", data.String(model.KeyLogoSmall))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("a: [\n"), 0o644))
	_, err = ds.Load(context.Background(), "broken")
	assert.Error(t, err)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, statusOf(StatusError{Code: http.StatusForbidden}))
	assert.Equal(t, http.StatusInternalServerError, statusOf(StatusError{}))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}
