package helpers_test

import (
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
	"github.com/goliatone/go-elements/pkg/urls"
	"github.com/goliatone/go-elements/pkg/view"
)

func newPage(t *testing.T, data model.Data) *render.Page {
	t.Helper()
	v, err := view.New(view.WithURLOptions(urls.WithAssetBase("/static")))
	require.NoError(t, err)
	return v.Page(data, model.Request{User: "ada"})
}

func TestSelectMarksSelectedOption(t *testing.T) {
	page := newPage(t, nil)
	out, err := helpers.Select(page, helpers.SelectConfig{
		ID:             "mode",
		Options:        helpers.OptionsFromValues("a", "b"),
		Selected:       "b",
		SubmitOnChange: true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, `<select id="mode" name="mode" onchange="this.form.submit()">`)
	assert.Contains(t, out, `<option value="a">a</option>`)
	assert.Contains(t, out, `<option value="b" selected="selected">b</option>`)
}

func TestPaginationRendersNothingForOnePage(t *testing.T) {
	page := newPage(t, nil)
	out, err := helpers.Pagination(page, helpers.PaginationConfig{PerPage: 10, Total: 5})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = helpers.Pagination(page, helpers.PaginationConfig{
		PerPage: 10,
		Total:   25,
		URL: func(start int) string {
			return page.URLs.Activity("admin", "mixCrawls", false, url.Values{"start": {strconv.Itoa(start)}})
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, `<b class="current" aria-current="page">1</b>`)
	assert.Contains(t, out, "Next")
	assert.NotContains(t, out, "Previous")
}

func TestSearchFormCarriesTokenOnAdminPagesOnly(t *testing.T) {
	cfg := helpers.SearchFormConfig{
		Controller: "admin",
		Activity:   "mixCrawls",
		Query:      `"quoted"`,
		Hidden:     map[string]string{"z": "1", "a": "2"},
	}

	out, err := helpers.SearchForm(newPage(t, model.Data{model.KeyCSRFToken: "secret"}), cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, `id="search-mixCrawls"`)
	assert.Contains(t, out, `name="q" value="&quot;quoted&quot;"`)
	assert.Less(t, strings.Index(out, `name="a" value="2"`), strings.Index(out, `name="z" value="1"`))

	out, err = helpers.SearchForm(newPage(t, model.Data{model.KeyCSRFToken: "secret", model.KeyAdmin: true}), cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `<input type="hidden" name="csrf_token" value="secret">`)
}

func TestFileUploadResolvesCurrentAsset(t *testing.T) {
	page := newPage(t, nil)
	out, err := helpers.FileUpload(page, helpers.FileUploadConfig{ID: "logo", Current: "logo.png"})
	require.NoError(t, err)
	assert.Contains(t, out, "/static/logo.png")
	assert.Contains(t, out, `accept="image/*"`)
}

func TestPollerDefaults(t *testing.T) {
	page := newPage(t, nil)
	out, err := helpers.Poller(page, helpers.PollerConfig{TargetID: "status", URL: "/?c=admin&a=crawlStatus"})
	require.NoError(t, err)
	assert.Contains(t, out, `id="status"`)
	assert.Contains(t, out, "setInterval(update, 30000)")
	assert.Contains(t, out, "setTimeout(stop, 1200000)")

	out, err = helpers.Poller(page, helpers.PollerConfig{TargetID: "status", Interval: 5 * time.Second, Timeout: time.Minute})
	require.NoError(t, err)
	assert.Contains(t, out, "setInterval(update, 5000)")
	assert.Contains(t, out, "setTimeout(stop, 60000)")
}
