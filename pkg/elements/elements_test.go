package elements_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-elements/pkg/elements"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
	"github.com/goliatone/go-elements/pkg/view"
)

const token = "tok-123"

func newView(t *testing.T, mutate ...func(*elements.Settings)) *view.View {
	t.Helper()
	settings := elements.DefaultSettings()
	for _, fn := range mutate {
		fn(&settings)
	}
	v, err := view.New(view.WithSettings(settings))
	require.NoError(t, err)
	return v
}

func renderElement(t *testing.T, v *view.View, name string, data model.Data, req model.Request) string {
	t.Helper()
	var out strings.Builder
	require.NoError(t, v.Render(context.Background(), name, data, req, &out))
	return out.String()
}

func adminData(admin bool) model.Data {
	return model.Data{
		model.KeyAdmin:     admin,
		model.KeyCSRFToken: token,
		model.KeyActivities: []any{
			map[string]any{"METHOD_NAME": "manageClassifiers", "ACTIVITY_NAME": "Classifiers"},
			map[string]any{"METHOD_NAME": "mixCrawls", "ACTIVITY_NAME": "Mixes"},
		},
		model.KeyCurrentActivity: "mixCrawls",
		model.KeyClassifiers: []any{
			map[string]any{"class_label": "spam", "positive": 3, "negative": 4, "finalized": 0},
		},
	}
}

func TestTokenOnlyOnAdminPages(t *testing.T) {
	v := newView(t)
	req := model.Request{User: "ada"}

	for _, name := range []string{elements.NameNav, elements.NameMenu, elements.NameClassifiers, elements.NameAdmin} {
		t.Run(name, func(t *testing.T) {
			out := renderElement(t, v, name, adminData(false), req)
			assert.NotContains(t, out, token)

			out = renderElement(t, v, name, adminData(true), req)
			assert.Contains(t, out, "csrf_token="+token)
		})
	}
}

func TestNavLogoByDeviceClass(t *testing.T) {
	v := newView(t)

	desktop := renderElement(t, v, elements.NameNav, model.Data{}, model.Request{})
	assert.Contains(t, desktop, `src="logo-medium.png"`)
	assert.NotContains(t, desktop, "logo-small.png")

	mobile := renderElement(t, v, elements.NameNav, model.Data{}, model.Request{Mobile: true})
	assert.Contains(t, mobile, `src="logo-small.png"`)
	assert.NotContains(t, mobile, "logo-medium.png")
	assert.Contains(t, mobile, `<details class="nav-menu">`)

	custom := renderElement(t, v, elements.NameNav, model.Data{
		model.KeyLogoSmall:  "/img/s.png",
		model.KeyLogoMedium: "/img/m.png",
	}, model.Request{Mobile: true})
	assert.Contains(t, custom, `src="/img/s.png"`)
}

func TestNavAccountLinks(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameNav, model.Data{}, model.Request{})
	assert.Contains(t, out, "Sign In")
	assert.Contains(t, out, "Create Account")
	assert.NotContains(t, out, "Sign Out")

	closed := newView(t, func(s *elements.Settings) { s.Registration = false })
	out = renderElement(t, closed, elements.NameNav, model.Data{}, model.Request{})
	assert.NotContains(t, out, "Create Account")

	out = renderElement(t, v, elements.NameNav, model.Data{}, model.Request{User: "ada"})
	assert.Contains(t, out, "Signed in as ada")
	assert.Contains(t, out, "Sign Out")
	assert.NotContains(t, out, "Sign In")
}

func TestMenuMarksCurrentActivity(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameMenu, adminData(true), model.Request{User: "ada"})
	assert.Contains(t, out, `<b aria-current="page">Mixes</b>`)
	assert.Contains(t, out, `a=manageClassifiers&amp;csrf_token=`+token)
	assert.NotContains(t, out, "a=mixCrawls")

	anonymous := renderElement(t, v, elements.NameMenu, adminData(true), model.Request{})
	assert.Empty(t, anonymous)
}

func TestClassifierFinalizeColumn(t *testing.T) {
	v := newView(t)
	accuracy := 0.875
	data := model.Data{
		model.KeyAdmin:     true,
		model.KeyCSRFToken: token,
		model.KeyClassifiers: []model.Classifier{
			{Label: "ready", Positive: 2, Negative: 1, Finalized: model.Unfinalized, Accuracy: &accuracy},
			{Label: "sparse", Positive: 2, Negative: 0, Finalized: model.Unfinalized},
			{Label: "busy", Positive: 5, Negative: 5, Finalized: model.Finalizing},
			{Label: "done", Positive: 5, Negative: 5, Finalized: model.Finalized},
		},
	}
	out := renderElement(t, v, elements.NameClassifiers, data, model.Request{User: "ada"})

	assert.Contains(t, out, "arg=finalizeclassifier&amp;name=ready")
	assert.NotContains(t, out, "arg=finalizeclassifier&amp;name=sparse")
	assert.NotContains(t, out, "arg=finalizeclassifier&amp;name=busy")
	assert.NotContains(t, out, "arg=finalizeclassifier&amp;name=done")
	assert.Contains(t, out, `<span class="status finalizing">Finalizing</span>`)
	assert.Contains(t, out, `<span class="status finalized">Finalized</span>`)
	assert.Contains(t, out, `<span class="status finalize">Finalize</span>`)
	assert.Contains(t, out, "87.5%")
	assert.Contains(t, out, "N/A")
}

func TestClassifiersAcceptMapKeyedByLabel(t *testing.T) {
	v := newView(t)
	data := model.Data{
		model.KeyClassifiers: map[string]any{
			"zeta":  map[string]any{"positive": 1, "negative": 1, "finalized": "FINALIZED"},
			"alpha": map[string]any{"positive": 1, "negative": 1, "finalized": 1},
		},
	}
	out := renderElement(t, v, elements.NameClassifiers, data, model.Request{})
	alpha := strings.Index(out, "<td>alpha</td>")
	zeta := strings.Index(out, "<td>zeta</td>")
	require.True(t, alpha >= 0 && zeta >= 0, out)
	assert.Less(t, alpha, zeta)
	assert.Contains(t, out, `data-status="FINALIZING"`)
	assert.Contains(t, out, `data-status="FINALIZED"`)
}

func TestAdvertisementVisibility(t *testing.T) {
	ad := map[string]any{
		"NAME":        "Widgets",
		"DESCRIPTION": `Buy <b>now</b><script>alert(1)</script>`,
		"DESTINATION": "https://widgets.example.com",
	}
	both := newView(t, func(s *elements.Settings) { s.AdLocation = elements.AdsBoth })

	out := renderElement(t, both, elements.NameTopAd, model.Data{model.KeyAdvertisement: ad}, model.Request{})
	assert.Contains(t, out, `class="advertisement top-advertisement"`)
	assert.Contains(t, out, "<b>now</b>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `href="https://widgets.example.com"`)

	cases := []struct {
		name string
		view *view.View
		elem string
		data model.Data
		req  model.Request
	}{
		{"empty map payload", both, elements.NameTopAd, model.Data{model.KeyAdvertisement: map[string]any{}}, model.Request{}},
		{"empty string payload", both, elements.NameTopAd, model.Data{model.KeyAdvertisement: ""}, model.Request{}},
		{"false payload", both, elements.NameTopAd, model.Data{model.KeyAdvertisement: false}, model.Request{}},
		{"empty list payload", both, elements.NameTopAd, model.Data{model.KeyAdvertisement: []any{}}, model.Request{}},
		{"zero payload", both, elements.NameSideAd, model.Data{model.KeyAdvertisement: 0}, model.Request{}},
		{"malformed payload", both, elements.NameTopAd, model.Data{model.KeyAdvertisement: "not an ad"}, model.Request{}},
		{"list instead of record", both, elements.NameTopAd, model.Data{model.KeyAdvertisement: []any{"x"}}, model.Request{}},
		{"missing payload", both, elements.NameTopAd, model.Data{}, model.Request{}},
		{"landing request", both, elements.NameTopAd, model.Data{model.KeyAdvertisement: ad}, model.Request{Landing: true}},
		{"landing data", both, elements.NameSideAd, model.Data{model.KeyAdvertisement: ad, model.KeyLanding: true}, model.Request{}},
		{"side on mobile", both, elements.NameSideAd, model.Data{model.KeyAdvertisement: ad}, model.Request{Mobile: true}},
		{"disabled", newView(t), elements.NameTopAd, model.Data{model.KeyAdvertisement: ad}, model.Request{}},
		{"other placement", newView(t, func(s *elements.Settings) { s.AdLocation = elements.AdsSide }), elements.NameTopAd, model.Data{model.KeyAdvertisement: ad}, model.Request{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, renderElement(t, tc.view, tc.elem, tc.data, tc.req))
		})
	}
}

func TestAdvertisementDropsUnsafeDestination(t *testing.T) {
	v := newView(t, func(s *elements.Settings) { s.AdLocation = elements.AdsTop })
	out := renderElement(t, v, elements.NameTopAd, model.Data{model.KeyAdvertisement: map[string]any{
		"NAME":        "Sneaky",
		"DESTINATION": "javascript:alert(1)",
	}}, model.Request{})
	assert.Contains(t, out, "Sneaky")
	assert.NotContains(t, out, "javascript:")
}

func TestPollingPanels(t *testing.T) {
	v := newView(t)
	data := model.Data{model.KeyAdmin: true, model.KeyCSRFToken: token}

	crawls := renderElement(t, v, elements.NameManageCrawls, data, model.Request{User: "ada"})
	assert.Contains(t, crawls, `id="crawl-status"`)
	assert.Contains(t, crawls, "30000")
	assert.Contains(t, crawls, "1200000")
	assert.Contains(t, crawls, "a=crawlStatus")

	machines := renderElement(t, v, elements.NameManageMachines, data, model.Request{User: "ada"})
	assert.Contains(t, machines, `id="machine-status"`)
	assert.Contains(t, machines, "a=machineStatus")
}

func TestCrawlStatusFragment(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameCrawlStatus, model.Data{
		model.KeyCrawlStatus: map[string]any{
			"TIMESTAMP":          "1700000000",
			"DESCRIPTION":        "Nightly",
			"VISITED_URLS_COUNT": 12345,
			"COUNT":              20000,
		},
		model.KeyRecentCrawls: []any{
			map[string]any{"TIMESTAMP": "1600000000", "DESCRIPTION": "Old", "COUNT": 10, "RESUMABLE": 1},
			map[string]any{"TIMESTAMP": "1500000000", "DESCRIPTION": "Older", "COUNT": 5},
		},
		model.KeyCurrentIndex: "1500000000",
	}, model.Request{Locale: "en-US"})

	assert.Contains(t, out, "Nightly")
	assert.Contains(t, out, "12,345 / 20,000")
	assert.Contains(t, out, "arg=resume&amp;timestamp=1600000000")
	assert.NotContains(t, out, "arg=resume&amp;timestamp=1500000000")
	assert.NotContains(t, out, "arg=index&amp;timestamp=1500000000")
	assert.Contains(t, out, `<b class="current-index">Search index</b>`)

	idle := renderElement(t, v, elements.NameCrawlStatus, model.Data{}, model.Request{})
	assert.Contains(t, idle, "No crawl is running.")
	assert.Contains(t, idle, "No previous crawls.")
}

func TestMachineStatusStates(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameMachineStatus, model.Data{
		model.KeyMachines: []any{
			map[string]any{
				"NAME": "alpha", "URL": "http://alpha/", "HAS_QUEUE_SERVER": true, "NUM_FETCHERS": 2,
				"STATUSES": map[string]any{"QUEUE_SERVER": 1, "FETCHER": map[string]any{"0": 1}},
			},
			map[string]any{"NAME": "beta", "URL": "http://beta/", "STATUSES": map[string]any{"NO_RESPONSE": true}},
			map[string]any{"NAME": "gamma", "URL": "http://gamma/", "PARENT": "alpha"},
		},
	}, model.Request{})

	assert.Contains(t, out, "Queue server")
	assert.Contains(t, out, "Fetcher 0")
	assert.Contains(t, out, "Fetcher 1")
	assert.Contains(t, out, "Not responding")
	assert.Contains(t, out, "Mirror of alpha")
	assert.Contains(t, out, "action=false&amp;arg=update&amp;fetcher_num=0")
	assert.Contains(t, out, "action=true&amp;arg=update&amp;fetcher_num=1")
}

func TestMixesSkipCurrentIndexAndPaginate(t *testing.T) {
	v := newView(t)
	mixes := make([]any, 0, 3)
	for _, ts := range []string{"100", "200", "300"} {
		mixes = append(mixes, map[string]any{"TIMESTAMP": ts, "NAME": "mix" + ts, "FRAGMENTS": 1})
	}
	out := renderElement(t, v, elements.NameMixes, model.Data{
		model.KeyMixes:        mixes,
		model.KeyCurrentIndex: "200",
		model.KeyLimit:        3,
		model.KeyTotal:        9,
		model.KeyStart:        3,
	}, model.Request{})

	assert.Contains(t, out, "arg=index&amp;timestamp=100")
	assert.NotContains(t, out, "arg=index&amp;timestamp=200")
	assert.Contains(t, out, "arg=index&amp;timestamp=300")
	assert.Contains(t, out, `class="search-form"`)
	assert.Contains(t, out, "start=6")
}

func TestQueryStatsPeriodsInOrder(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameQueryStats, model.Data{
		model.KeyStatistics: map[string]any{
			model.PeriodAllTime: []any{map[string]any{"QUERY": "golang", "COUNT": 1234567}},
			model.PeriodHour:    []any{map[string]any{"QUERY": "news", "COUNT": 3}},
			model.PeriodDay:     []any{},
		},
	}, model.Request{Locale: "fr-FR"})

	hour := strings.Index(out, `id="one_hour"`)
	day := strings.Index(out, `id="one_day"`)
	all := strings.Index(out, `id="all_time"`)
	require.True(t, hour >= 0 && day >= 0 && all >= 0, out)
	assert.Less(t, hour, day)
	assert.Less(t, day, all)
	assert.NotContains(t, out, `id="one_month"`)
	assert.Contains(t, out, "Aucune requête sur cette période.")
	assert.Contains(t, out, "c=search&amp;q=golang")
	assert.NotContains(t, out, "1234567")
}

func TestAdminComposesMenuAndBody(t *testing.T) {
	v := newView(t)
	data := adminData(true)
	data[model.KeyCurrentActivity] = "manageClassifiers"
	out := renderElement(t, v, elements.NameAdmin, data, model.Request{User: "ada"})
	assert.Contains(t, out, `class="activity-menu"`)
	assert.Contains(t, out, `class="classifiers"`)

	data[model.KeyElement] = "nosuchelement"
	out = renderElement(t, v, elements.NameAdmin, data, model.Request{User: "ada"})
	assert.Contains(t, out, `class="admin-body"`)
	assert.NotContains(t, out, `class="classifiers"`)
}

func TestAppearanceRejectsInvalidColors(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameAppearance, model.Data{
		model.KeyForegroundColor: "#112233",
		model.KeyBackgroundColor: "red;}</style><script>",
		model.KeyAuxCSS:          "body { margin: 0 }</style><script>alert(1)</script>",
	}, model.Request{})
	assert.Contains(t, out, "--fg-color: #112233;")
	assert.NotContains(t, out, "--bg-color")
	assert.NotContains(t, out, "alert(1)")
	assert.Contains(t, out, "body { margin: 0 }")
}

func TestSecurityAndSettingsForms(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameSecurity, model.Data{
		model.KeyCaptchaMode: "hash",
	}, model.Request{})
	assert.Contains(t, out, `<option value="hash" selected="selected">Hash captcha</option>`)
	assert.Contains(t, out, `<option value="604800">One week</option>`)

	out = renderElement(t, v, elements.NameSettings, model.Data{
		model.KeyPerPage:    "50",
		model.KeyOpenInTabs: "on",
		model.KeyLanguages:  map[string]any{"en-US": "English", "fr-FR": "Français"},
	}, model.Request{Locale: "fr-FR"})
	assert.Contains(t, out, `<option value="50" selected="selected">50</option>`)
	assert.Contains(t, out, `<option value="fr-FR" selected="selected">Français</option>`)
	assert.Contains(t, out, `checked="checked"`)
}

func TestLanguageList(t *testing.T) {
	v := newView(t)
	out := renderElement(t, v, elements.NameLanguage, model.Data{
		model.KeyLanguages: map[string]any{"en-US": "English", "fr-FR": "Français"},
		model.KeyLocaleTag: "en-US",
	}, model.Request{})
	assert.Contains(t, out, "<b>English</b>")
	assert.Contains(t, out, "l=fr-FR")
	assert.NotContains(t, out, "l=en-US")
}

func TestUnknownElement(t *testing.T) {
	v := newView(t)
	var out strings.Builder
	err := v.Render(context.Background(), "nope", model.Data{}, model.Request{}, &out)
	assert.True(t, errors.Is(err, render.ErrUnknownElement))
}

func TestAdLocationCovers(t *testing.T) {
	assert.True(t, elements.AdsBoth.Covers(elements.AdsTop))
	assert.True(t, elements.AdsBoth.Covers(elements.AdsSide))
	assert.True(t, elements.AdsTop.Covers(elements.AdsTop))
	assert.False(t, elements.AdsTop.Covers(elements.AdsSide))
	assert.False(t, elements.AdsNone.Covers(elements.AdsTop))
	assert.True(t, elements.AdLocation("BOTH").Covers(elements.AdsSide))
}
