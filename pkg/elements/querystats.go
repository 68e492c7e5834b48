package elements

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/i18n"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// QueryStats shows the most popular queries per period, with a filter form.
type QueryStats struct{}

type statRow struct {
	Query string
	Count string
	URL   string
}

type periodView struct {
	ID    string
	Title string
	Rows  []statRow
	Empty string
}

type queryStatsView struct {
	Title   string
	Search  string
	Periods []periodView
}

func (e *QueryStats) Name() string { return NameQueryStats }

func (e *QueryStats) Render(_ context.Context, page *render.Page, w io.Writer) error {
	stats, _ := decodeSection[map[string][]model.QueryStat](page.Data, model.KeyStatistics)

	search, err := helpers.SearchForm(page, helpers.SearchFormConfig{
		Controller:  "admin",
		Activity:    "queryStats",
		Param:       "filter",
		Query:       page.Data.String(model.KeyFilter),
		Label:       page.T("querystats_filter"),
		Placeholder: page.T("querystats_filter_placeholder"),
	})
	if err != nil {
		return err
	}

	locale := page.Locale()
	view := queryStatsView{Title: page.T("querystats_title"), Search: search}
	for _, period := range model.StatisticPeriods {
		entries, ok := stats[period]
		if !ok {
			continue
		}
		pv := periodView{
			ID:    strings.ToLower(period),
			Title: page.T("querystats_" + strings.ToLower(period)),
		}
		if len(entries) == 0 {
			pv.Empty = page.T("querystats_none")
		}
		for _, entry := range entries {
			pv.Rows = append(pv.Rows, statRow{
				Query: entry.Query,
				Count: i18n.FormatNumber(locale, entry.Count),
				URL:   page.URLs.Activity("search", "", false, url.Values{"q": {entry.Query}}),
			})
		}
		view.Periods = append(view.Periods, pv)
	}
	return renderView(page, NameQueryStats, view, w)
}
