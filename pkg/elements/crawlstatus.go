package elements

import (
	"context"
	"io"
	"time"

	"github.com/goliatone/go-elements/pkg/i18n"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// CrawlStatus is the polled fragment: the active crawl, if any, and the
// previous crawls with their actions.
type CrawlStatus struct{}

type activeCrawlView struct {
	Description  string
	Status       string
	Visited      string
	Total        string
	PagesPerHour string
	Fetcher      string
	LastSeen     string
	RecentURLs   []string
	Stop         Link
}

type crawlRow struct {
	Description string
	Timestamp   string
	Count       string
	Current     bool
	Actions     []Link
}

type crawlStatusView struct {
	Active *activeCrawlView
	Idle   string
	Recent []crawlRow
}

func (e *CrawlStatus) Name() string { return NameCrawlStatus }

func (e *CrawlStatus) Render(_ context.Context, page *render.Page, w io.Writer) error {
	status, _ := decodeSection[model.CrawlStatus](page.Data, model.KeyCrawlStatus)
	recent, _ := decodeSection[[]model.Crawl](page.Data, model.KeyRecentCrawls)
	locale := page.Locale()
	current := page.Data.String(model.KeyCurrentIndex)

	view := crawlStatusView{}
	if status.Active() {
		active := &activeCrawlView{
			Description:  status.Description,
			Status:       status.Status,
			Visited:      i18n.FormatNumber(locale, status.VisitedURLs),
			Total:        i18n.FormatNumber(locale, status.TotalURLs),
			PagesPerHour: i18n.FormatNumber(locale, status.PagesPerHour),
			Fetcher:      status.MostRecentFetcher,
			RecentURLs:   status.MostRecentURLs,
			Stop: Link{
				Label:   page.T("crawlstatus_stop"),
				URL:     adminURL(page, "manageCrawls", "arg", "stop", "timestamp", status.Timestamp),
				Class:   "stop",
				Confirm: page.T("crawlstatus_confirm_stop"),
			},
		}
		if status.MostRecentTime > 0 {
			active.LastSeen = time.Unix(status.MostRecentTime, 0).UTC().Format(time.RFC3339)
		}
		view.Active = active
	} else {
		view.Idle = page.T("crawlstatus_idle")
	}

	for _, crawl := range recent {
		row := crawlRow{
			Description: crawl.Description,
			Timestamp:   crawl.Timestamp,
			Count:       i18n.FormatNumber(locale, crawl.Count),
			Current:     crawl.Timestamp == current,
		}
		if crawl.Resumable {
			row.Actions = append(row.Actions, Link{
				Label: page.T("crawlstatus_resume"),
				URL:   adminURL(page, "manageCrawls", "arg", "resume", "timestamp", crawl.Timestamp),
				Class: "resume",
			})
		}
		if row.Current {
			row.Actions = append(row.Actions, Link{Label: page.T("crawlstatus_search_index"), Class: "current-index"})
		} else {
			row.Actions = append(row.Actions, Link{
				Label: page.T("crawlstatus_set_index"),
				URL:   adminURL(page, "manageCrawls", "arg", "index", "timestamp", crawl.Timestamp),
				Class: "set-index",
			})
		}
		row.Actions = append(row.Actions, Link{
			Label:   page.T("crawlstatus_delete"),
			URL:     adminURL(page, "manageCrawls", "arg", "delete", "timestamp", crawl.Timestamp),
			Class:   "delete",
			Confirm: page.T("crawlstatus_confirm_delete", crawl.Description),
		})
		view.Recent = append(view.Recent, row)
	}
	return renderView(page, NameCrawlStatus, view, w)
}
