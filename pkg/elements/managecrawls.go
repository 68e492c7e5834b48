package elements

import (
	"context"
	"io"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/render"
)

// ManageCrawls is the start-crawl form plus a placeholder that is refreshed
// with the crawl status fragment until the poll timeout.
type ManageCrawls struct {
	settings Settings
}

type manageCrawlsView struct {
	Form   FormTarget
	Title  string
	Status string
}

const crawlStatusTarget = "crawl-status"

func (e *ManageCrawls) Name() string { return NameManageCrawls }

func (e *ManageCrawls) Render(_ context.Context, page *render.Page, w io.Writer) error {
	status, err := helpers.Poller(page, helpers.PollerConfig{
		TargetID: crawlStatusTarget,
		URL:      adminURL(page, "crawlStatus"),
		Interval: e.settings.PollInterval,
		Timeout:  e.settings.PollTimeout,
		Initial:  page.T("managecrawls_loading"),
		Stopped:  page.T("polling_stopped"),
	})
	if err != nil {
		return err
	}
	view := manageCrawlsView{
		Form:   formTarget(page, "admin", "manageCrawls", "start"),
		Title:  page.T("managecrawls_title"),
		Status: status,
	}
	return renderView(page, NameManageCrawls, view, w)
}
