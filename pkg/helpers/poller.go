package helpers

import (
	"time"

	"github.com/goliatone/go-elements/pkg/render"
)

// Default polling cadence for status panels.
const (
	DefaultPollInterval = 30 * time.Second
	DefaultPollTimeout  = 20 * time.Minute
)

// PollerConfig describes a placeholder that is periodically refilled with a
// server rendered fragment. Polling stops for good after Timeout.
type PollerConfig struct {
	TargetID string
	URL      string
	Interval time.Duration
	Timeout  time.Duration
	// Initial is shown until the first fragment arrives.
	Initial string
	// Stopped is appended once polling ends.
	Stopped string
}

type pollerView struct {
	PollerConfig
	IntervalMS int64
	TimeoutMS  int64
}

// Poller renders the placeholder and its refresh script.
func Poller(page *render.Page, cfg PollerConfig) (string, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultPollTimeout
	}
	view := pollerView{
		PollerConfig: cfg,
		IntervalMS:   cfg.Interval.Milliseconds(),
		TimeoutMS:    cfg.Timeout.Milliseconds(),
	}
	return renderHelper(page, "helpers/poller", "poll", view)
}
