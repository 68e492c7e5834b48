package model

import (
	"encoding/json"
	"strings"
)

// Flag is a boolean that also decodes from 0/1 numbers and "true"/"on"
// strings, which is how controllers tend to serialise checkbox state.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = Flag(toBool(raw))
	return nil
}

// Activity is an entry of the admin activity menu.
type Activity struct {
	Method string `json:"METHOD_NAME"`
	Name   string `json:"ACTIVITY_NAME"`
}

// CrawlMix is a named combination of crawls that can serve as the index.
type CrawlMix struct {
	Timestamp string `json:"TIMESTAMP"`
	Name      string `json:"NAME"`
	Owner     string `json:"OWNER"`
	Fragments int    `json:"FRAGMENTS"`
}

// Crawl describes a previous crawl listed under the active crawl status.
type Crawl struct {
	Timestamp   string `json:"TIMESTAMP"`
	Description string `json:"DESCRIPTION"`
	Count       int64  `json:"COUNT"`
	Resumable   Flag   `json:"RESUMABLE"`
}

// CrawlStatus is the snapshot rendered by the polled crawl status fragment.
type CrawlStatus struct {
	Timestamp         string   `json:"TIMESTAMP"`
	Description       string   `json:"DESCRIPTION"`
	Status            string   `json:"CRAWL_STATUS"`
	VisitedURLs       int64    `json:"VISITED_URLS_COUNT"`
	TotalURLs         int64    `json:"COUNT"`
	PagesPerHour      float64  `json:"PAGES_PER_HOUR"`
	MostRecentFetcher string   `json:"MOST_RECENT_FETCHER"`
	MostRecentURLs    []string `json:"MOST_RECENT_URLS_SEEN"`
	MostRecentTime    int64    `json:"MOST_RECENT_TIMESTAMP"`
}

// Active reports whether a crawl is currently running.
func (s CrawlStatus) Active() bool {
	return strings.TrimSpace(s.Timestamp) != "" || strings.TrimSpace(s.Description) != ""
}

// MachineStatus holds the process states reported for a machine. Fetchers is
// keyed by fetcher number.
type MachineStatus struct {
	QueueServer Flag            `json:"QUEUE_SERVER"`
	Fetchers    map[string]Flag `json:"FETCHER"`
	NoResponse  Flag            `json:"NO_RESPONSE"`
}

// Machine is one row of the machine status table.
type Machine struct {
	Name           string        `json:"NAME"`
	URL            string        `json:"URL"`
	Channel        int           `json:"CHANNEL"`
	HasQueueServer Flag          `json:"HAS_QUEUE_SERVER"`
	NumFetchers    int           `json:"NUM_FETCHERS"`
	Parent         string        `json:"PARENT"`
	Statuses       MachineStatus `json:"STATUSES"`
}

// Advertisement is the ad selected for the current query.
type Advertisement struct {
	ID          string `json:"ID"`
	Name        string `json:"NAME"`
	Description string `json:"DESCRIPTION"`
	Destination string `json:"DESTINATION"`
}

// Empty reports whether there is nothing worth showing.
func (a Advertisement) Empty() bool {
	return strings.TrimSpace(a.Name) == "" && strings.TrimSpace(a.Description) == ""
}

// QueryStat is a query and how often it was issued within a period.
type QueryStat struct {
	Query string `json:"QUERY"`
	Count int64  `json:"COUNT"`
}

// Statistic periods in display order.
const (
	PeriodHour    = "ONE_HOUR"
	PeriodDay     = "ONE_DAY"
	PeriodMonth   = "ONE_MONTH"
	PeriodYear    = "ONE_YEAR"
	PeriodAllTime = "ALL_TIME"
)

// StatisticPeriods lists the known periods in display order.
var StatisticPeriods = []string{PeriodHour, PeriodDay, PeriodMonth, PeriodYear, PeriodAllTime}
