package elements

import (
	"strings"
	"time"

	"github.com/goliatone/go-elements/pkg/helpers"
)

// AdLocation selects where advertisements may appear.
type AdLocation string

const (
	AdsNone AdLocation = "none"
	AdsTop  AdLocation = "top"
	AdsSide AdLocation = "side"
	AdsBoth AdLocation = "both"
)

// Covers reports whether ads are allowed in placement.
func (l AdLocation) Covers(placement AdLocation) bool {
	switch AdLocation(strings.ToLower(string(l))) {
	case AdsBoth:
		return placement == AdsTop || placement == AdsSide
	case AdsTop:
		return placement == AdsTop
	case AdsSide:
		return placement == AdsSide
	}
	return false
}

// Settings are the site-wide knobs elements read besides page data.
type Settings struct {
	SmallLogo    string
	MediumLogo   string
	Registration bool
	PollInterval time.Duration
	PollTimeout  time.Duration
	AdLocation   AdLocation
	// Activities maps an admin activity method to the element rendering it.
	Activities map[string]string
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		SmallLogo:    "logo-small.png",
		MediumLogo:   "logo-medium.png",
		Registration: true,
		PollInterval: helpers.DefaultPollInterval,
		PollTimeout:  helpers.DefaultPollTimeout,
		AdLocation:   AdsNone,
		Activities:   DefaultActivities(),
	}
}

// DefaultActivities maps the built-in admin activities to elements.
func DefaultActivities() map[string]string {
	return map[string]string{
		"manageCrawls":      NameManageCrawls,
		"crawlStatus":       NameCrawlStatus,
		"manageMachines":    NameManageMachines,
		"machineStatus":     NameMachineStatus,
		"manageClassifiers": NameClassifiers,
		"mixCrawls":         NameMixes,
		"appearance":        NameAppearance,
		"security":          NameSecurity,
		"queryStats":        NameQueryStats,
	}
}

// ElementFor returns the element for an activity method, or "".
func (s Settings) ElementFor(activity string) string {
	if s.Activities == nil {
		return ""
	}
	return s.Activities[strings.TrimSpace(activity)]
}
