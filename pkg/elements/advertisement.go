package elements

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Advertisement renders the ad chosen for the current query in one
// placement. Nothing is written when ads are disabled for the placement, on
// landing pages, or when there is no ad.
type Advertisement struct {
	placement AdLocation
	settings  Settings
}

type advertisementView struct {
	Placement   string
	Name        string
	Description string
	Destination string
	Label       string
}

func (e *Advertisement) Name() string {
	if e.placement == AdsSide {
		return NameSideAd
	}
	return NameTopAd
}

func (e *Advertisement) Render(_ context.Context, page *render.Page, w io.Writer) error {
	if !e.settings.AdLocation.Covers(e.placement) {
		return nil
	}
	if page.Request.Landing || page.Data.Bool(model.KeyLanding) {
		return nil
	}
	if e.placement == AdsSide && page.Mobile() {
		return nil
	}
	ad, ok := decodeSection[model.Advertisement](page.Data, model.KeyAdvertisement)
	if !ok || ad.Empty() {
		return nil
	}
	view := advertisementView{
		Placement:   string(e.placement),
		Name:        ad.Name,
		Description: ad.Description,
		Destination: safeDestination(ad.Destination),
		Label:       page.T("advertisement_label"),
	}
	return renderView(page, "advertisement", view, w)
}

// safeDestination keeps http(s) URLs only.
func safeDestination(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.String()
	}
	return ""
}
