package elements

import (
	"context"
	"io"
	"strconv"

	"github.com/goliatone/go-elements/pkg/helpers"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// ManageMachines is the add-machine form plus the polled machine status
// placeholder.
type ManageMachines struct {
	settings Settings
}

type manageMachinesView struct {
	Form     FormTarget
	Title    string
	Fetchers string
	Parent   string
	Status   string
}

const (
	machineStatusTarget = "machine-status"
	maxFetchers         = 16
)

func (e *ManageMachines) Name() string { return NameManageMachines }

func (e *ManageMachines) Render(_ context.Context, page *render.Page, w io.Writer) error {
	counts := make([]string, 0, maxFetchers+1)
	for i := 0; i <= maxFetchers; i++ {
		counts = append(counts, strconv.Itoa(i))
	}
	fetchers, err := helpers.Select(page, helpers.SelectConfig{
		ID:       "num_fetchers",
		Options:  helpers.OptionsFromValues(counts...),
		Selected: "0",
	})
	if err != nil {
		return err
	}

	parents := []helpers.Option{{Value: "", Label: page.T("managemachines_no_parent")}}
	for _, name := range page.Data.Strings(model.KeyMachineNames) {
		parents = append(parents, helpers.Option{Value: name, Label: name})
	}
	parent, err := helpers.Select(page, helpers.SelectConfig{
		ID:      "parent",
		Options: parents,
	})
	if err != nil {
		return err
	}

	status, err := helpers.Poller(page, helpers.PollerConfig{
		TargetID: machineStatusTarget,
		URL:      adminURL(page, "machineStatus"),
		Interval: e.settings.PollInterval,
		Timeout:  e.settings.PollTimeout,
		Initial:  page.T("managemachines_loading"),
		Stopped:  page.T("polling_stopped"),
	})
	if err != nil {
		return err
	}

	view := manageMachinesView{
		Form:     formTarget(page, "admin", "manageMachines", "addmachine"),
		Title:    page.T("managemachines_title"),
		Fetchers: fetchers,
		Parent:   parent,
		Status:   status,
	}
	return renderView(page, NameManageMachines, view, w)
}
