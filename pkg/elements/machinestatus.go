package elements

import (
	"context"
	"io"
	"strconv"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// MachineStatus is the polled machine table. Each process gets an on/off
// toggle and a log link; unreachable machines only offer deletion.
type MachineStatus struct{}

type processView struct {
	Label  string
	On     bool
	Toggle Link
	Log    Link
}

type machineRow struct {
	Name        string
	URL         string
	MirrorOf    string
	Unreachable bool
	Processes   []processView
	Delete      Link
}

type machineStatusView struct {
	Rows  []machineRow
	Empty string
}

func (e *MachineStatus) Name() string { return NameMachineStatus }

func (e *MachineStatus) Render(_ context.Context, page *render.Page, w io.Writer) error {
	machines, _ := decodeSection[[]model.Machine](page.Data, model.KeyMachines)

	view := machineStatusView{}
	if len(machines) == 0 {
		view.Empty = page.T("machinestatus_none")
	}
	for _, machine := range machines {
		row := machineRow{
			Name:        machine.Name,
			URL:         machine.URL,
			MirrorOf:    machine.Parent,
			Unreachable: bool(machine.Statuses.NoResponse),
			Delete: Link{
				Label:   page.T("machinestatus_delete"),
				URL:     adminURL(page, "manageMachines", "arg", "deletemachine", "name", machine.Name),
				Class:   "delete",
				Confirm: page.T("machinestatus_confirm_delete", machine.Name),
			},
		}
		if !row.Unreachable && row.MirrorOf == "" {
			if machine.HasQueueServer {
				row.Processes = append(row.Processes, processFor(page, machine.Name, "QueueServer", -1,
					page.T("machinestatus_queue_server"), bool(machine.Statuses.QueueServer)))
			}
			for i := 0; i < machine.NumFetchers; i++ {
				id := strconv.Itoa(i)
				row.Processes = append(row.Processes, processFor(page, machine.Name, "Fetcher", i,
					page.T("machinestatus_fetcher", i), bool(machine.Statuses.Fetchers[id])))
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return renderView(page, NameMachineStatus, view, w)
}

func processFor(page *render.Page, machine, kind string, fetcher int, label string, on bool) processView {
	action := "true"
	toggleLabel := page.T("machinestatus_turn_on")
	if on {
		action = "false"
		toggleLabel = page.T("machinestatus_turn_off")
	}
	params := []string{"arg", "update", "name", machine, "type", kind, "action", action}
	logParams := []string{"arg", "log", "name", machine, "type", kind}
	if fetcher >= 0 {
		id := strconv.Itoa(fetcher)
		params = append(params, "fetcher_num", id)
		logParams = append(logParams, "fetcher_num", id)
	}
	return processView{
		Label:  label,
		On:     on,
		Toggle: Link{Label: toggleLabel, URL: adminURL(page, "manageMachines", params...), Class: "toggle"},
		Log:    Link{Label: page.T("machinestatus_log"), URL: adminURL(page, "manageMachines", logParams...), Class: "log"},
	}
}
