package elements_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-elements/pkg/elements"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/testsupport"
)

func TestMachineStatusFromYAMLFixture(t *testing.T) {
	v := newView(t)
	data := testsupport.MustLoadData(t, filepath.Join("testdata", "machines.yaml"))

	out := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return v.Render(context.Background(), elements.NameMachineStatus, data, model.Request{}, w)
	})

	testsupport.AssertContains(t, out,
		"alpha", "Fetcher 0", "Not responding", "Mirror of alpha",
		"action=false&amp;arg=update&amp;fetcher_num=0",
	)
	testsupport.AssertNotContains(t, out, "csrf_token")
}
