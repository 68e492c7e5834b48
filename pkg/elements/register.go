package elements

import (
	"github.com/goliatone/go-elements/pkg/render"
)

// All returns every built-in element configured with settings.
func All(settings Settings) []render.Element {
	return []render.Element{
		&Nav{settings: settings},
		&Menu{},
		&Language{},
		&Appearance{},
		&Security{},
		&UserSettings{},
		&Classifiers{},
		&Mixes{},
		&ManageCrawls{settings: settings},
		&CrawlStatus{},
		&ManageMachines{settings: settings},
		&MachineStatus{},
		&Advertisement{placement: AdsTop, settings: settings},
		&Advertisement{placement: AdsSide, settings: settings},
		&QueryStats{},
		&Admin{settings: settings},
	}
}

// Register adds the built-in elements to reg.
func Register(reg *render.Registry, settings Settings) error {
	for _, element := range All(settings) {
		if err := reg.Register(element); err != nil {
			return err
		}
	}
	return nil
}
