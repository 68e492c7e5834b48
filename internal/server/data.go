package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-elements/pkg/model"
)

// CommonData names the data merged under every element's data.
const CommonData = "common"

// DataSource supplies the controller data for a set of elements. Later
// names win over earlier ones.
type DataSource interface {
	Load(ctx context.Context, names ...string) (model.Data, error)
}

// MapDataSource serves data from memory.
type MapDataSource map[string]model.Data

func (m MapDataSource) Load(_ context.Context, names ...string) (model.Data, error) {
	out := model.Data{}
	for _, name := range append([]string{CommonData}, names...) {
		for key, value := range m[name] {
			out[key] = value
		}
	}
	return out, nil
}

// FileDataSource reads <dir>/<name>.yaml fixtures. Missing files contribute
// nothing.
type FileDataSource struct {
	Dir string
}

func (f FileDataSource) Load(ctx context.Context, names ...string) (model.Data, error) {
	out := model.Data{}
	for _, name := range append([]string{CommonData}, names...) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := f.read(name)
		if err != nil {
			return nil, err
		}
		for key, value := range data {
			out[key] = value
		}
	}
	return out, nil
}

func (f FileDataSource) read(name string) (model.Data, error) {
	if strings.TrimSpace(f.Dir) == "" {
		return nil, nil
	}
	for _, ext := range []string{".yaml", ".yml"} {
		raw, err := os.ReadFile(filepath.Join(f.Dir, name+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("server: read %s data: %w", name, err)
		}
		var data map[string]any
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("server: parse %s data: %w", name, err)
		}
		return model.Data(data), nil
	}
	return nil, nil
}
