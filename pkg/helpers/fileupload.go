package helpers

import (
	"strings"

	"github.com/goliatone/go-elements/pkg/render"
)

// FileUploadConfig describes a drop target bound to a file input.
type FileUploadConfig struct {
	ID   string
	Name string
	// Current is the URL of the file already stored, shown as a preview.
	Current      string
	Accept       string
	Label        string
	PreviewWidth int
}

// FileUpload renders the upload widget. Accept defaults to images.
func FileUpload(page *render.Page, cfg FileUploadConfig) (string, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = cfg.ID
	}
	if strings.TrimSpace(cfg.Accept) == "" {
		cfg.Accept = "image/*"
	}
	if cfg.Current != "" {
		cfg.Current = page.Asset(cfg.Current)
	}
	return renderHelper(page, "helpers/fileupload", "upload", cfg)
}
