package elements

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/css/*.css pkg/runtime/assets/js/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeAssetsFS exposes the stylesheet and script the page layout links
// to, so Go applications can serve them without a front-end build step.
//
// Typical mount:
//
//	router.PathPrefix("/assets/").Handler(
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(elements.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
