package bistro

import (
	"embed"
	"io/fs"
	"sort"
)

// EmbeddedAssets contains the static assets shipped with the site:
// bistro.css, motion.js and favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// AssetNames lists the embedded asset file names, sorted.
func AssetNames() []string {
	entries, err := fs.ReadDir(EmbeddedAssets, "embedded")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
