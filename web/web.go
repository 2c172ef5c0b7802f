// Package web embeds the wheel page, the staff pages and their assets.
package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates static
var assets embed.FS

// Pages lists the templates the handlers parse, relative to the templates root
var Pages = []string{"index.html", "staff/login.html", "staff/panel.html"}

// Assets lists the scripts and styles the pages load, relative to the static root
var Assets = []string{"css/wheel.css", "js/wheel.js", "js/staff.js"}

// GetTemplatesFS returns the embedded templates rooted at templates/
func GetTemplatesFS() fs.FS {
	return subtree("templates")
}

// GetStaticFS returns the embedded assets rooted at static/
func GetStaticFS() fs.FS {
	return subtree("static")
}

// Check reports the first page or asset missing from the bundle
func Check() error {
	if err := requireFiles(GetTemplatesFS(), Pages); err != nil {
		return fmt.Errorf("template %w", err)
	}
	if err := requireFiles(GetStaticFS(), Assets); err != nil {
		return fmt.Errorf("asset %w", err)
	}
	return nil
}

func requireFiles(fsys fs.FS, names []string) error {
	for _, name := range names {
		if _, err := fs.Stat(fsys, name); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func subtree(dir string) fs.FS {
	sub, err := fs.Sub(assets, dir)
	if err != nil {
		panic(err) // dir is a compile-time constant
	}
	return sub
}
