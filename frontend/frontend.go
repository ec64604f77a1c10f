// Package frontend embeds the booking page template and its static assets.
package frontend

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed css js
var assets embed.FS

// Templates parses the page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}

// CSS returns the stylesheet directory
func CSS() fs.FS {
	sub, _ := fs.Sub(assets, "css")
	return sub
}

// JS returns the script directory
func JS() fs.FS {
	sub, _ := fs.Sub(assets, "js")
	return sub
}
