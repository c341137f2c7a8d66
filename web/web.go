// Package web embeds the dashboard page template and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates holds the parsed page templates, keyed by file name.
var Templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// IndexTemplate is the name of the dashboard page shell.
const IndexTemplate = "index.html"

// Static returns the static asset tree rooted at static/, so that
// "js/scripts.js" resolves to static/js/scripts.js.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the embed pattern above guarantees the directory exists
		panic(err)
	}
	return sub
}
