// Package web holds the dashboard page templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded templates. It panics on a malformed
// template since that can only be a build-time mistake.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
