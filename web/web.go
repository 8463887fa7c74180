// Package web embeds the browser lookup form.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets returns the form's static files rooted at the static directory.
func Assets() (fs.FS, error) {
	return fs.Sub(static, "static")
}

// Index returns the form page.
func Index() ([]byte, error) {
	return static.ReadFile("static/index.html")
}
