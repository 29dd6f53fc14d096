// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	_ "embed"
	"html/template"
)

const (
	staticDir  = "static"
	scriptFile = "app.js"
	stylesFile = "styles.css"
)

//go:embed assets/app.js
var appScript string

//go:embed assets/styles.css
var appStyles string

// Script returns the client-side search and view-switching script.
func Script() template.JS {
	return template.JS(appScript)
}

// Styles returns the page stylesheet.
func Styles() template.CSS {
	return template.CSS(appStyles)
}
