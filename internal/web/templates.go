package web

import (
	"embed"
	"html/template"
)

//go:embed templates/index.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/index.html")
}
