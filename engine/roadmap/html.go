package roadmap

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateName is the gin template name for HTML roadmap rendering.
const TemplateName = "roadmap.html.tmpl"

// Templates parses the embedded roadmap templates for use with the gin
// HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}
