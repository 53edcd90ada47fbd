// Package scaffold renders and materializes Quarto manual projects from a
// loaded manual spec.
//
// Rendering is pure: identical inputs always produce byte-identical output.
// Page templates live under templates/ as data and are expanded with
// text/template; the site configuration is yaml-marshalled from an ordered
// struct model.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"git.home.luguber.info/inful/qmanual/internal/spec"
)

//go:embed templates/*.qmd.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("qmd").Option("missingkey=error").ParseFS(templateFS, "templates/*.qmd.tmpl"))

// StubMarker tags generated stub pages so progress reporting can recognize
// pages whose content has not been written yet.
const StubMarker = "<!-- qmanual:todo -->"

// RenderHomePage produces the index.qmd document for a manual spec.
func RenderHomePage(m *spec.ManualSpec) (string, error) {
	return render("index.qmd.tmpl", map[string]any{"Title": m.Site.Title})
}

// RenderPage produces a stub page naming its owning section and source path.
func RenderPage(title, section, path string) (string, error) {
	return render("page.qmd.tmpl", map[string]any{"Title": title, "Section": section, "Path": path})
}

func render(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
