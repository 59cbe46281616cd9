// Package renderer turns a parsed QIF aggregate into markdown reports.
package renderer

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// renderTemplate executes one of the embedded markdown templates.
func renderTemplate(name string, data any) (string, error) {
	t, err := template.New("").ParseFS(templates, "*.md")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
