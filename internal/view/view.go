// Package view holds the HTML templates, embedded into the binary.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var files embed.FS

var funcs = template.FuncMap{
	"questionPath": func(id uint) string { return fmt.Sprintf("/questions/%d", id) },
	"date":         func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
}

// Templates parses every page and partial. Pages are looked up by the name
// given in their define block, e.g. "answer-create".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(files, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}
