// Package render turns board view models into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"contributorsboard/internal/adapters/twitter"
	"contributorsboard/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageAwards = "awards"
	PagePeople = "people"
)

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout and detail partials.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"roleLabel": func(r domain.Role) string { return string(r) },
		"townHall": func(id int) string {
			if id == domain.AllTownHalls {
				return "All"
			}
			return fmt.Sprintf("#%d", id)
		},
		"join": func(roles []domain.Role) string {
			parts := make([]string, len(roles))
			for i, r := range roles {
				parts[i] = string(r)
			}
			return strings.Join(parts, ", ")
		},
		"profileURL":  twitter.ProfileURL,
		"timelineURL": twitter.TimelineURL,
		"add":         func(a, b int) int { return a + b },
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageAwards, PagePeople} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/detail.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render executes page with data and writes the result to w. Nothing is
// written if execution fails.
func (r *Renderer) Render(w io.Writer, page string, data *Page) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticFS returns the stylesheet, script and placeholder images served under /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
