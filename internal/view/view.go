// Package view renders the server-side HTML pages.  Templates are embedded
// into the binary and parsed once; every user-supplied string must pass
// through Escape (exposed to templates as "escape") before it reaches markup.
package view

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ice-cream-parlor/internal/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Template names understood by Renderer.
const (
	LandingPage = "index.gohtml"
	FlavorsPage = "flavors.gohtml"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces &, <, > and " with their HTML entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

var funcs = template.FuncMap{
	// The result is already escaped, so html/template must not escape it again.
	"escape": func(s string) template.HTML { return template.HTML(Escape(s)) },
	"stamp":  func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	"display": func(t time.Time) string {
		return t.UTC().Format("Jan 2, 2006 15:04 UTC")
	},
}

// Renderer executes the embedded page templates.  It satisfies
// echo.Renderer so handlers can call c.Render.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates so each request only pays for execution.
func New() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// FlavorList is the data behind FlavorsPage.
type FlavorList struct {
	Flavors []*model.Flavor
}

// Count is the number of flavors shown in the header.
func (l FlavorList) Count() int { return len(l.Flavors) }

// CountText renders the header line, e.g. "1 flavor available".
func (l FlavorList) CountText() string {
	n := l.Count()
	noun := "flavors"
	if n == 1 {
		noun = "flavor"
	}
	return strconv.Itoa(n) + " " + noun + " available"
}
