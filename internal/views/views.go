// Package views renders the dashboard's HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	AthleteList    = "athlete_list.html"
	AthleteDetail  = "athlete_detail.html"
	AthleteForm    = "athlete_form.html"
	AthleteHistory = "athlete_history.html"
	Login          = "login.html"
	Error          = "error.html"
)

// Define custom template functions
var funcMap = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("01/02/2006")
	},
	// Names and flashes are stored escaped; unescape them so the template
	// escapes them exactly once.
	"unescape": html.UnescapeString,
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
}

// Page carries what the shared header needs. Page data types embed it.
type Page struct {
	Title   string
	Flashes map[string][]string
}

// ErrorPage is the data of the Error page.
type ErrorPage struct {
	Page
	Message string
}

// LoginPage is the data of the Login page.
type LoginPage struct {
	Error string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses every embedded template.
func New() (*Renderer, error) {
	t, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page with the given status. The page is executed
// into a buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
