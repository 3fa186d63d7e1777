// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"hislight/internal/debounce"
	"hislight/internal/middleware"
)

//go:embed templates/public/*.html
var publicFS embed.FS

const templateDir = "templates/public"

// sharedTemplates are parsed into every page.
var sharedTemplates = []string{"base.html", "partials.html"}

// Site holds the chrome shared by every page.
type Site struct {
	Name             string
	KakaoURL         string
	ContactEmail     string
	UnicornProjectID string
}

// PageData holds all data passed to public templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active nav entry: "home", "housing", "life"
	Site      Site           // Injected by the renderer
	RequestID string         // Injected from the request context
	Data      map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
	site      Site
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout and the
// shared partials. When devMode is true, templates load the unminified
// HTMX build and show the demo link.
func New(devMode bool, site Site) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		site:      site,
		funcMap: template.FuncMap{
			// isDev returns true when the app runs in development mode.
			"isDev": func() bool {
				return devMode
			},
			// searchDelay is the hx-trigger quiet period for search input.
			"searchDelay": func() string {
				return fmt.Sprintf("%dms", debounce.DefaultDelay.Milliseconds())
			},
			"year": func() int {
				return time.Now().Year()
			},
			// query builds a fragment URL such as /housing/results?page=2.
			"query": func(base, key string, value any) string {
				return base + "?" + key + "=" + url.QueryEscape(fmt.Sprint(value))
			},
			"add": func(a, b int) int { return a + b },
		},
	}

	pages, err := fs.Glob(publicFS, templateDir+"/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	for _, page := range pages {
		name := path.Base(page)
		if isShared(name) {
			continue
		}

		files := make([]string, 0, len(sharedTemplates)+1)
		for _, s := range sharedTemplates {
			files = append(files, templateDir+"/"+s)
		}
		files = append(files, page)

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(publicFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

func isShared(name string) bool {
	for _, s := range sharedTemplates {
		if s == name {
			return true
		}
	}
	return false
}

// Has reports whether a page template exists.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Render executes a page into a buffer. An empty block renders the full
// layout; otherwise only the named block (e.g. "content", "results").
func (rn *Renderer) Render(name, block string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	data.Site = rn.site
	if block == "" {
		block = "base.html"
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, block, data); err != nil {
		return nil, fmt.Errorf("execute %s/%s: %w", name, block, err)
	}
	return buf.Bytes(), nil
}

// Page renders a full page or an HTMX partial, depending on the request
// headers. For HTMX requests, only the "content" block is sent.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, status int, data *PageData) {
	block := ""
	if IsHTMX(r) {
		block = "content"
	}
	rn.write(w, r, name, block, status, data)
}

// Partial renders one named block regardless of the request type.
func (rn *Renderer) Partial(w http.ResponseWriter, r *http.Request, name, block string, data *PageData) {
	rn.write(w, r, name, block, http.StatusOK, data)
}

func (rn *Renderer) write(w http.ResponseWriter, r *http.Request, name, block string, status int, data *PageData) {
	data.RequestID = middleware.RequestIDFromCtx(r.Context())

	body, err := rn.Render(name, block, data)
	if err != nil {
		slog.Error("render failed", "template", name, "block", block, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
