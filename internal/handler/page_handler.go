package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/kansah/site/internal/model"
	"github.com/kansah/site/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageFiles = []string{"index.html", "features.html", "about.html", "contact.html"}

// pageData is the value every template receives.
type pageData struct {
	Title    string
	Home     *model.HomeContent
	Features []*model.Feature
}

// PageHandler renders the public HTML pages.
type PageHandler struct {
	content service.ContentService
	pages   map[string]*template.Template
}

// NewPageHandler parses the embedded templates.
func NewPageHandler(content service.ContentService) (*PageHandler, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &PageHandler{content: content, pages: pages}, nil
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", pageData{Title: "Inicio", Home: h.content.Home(r.Context())})
}

// Features handles GET /Caracteristicas.
func (h *PageHandler) Features(w http.ResponseWriter, r *http.Request) {
	h.render(w, "features.html", pageData{Title: "Características", Features: h.content.Features(r.Context())})
}

// About handles GET /Acerca de.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html", pageData{Title: "Acerca de"})
}

// Contact handles GET /Contacto.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact.html", pageData{Title: "Contacto"})
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("render page failed", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// StaticFiles serves the embedded assets under /static/.
func StaticFiles() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
