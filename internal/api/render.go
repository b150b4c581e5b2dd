package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/clients"
	"github.com/mwhite7112/woodpantry-recipefinder/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type indexPage struct {
	Title         string
	Query         string
	Idea          string
	Recipes       []service.RecipeSummary
	NoResults     bool
	RandomRecipes []service.RecipeSummary
}

type recipePage struct {
	Title string
	Meal  clients.Meal
}

// render executes the named template into a buffer first so a template error
// never leaves a half-written page.
func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("render template failed", "template", name, "request_id", RequestIDFromContext(r.Context()), "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes()) //nolint:errcheck
}
