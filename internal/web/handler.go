package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/saulo-duarte/quizchat/internal/config"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Erro ao renderizar página inicial")
	}
}
