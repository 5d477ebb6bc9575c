package handlers

import (
	"net/http"
	"strings"

	"github.com/rovira-studio/atelier/internal/models"
)

// HandleConfig returns the site metadata the front-end needs.
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	config := map[string]interface{}{
		"site_title": h.cfg.SiteTitle,
		"contact":    h.cfg.Contact,
		"locales":    h.cfg.Locales,
		"view_modes": models.ViewModes,
	}
	h.writeJSON(w, config)
}

// HandleWorksAPI returns the full ordered catalogue.
func (h *Handler) HandleWorksAPI(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.works)
}

// HandleWorkDetail returns a single work by slug.
func (h *Handler) HandleWorkDetail(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/works/")

	for _, work := range h.works {
		if work.Slug == slug {
			h.writeJSON(w, work)
			return
		}
	}
	h.writeError(w, "Work not found", http.StatusNotFound)
}
