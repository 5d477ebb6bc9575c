package handlers

import (
	"net/http"

	"github.com/rovira-studio/atelier/internal/geocode"
	"github.com/rovira-studio/atelier/internal/models"
	"github.com/rovira-studio/atelier/internal/timeline"
)

// HandleMap returns composite map markers for every work that geocodes.
// Resolution is best-effort: works that fail to resolve are simply absent.
func (h *Handler) HandleMap(w http.ResponseWriter, r *http.Request) {
	located := h.resolver.ResolveAll(r.Context(), h.works)
	markers := geocode.GroupMarkers(located)
	if markers == nil {
		markers = []models.MapMarker{}
	}
	h.writeJSON(w, markers)
}

// HandleTimeline returns the month-by-month timeline points with their path
// coordinates.
func (h *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, timeline.Build(h.works))
}
