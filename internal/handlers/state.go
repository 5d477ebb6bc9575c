package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rovira-studio/atelier/internal/catalog"
	"github.com/rovira-studio/atelier/internal/models"
)

// HandleState reads or updates the visitor's view state.
//
// GET returns the current state. POST accepts a partial update:
//
//	{"locale": "en", "view": "map", "selected": "lleo"}
//
// Absent fields are left untouched; "selected": "" closes the drawer.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	state := h.visitorState(w, r)

	switch r.Method {
	case "GET":
		h.writeJSON(w, state)
	case "POST":
		var req struct {
			Locale   *string `json:"locale"`
			View     *string `json:"view"`
			Selected *string `json:"selected"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}

		if req.Locale != nil {
			if err := state.SetLocale(*req.Locale, h.cfg.HasLocale); err != nil {
				h.writeError(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.View != nil {
			if err := state.SetView(models.ViewMode(*req.View)); err != nil {
				h.writeError(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.Selected != nil {
			slug := *req.Selected
			if slug == "" {
				state.Select("", 0)
			} else {
				work := catalog.Find(h.works, slug)
				if work == nil {
					h.writeError(w, "Work not found", http.StatusNotFound)
					return
				}
				state.Select(slug, len(work.Album))
			}
		}
		h.writeJSON(w, state)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleCarouselNext advances the open drawer's carousel with wraparound.
func (h *Handler) HandleCarouselNext(w http.ResponseWriter, r *http.Request) {
	h.carouselStep(w, r, true)
}

// HandleCarouselPrev steps the open drawer's carousel back with wraparound.
func (h *Handler) HandleCarouselPrev(w http.ResponseWriter, r *http.Request) {
	h.carouselStep(w, r, false)
}

func (h *Handler) carouselStep(w http.ResponseWriter, r *http.Request, forward bool) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := h.visitorState(w, r)
	if state.Selected == "" {
		h.writeError(w, "No work selected", http.StatusBadRequest)
		return
	}

	if forward {
		state.CarouselNext()
	} else {
		state.CarouselPrev()
	}
	h.writeJSON(w, state)
}
