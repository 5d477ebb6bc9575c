package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/rovira-studio/atelier/internal/config"
	"github.com/rovira-studio/atelier/internal/models"
	"github.com/rovira-studio/atelier/internal/viewstate"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type pageData struct {
	Title      string
	Locale     string
	Locales    []string
	Contact    config.Contact
	Paragraphs []string
	Works      []*models.WorkItem
	Selected   *models.WorkItem
	State      *viewstate.State
	ViewModes  []models.ViewMode
}

func (h *Handler) renderPage(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Failed to render page", "template", name, "err", err)
	}
}

func (h *Handler) pageData(w http.ResponseWriter, r *http.Request) (pageData, *viewstate.State) {
	state := h.visitorState(w, r)
	return pageData{
		Title:     h.cfg.SiteTitle,
		Locale:    state.Locale,
		Locales:   h.cfg.Locales,
		Contact:   h.cfg.Contact,
		State:     state,
		ViewModes: models.ViewModes,
	}, state
}

// HandleHome serves the home page: looping studio video and contact details.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data, _ := h.pageData(w, r)
	h.renderPage(w, "home.html", data)
}

// HandleBio serves the artist biography page.
func (h *Handler) HandleBio(w http.ResponseWriter, r *http.Request) {
	data, state := h.pageData(w, r)
	data.Paragraphs = h.bio.Paragraphs(state.Locale)
	h.renderPage(w, "bio.html", data)
}

// HandleWorkshop serves the workshop gallery page.
func (h *Handler) HandleWorkshop(w http.ResponseWriter, r *http.Request) {
	data, state := h.pageData(w, r)
	data.Paragraphs = h.workshop.Paragraphs(state.Locale)
	h.renderPage(w, "workshop.html", data)
}

// HandleWorks serves the works catalogue page in the visitor's current view
// mode, with the detail drawer open on the selected work if any.
func (h *Handler) HandleWorks(w http.ResponseWriter, r *http.Request) {
	data, state := h.pageData(w, r)
	data.Works = h.works
	if state.Selected != "" {
		for _, work := range h.works {
			if work.Slug == state.Selected {
				data.Selected = work
				break
			}
		}
	}
	h.renderPage(w, "works.html", data)
}
