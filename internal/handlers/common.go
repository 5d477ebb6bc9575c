package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rovira-studio/atelier/internal/config"
	"github.com/rovira-studio/atelier/internal/geocode"
	"github.com/rovira-studio/atelier/internal/i18n"
	"github.com/rovira-studio/atelier/internal/models"
	"github.com/rovira-studio/atelier/internal/storage"
	"github.com/rovira-studio/atelier/internal/viewstate"
)

const visitorCookie = "atelier_visitor"

type Handler struct {
	cfg        *config.Config
	works      []*models.WorkItem
	resolver   *geocode.Resolver
	stateStore *storage.StateStore
	bio        i18n.Corpus
	workshop   i18n.Corpus
}

func New(cfg *config.Config, works []*models.WorkItem, resolver *geocode.Resolver, bio, workshop i18n.Corpus) *Handler {
	return &Handler{
		cfg:        cfg,
		works:      works,
		resolver:   resolver,
		stateStore: storage.New(),
		bio:        bio,
		workshop:   workshop,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// visitorState returns the view state for the request's visitor, creating
// the visitor cookie and a fresh state on first contact.
func (h *Handler) visitorState(w http.ResponseWriter, r *http.Request) *viewstate.State {
	if cookie, err := r.Cookie(visitorCookie); err == nil {
		if state, ok := h.stateStore.Get(cookie.Value); ok {
			return state
		}
	}

	id := newVisitorID()
	state := viewstate.New(h.cfg.DefaultLocale())
	h.stateStore.Set(id, state)

	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

func newVisitorID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}
