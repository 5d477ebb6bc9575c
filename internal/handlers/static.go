package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
)

// HandleStatic serves front-end assets from the static directory.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	file := strings.TrimPrefix(r.URL.Path, "/static/")
	if file == "" || strings.Contains(file, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	// Set appropriate content type based on file extension
	switch {
	case strings.HasSuffix(file, ".css"):
		w.Header().Set("Content-Type", "text/css")
	case strings.HasSuffix(file, ".js"):
		w.Header().Set("Content-Type", "application/javascript")
	case strings.HasSuffix(file, ".html"):
		w.Header().Set("Content-Type", "text/html")
	}

	http.ServeFile(w, r, "static/"+file)
}

// HandleMedia serves content images and video from the content directory:
// /media/works/<slug>/<image> maps to <content>/works/<slug>/<image>,
// everything else under /media/ maps to <content>/media/.
func (h *Handler) HandleMedia(w http.ResponseWriter, r *http.Request) {
	file := strings.TrimPrefix(r.URL.Path, "/media/")
	if file == "" || strings.Contains(file, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	if strings.HasPrefix(file, "works/") {
		http.ServeFile(w, r, filepath.Join(h.cfg.ContentDir, filepath.FromSlash(file)))
		return
	}
	http.ServeFile(w, r, filepath.Join(h.cfg.ContentDir, "media", filepath.FromSlash(file)))
}
