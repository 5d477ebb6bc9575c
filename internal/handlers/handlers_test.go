package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rovira-studio/atelier/internal/config"
	"github.com/rovira-studio/atelier/internal/geocode"
	"github.com/rovira-studio/atelier/internal/i18n"
	"github.com/rovira-studio/atelier/internal/models"
)

func testWorks() []*models.WorkItem {
	lleo := &models.WorkItem{
		Slug: "lleo", Name: "Lleó", City: "Girona", Year: 2020,
		Album: []models.ImageRef{
			{Name: "main", Path: "/media/works/lleo/main.jpg"},
			{Name: "costat", Path: "/media/works/lleo/costat.jpg"},
			{Name: "detall", Path: "/media/works/lleo/detall.jpg"},
		},
		Description: map[string]string{"ca": "Un lleó de ferro."},
	}
	lleo.MainImage = &lleo.Album[0]
	return []*models.WorkItem{
		lleo,
		{Slug: "oliba", Name: "Oliba", Year: 2019},
	}
}

func newTestHandler(t *testing.T, geocoderURL string) *Handler {
	t.Helper()
	cfg := config.Default()
	cfg.CacheFile = filepath.Join(t.TempDir(), "cache.json")

	resolver := geocode.NewResolver(
		geocode.NewClient(geocoderURL, "test-agent"),
		geocode.OpenCache(cfg.CacheFile),
		0,
	)

	bio := i18n.Corpus{"ca": {"Biografia."}, "en": {"Biography."}}
	workshop := i18n.Corpus{"ca": {"El taller."}}

	return New(cfg, testWorks(), resolver, bio, workshop)
}

// doJSON performs a request carrying the visitor cookie from a previous
// response, decoding the JSON body into out.
func doJSON(t *testing.T, handler http.HandlerFunc, method, path, body string, cookies []*http.Cookie, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	handler(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("Failed to decode response: %v (body %s)", err, rec.Body.String())
		}
	}
	return rec
}

func TestHandleWorksAPI(t *testing.T) {
	h := newTestHandler(t, "")

	var works []*models.WorkItem
	rec := doJSON(t, h.HandleWorksAPI, "GET", "/api/works", "", nil, &works)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(works) != 2 || works[0].Slug != "lleo" {
		t.Errorf("Unexpected catalogue: %+v", works)
	}
}

func TestHandleWorkDetail(t *testing.T) {
	h := newTestHandler(t, "")

	var work models.WorkItem
	rec := doJSON(t, h.HandleWorkDetail, "GET", "/api/works/lleo", "", nil, &work)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if work.Name != "Lleó" || len(work.Album) != 3 {
		t.Errorf("Unexpected work: %+v", work)
	}

	rec = doJSON(t, h.HandleWorkDetail, "GET", "/api/works/desconegut", "", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown slug, got %d", rec.Code)
	}
}

func TestHandleConfig(t *testing.T) {
	h := newTestHandler(t, "")

	var cfg map[string]interface{}
	rec := doJSON(t, h.HandleConfig, "GET", "/api/config", "", nil, &cfg)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if cfg["site_title"] == "" {
		t.Error("Expected site title in config")
	}
	modes, ok := cfg["view_modes"].([]interface{})
	if !ok || len(modes) != 4 {
		t.Errorf("Expected 4 view modes, got %v", cfg["view_modes"])
	}
}

func TestStateFlow(t *testing.T) {
	h := newTestHandler(t, "")

	// First contact creates the visitor cookie and default state
	var state map[string]interface{}
	rec := doJSON(t, h.HandleState, "GET", "/api/state", "", nil, &state)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Expected visitor cookie on first contact")
	}
	if state["view"] != "grid" {
		t.Errorf("Expected default grid view, got %v", state["view"])
	}
	if state["locale"] != "ca" {
		t.Errorf("Expected default locale ca, got %v", state["locale"])
	}

	// Switch view and locale
	rec = doJSON(t, h.HandleState, "POST", "/api/state", `{"view":"map","locale":"en"}`, cookies, &state)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}
	if state["view"] != "map" || state["locale"] != "en" {
		t.Errorf("Unexpected state after update: %v", state)
	}

	// State persists across requests for the same visitor
	doJSON(t, h.HandleState, "GET", "/api/state", "", cookies, &state)
	if state["view"] != "map" {
		t.Errorf("Expected view to persist, got %v", state["view"])
	}

	// A different visitor starts fresh
	var fresh map[string]interface{}
	doJSON(t, h.HandleState, "GET", "/api/state", "", nil, &fresh)
	if fresh["view"] != "grid" {
		t.Errorf("Expected fresh visitor to get grid, got %v", fresh["view"])
	}

	// Invalid updates are rejected
	rec = doJSON(t, h.HandleState, "POST", "/api/state", `{"view":"cube"}`, cookies, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown view, got %d", rec.Code)
	}
	rec = doJSON(t, h.HandleState, "POST", "/api/state", `{"locale":"de"}`, cookies, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown locale, got %d", rec.Code)
	}
}

func TestCarouselEndpoints(t *testing.T) {
	h := newTestHandler(t, "")

	var state map[string]interface{}
	rec := doJSON(t, h.HandleState, "POST", "/api/state", `{"selected":"lleo"}`, nil, &state)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if state["carousel"].(float64) != 0 {
		t.Errorf("Expected carousel 0 after select, got %v", state["carousel"])
	}

	// Wrap backward to the last album image
	doJSON(t, h.HandleCarouselPrev, "POST", "/api/state/carousel/prev", "", cookies, &state)
	if state["carousel"].(float64) != 2 {
		t.Errorf("Expected wraparound to 2, got %v", state["carousel"])
	}

	// Forward wraps back to 0
	doJSON(t, h.HandleCarouselNext, "POST", "/api/state/carousel/next", "", cookies, &state)
	if state["carousel"].(float64) != 0 {
		t.Errorf("Expected wrap to 0, got %v", state["carousel"])
	}

	// Selecting another work resets the index
	doJSON(t, h.HandleCarouselNext, "POST", "/api/state/carousel/next", "", cookies, &state)
	doJSON(t, h.HandleState, "POST", "/api/state", `{"selected":"oliba"}`, cookies, &state)
	if state["carousel"].(float64) != 0 {
		t.Errorf("Expected reset on selection change, got %v", state["carousel"])
	}

	// Unknown selection is a 404
	rec = doJSON(t, h.HandleState, "POST", "/api/state", `{"selected":"desconegut"}`, cookies, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown selection, got %d", rec.Code)
	}

	// Carousel without a selection is a 400
	rec = doJSON(t, h.HandleState, "POST", "/api/state", `{"selected":""}`, cookies, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 closing drawer, got %d", rec.Code)
	}
	rec = doJSON(t, h.HandleCarouselNext, "POST", "/api/state/carousel/next", "", cookies, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 with no selection, got %d", rec.Code)
	}
}

func TestHandleMap(t *testing.T) {
	geocoder := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "Girona" {
			w.Write([]byte(`[{"lat":"41.9794","lon":"2.8214"}]`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer geocoder.Close()

	h := newTestHandler(t, geocoder.URL)

	var markers []models.MapMarker
	rec := doJSON(t, h.HandleMap, "GET", "/api/map", "", nil, &markers)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	// Only lleo has a place; oliba is silently absent
	if len(markers) != 1 {
		t.Fatalf("Expected 1 marker, got %d", len(markers))
	}
	if len(markers[0].Works) != 1 || markers[0].Works[0].Slug != "lleo" {
		t.Errorf("Unexpected marker contents: %+v", markers[0])
	}
}

func TestHandleTimeline(t *testing.T) {
	h := newTestHandler(t, "")

	var points []models.TimelinePoint
	rec := doJSON(t, h.HandleTimeline, "GET", "/api/timeline", "", nil, &points)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	// Two populated years emit 24 month slots
	if len(points) != 24 {
		t.Fatalf("Expected 24 timeline points, got %d", len(points))
	}
}

func TestPagesRender(t *testing.T) {
	h := newTestHandler(t, "")

	pages := []struct {
		name    string
		handler http.HandlerFunc
		path    string
		expect  string
	}{
		{name: "home", handler: h.HandleHome, path: "/", expect: "video"},
		{name: "bio", handler: h.HandleBio, path: "/bio", expect: "Biografia."},
		{name: "workshop", handler: h.HandleWorkshop, path: "/workshop", expect: "El taller."},
		{name: "works", handler: h.HandleWorks, path: "/works", expect: "Lleó"},
	}

	for _, tt := range pages {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			rec := httptest.NewRecorder()
			tt.handler(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Expected HTML content type, got %s", ct)
			}
			if !strings.Contains(rec.Body.String(), tt.expect) {
				t.Errorf("Expected page to contain %q", tt.expect)
			}
		})
	}
}

func TestHandleHomeNotFound(t *testing.T) {
	h := newTestHandler(t, "")

	req := httptest.NewRequest("GET", "/no-such-page", nil)
	rec := httptest.NewRecorder()
	h.HandleHome(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", rec.Code)
	}
}

func TestWorksPageDrawer(t *testing.T) {
	h := newTestHandler(t, "")

	// Select a work, then the works page renders its drawer
	rec := doJSON(t, h.HandleState, "POST", "/api/state", `{"selected":"lleo"}`, nil, nil)
	cookies := rec.Result().Cookies()

	req := httptest.NewRequest("GET", "/works", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	page := httptest.NewRecorder()
	h.HandleWorks(page, req)

	body := page.Body.String()
	if !strings.Contains(body, "drawer") {
		t.Error("Expected drawer markup for selected work")
	}
	if !strings.Contains(body, "Un lleó de ferro.") {
		t.Error("Expected localized description in drawer")
	}
}
