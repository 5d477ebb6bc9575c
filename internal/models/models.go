package models

// ImageRef points to a single image file inside a work's folder.
type ImageRef struct {
	Name string `json:"name"` // filename without extension
	Path string `json:"path"` // URL path the image is served under
}

// WorkItem represents one artwork in the catalogue.
//
// A WorkItem is assembled once at load time by merging the folder's metadata
// record with the images discovered next to it, and is never mutated after.
type WorkItem struct {
	Slug        string            `json:"slug"`
	Name        string            `json:"name"`
	City        string            `json:"city,omitempty"`
	Address     string            `json:"address,omitempty"`
	Year        int               `json:"year,omitempty"`        // 0 means unknown
	Month       int               `json:"month,omitempty"`       // 1-12, 0 means unknown
	Description map[string]string `json:"description,omitempty"` // locale -> text
	Album       []ImageRef        `json:"album"`
	MainImage   *ImageRef         `json:"main_image,omitempty"`
	SecondImage *ImageRef         `json:"second_image,omitempty"`
}

// Place returns the free-text geocoding query for the work, or "" if the
// work has neither an address nor a city.
func (w *WorkItem) Place() string {
	switch {
	case w.Address != "" && w.City != "":
		return w.Address + ", " + w.City
	case w.Address != "":
		return w.Address
	default:
		return w.City
	}
}

// GeoPoint is a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapMarker groups the works that resolve to the same rounded position.
type MapMarker struct {
	Position GeoPoint    `json:"position"`
	Works    []*WorkItem `json:"works"`
}

// TimelinePoint is one month slot on the timeline. Every year that has at
// least one dated work emits all 12 of its months, empty ones included, so
// the rendered path keeps uniform spacing.
type TimelinePoint struct {
	Year  int         `json:"year"`
	Month int         `json:"month"` // 1-12
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Works []*WorkItem `json:"works"`
}

// ViewMode is the works page display mode.
type ViewMode string

const (
	ViewGrid     ViewMode = "grid"
	ViewList     ViewMode = "list"
	ViewMap      ViewMode = "map"
	ViewTimeline ViewMode = "timeline"
)

// ViewModes lists the selectable modes in display order.
var ViewModes = []ViewMode{ViewGrid, ViewList, ViewMap, ViewTimeline}

// Valid reports whether v is one of the known view modes.
func (v ViewMode) Valid() bool {
	switch v {
	case ViewGrid, ViewList, ViewMap, ViewTimeline:
		return true
	}
	return false
}
