package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rovira-studio/atelier/internal/i18n"
	"github.com/rovira-studio/atelier/internal/models"
)

// Metadata is the per-work record read from work.json. Month accepts a
// number or a month name in either site locale ("maig", "May").
type Metadata struct {
	Name        string            `json:"name"`
	City        string            `json:"city"`
	Address     string            `json:"address"`
	Year        int               `json:"year"`
	Month       string            `json:"month"`
	Description map[string]string `json:"description"`
}

// MetadataFile is the metadata record's filename inside a work folder.
const MetadataFile = "work.json"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Loader builds the catalogue from a content directory.
type Loader struct {
	contentDir string
	priority   []string
}

// NewLoader creates a loader for contentDir. An empty priority list means
// DefaultPriority.
func NewLoader(contentDir string, priority []string) *Loader {
	if len(priority) == 0 {
		priority = DefaultPriority
	}
	return &Loader{contentDir: contentDir, priority: priority}
}

// Load discovers every work folder under <contentDir>/works, merges each
// record with its images, and returns the ordered catalogue.
func (l *Loader) Load() ([]*models.WorkItem, error) {
	worksDir := filepath.Join(l.contentDir, "works")

	entries, err := os.ReadDir(worksDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read works directory %s: %w", worksDir, err)
	}

	meta := make(map[string]*Metadata)
	albums := make(map[string][]models.ImageRef)
	seconds := make(map[string]models.ImageRef)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		slug := entry.Name()

		m, album, second, err := l.scanFolder(worksDir, slug)
		if err != nil {
			return nil, err
		}
		meta[slug] = m
		albums[slug] = album
		if second != nil {
			seconds[slug] = *second
		}
		slog.Debug("Scanned work folder", "slug", slug, "images", len(album), "has_metadata", m != nil)
	}

	works := Merge(meta, albums, seconds)
	Sort(works, l.priority)

	slog.Info("Catalogue loaded", "works", len(works), "folders", len(meta))
	return works, nil
}

// scanFolder reads one work folder: its optional metadata record, its album
// images and its optional secondary image. A missing or malformed work.json
// yields nil metadata; the folder is still usable through its images.
func (l *Loader) scanFolder(worksDir, slug string) (*Metadata, []models.ImageRef, *models.ImageRef, error) {
	dir := filepath.Join(worksDir, slug)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read work folder %s: %w", dir, err)
	}

	var meta *Metadata
	var album []models.ImageRef
	var second *models.ImageRef

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		if name == MetadataFile {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to read %s: %w", filepath.Join(dir, name), err)
			}
			var m Metadata
			if err := json.Unmarshal(data, &m); err != nil {
				slog.Warn("Malformed work metadata, using placeholder", "slug", slug, "error", err)
				continue
			}
			meta = &m
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if !imageExtensions[ext] {
			continue
		}

		ref := models.ImageRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: "/media/works/" + slug + "/" + name,
		}
		if strings.EqualFold(ref.Name, "second") {
			s := ref
			second = &s
			continue
		}
		album = append(album, ref)
	}

	return meta, album, second, nil
}

// Merge builds WorkItems from the three independently-keyed inputs, all
// keyed by folder slug. Works with no name, no main image and no album
// images are dropped. Pure transformation, no side effects.
func Merge(meta map[string]*Metadata, albums map[string][]models.ImageRef, seconds map[string]models.ImageRef) []*models.WorkItem {
	slugs := make(map[string]bool)
	for slug := range meta {
		slugs[slug] = true
	}
	for slug := range albums {
		slugs[slug] = true
	}

	var works []*models.WorkItem
	for slug := range slugs {
		work := buildWork(slug, meta[slug], albums[slug], seconds[slug])
		if work == nil {
			slog.Debug("Dropped empty work folder", "slug", slug)
			continue
		}
		works = append(works, work)
	}
	return works
}

func buildWork(slug string, m *Metadata, album []models.ImageRef, second models.ImageRef) *models.WorkItem {
	work := &models.WorkItem{
		Slug:  slug,
		Name:  slug,
		Album: SortAlbum(album),
	}

	if m != nil {
		if m.Name != "" {
			work.Name = m.Name
		}
		work.City = m.City
		work.Address = m.Address
		work.Year = m.Year
		work.Month = i18n.ParseMonth(m.Month)
		work.Description = m.Description
	}

	for i := range work.Album {
		if strings.EqualFold(work.Album[i].Name, "main") {
			work.MainImage = &work.Album[i]
			break
		}
	}
	if work.MainImage == nil && len(work.Album) > 0 {
		work.MainImage = &work.Album[0]
	}
	if second.Path != "" {
		s := second
		work.SecondImage = &s
	}

	// A folder with metadata but no name and no images carries nothing to
	// show; only named or illustrated works are retained.
	if (m == nil || m.Name == "") && work.MainImage == nil && len(work.Album) == 0 {
		return nil
	}
	return work
}

// SortAlbum orders album images: a file named exactly "main" first, then
// case-insensitive filename order.
func SortAlbum(album []models.ImageRef) []models.ImageRef {
	sorted := make([]models.ImageRef, len(album))
	copy(sorted, album)

	sort.SliceStable(sorted, func(i, j int) bool {
		iMain := strings.EqualFold(sorted[i].Name, "main")
		jMain := strings.EqualFold(sorted[j].Name, "main")
		if iMain != jMain {
			return iMain
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted
}

// Find returns the work with the given slug, or nil.
func Find(works []*models.WorkItem, slug string) *models.WorkItem {
	for _, w := range works {
		if w.Slug == slug {
			return w
		}
	}
	return nil
}
