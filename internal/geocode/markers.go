package geocode

import (
	"fmt"
	"math"

	"github.com/rovira-studio/atelier/internal/models"
)

// GroupMarkers collapses works whose coordinates round to the same position
// (4 decimal places, roughly 11 meters) into one composite marker. Marker
// order follows first appearance in the input.
func GroupMarkers(located []Located) []models.MapMarker {
	var markers []models.MapMarker
	index := make(map[string]int)

	for _, loc := range located {
		pt := models.GeoPoint{
			Lat: round4(loc.Point.Lat),
			Lon: round4(loc.Point.Lon),
		}
		key := fmt.Sprintf("%.4f,%.4f", pt.Lat, pt.Lon)

		if i, ok := index[key]; ok {
			markers[i].Works = append(markers[i].Works, loc.Work)
			continue
		}
		index[key] = len(markers)
		markers = append(markers, models.MapMarker{
			Position: pt,
			Works:    []*models.WorkItem{loc.Work},
		})
	}
	return markers
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
