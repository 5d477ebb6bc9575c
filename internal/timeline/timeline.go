// Package timeline lays the dated works out on a month-by-month path.
package timeline

import (
	"sort"

	"github.com/rovira-studio/atelier/internal/models"
)

// Cell size of the serpentine layout, in rendered units.
const (
	CellWidth  = 96.0
	CellHeight = 140.0
)

// Build buckets dated works by (year, month) and returns one point per month
// of every populated year, newest year first, January through December
// within a year. Works with an unknown month are spread over their year's
// 12 slots by index so the path never clumps them on January.
func Build(works []*models.WorkItem) []models.TimelinePoint {
	dated := make(map[int]map[int][]*models.WorkItem) // year -> month -> works
	undated := make(map[int][]*models.WorkItem)       // year -> works without month

	for _, w := range works {
		if w.Year == 0 {
			continue
		}
		if w.Month >= 1 && w.Month <= 12 {
			if dated[w.Year] == nil {
				dated[w.Year] = make(map[int][]*models.WorkItem)
			}
			dated[w.Year][w.Month] = append(dated[w.Year][w.Month], w)
		} else {
			undated[w.Year] = append(undated[w.Year], w)
		}
	}

	// Spread month-less works across the year
	for year, ws := range undated {
		if dated[year] == nil {
			dated[year] = make(map[int][]*models.WorkItem)
		}
		for i, w := range ws {
			month := i*12/len(ws) + 1
			dated[year][month] = append(dated[year][month], w)
		}
	}

	years := make([]int, 0, len(dated))
	for year := range dated {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	points := make([]models.TimelinePoint, 0, len(years)*12)
	for row, year := range years {
		for month := 1; month <= 12; month++ {
			x, y := cellPosition(row, month)
			points = append(points, models.TimelinePoint{
				Year:  year,
				Month: month,
				X:     x,
				Y:     y,
				Works: dated[year][month],
			})
		}
	}
	return points
}

// cellPosition places a month cell on the serpentine path: one row per year,
// even rows running left to right, odd rows right to left so the path folds
// back on itself.
func cellPosition(row, month int) (x, y float64) {
	col := month - 1
	if row%2 == 1 {
		col = 11 - col
	}
	return float64(col) * CellWidth, float64(row) * CellHeight
}
