package catalog

import (
	"sort"
	"strings"

	"github.com/rovira-studio/atelier/internal/models"
)

// DefaultPriority is the curated order of signature works. It is a manual
// override table, not a sorting rule: a slug listed here always precedes
// every unlisted work, in this exact order, regardless of year.
var DefaultPriority = []string{
	"lleo",
	"oliba",
	"balena",
	"flamenc",
}

// Sort orders the catalogue in place: priority-listed slugs first, in listed
// order; the rest by descending year (unknown year last), ties broken by
// case-insensitive name.
func Sort(works []*models.WorkItem, priority []string) {
	rank := make(map[string]int, len(priority))
	for i, slug := range priority {
		rank[slug] = i
	}

	sort.SliceStable(works, func(i, j int) bool {
		ri, iListed := rank[works[i].Slug]
		rj, jListed := rank[works[j].Slug]

		if iListed != jListed {
			return iListed
		}
		if iListed {
			return ri < rj
		}

		yi, yj := works[i].Year, works[j].Year
		if yi != yj {
			// Unknown years (0) sort after every dated work.
			if yi == 0 {
				return false
			}
			if yj == 0 {
				return true
			}
			return yi > yj
		}

		return strings.ToLower(works[i].Name) < strings.ToLower(works[j].Name)
	})
}
