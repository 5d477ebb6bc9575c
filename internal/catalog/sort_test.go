package catalog

import (
	"testing"

	"github.com/rovira-studio/atelier/internal/models"
)

func slugs(works []*models.WorkItem) []string {
	out := make([]string, len(works))
	for i, w := range works {
		out[i] = w.Slug
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		works    []*models.WorkItem
		priority []string
		expected []string
	}{
		{
			name: "descending year, unknown last",
			works: []*models.WorkItem{
				{Slug: "a", Name: "A", Year: 2019},
				{Slug: "b", Name: "B"},
				{Slug: "c", Name: "C", Year: 2021},
			},
			priority: []string{},
			expected: []string{"c", "a", "b"},
		},
		{
			name: "year ties break by case-insensitive name",
			works: []*models.WorkItem{
				{Slug: "z", Name: "zebra", Year: 2020},
				{Slug: "o", Name: "Oliba", Year: 2020},
				{Slug: "l", Name: "lleó", Year: 2020},
			},
			priority: []string{},
			expected: []string{"l", "o", "z"},
		},
		{
			name: "priority slugs first in listed order regardless of year",
			works: []*models.WorkItem{
				{Slug: "zebra", Name: "Zebra", Year: 2020},
				{Slug: "oliba", Name: "Oliba", Year: 2019},
				{Slug: "lleo", Name: "Lleó"},
			},
			priority: []string{"lleo", "oliba"},
			expected: []string{"lleo", "oliba", "zebra"},
		},
		{
			name: "priority order is the listed order, not year order",
			works: []*models.WorkItem{
				{Slug: "oliba", Name: "Oliba", Year: 2025},
				{Slug: "lleo", Name: "Lleó", Year: 1999},
			},
			priority: []string{"lleo", "oliba"},
			expected: []string{"lleo", "oliba"},
		},
		{
			name: "unknown years tie-break by name",
			works: []*models.WorkItem{
				{Slug: "b", Name: "Balena"},
				{Slug: "a", Name: "àguila"},
			},
			priority: []string{},
			expected: []string{"b", "a"}, // bytewise lowercase comparison, accents sort after ascii
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Sort(tt.works, tt.priority)
			got := slugs(tt.works)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d works, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Position %d: expected %s, got %s (full order %v)", i, tt.expected[i], got[i], got)
				}
			}
		})
	}
}

func TestSortIsTotalOrder(t *testing.T) {
	works := []*models.WorkItem{
		{Slug: "w1", Name: "One", Year: 2018},
		{Slug: "lleo", Name: "Lleó", Year: 2001},
		{Slug: "w2", Name: "Two", Year: 2022},
		{Slug: "w3", Name: "Three"},
		{Slug: "oliba", Name: "Oliba"},
	}
	Sort(works, []string{"lleo", "oliba"})

	// Priority-listed slugs always precede non-listed slugs
	if works[0].Slug != "lleo" || works[1].Slug != "oliba" {
		t.Fatalf("Priority works not first: %v", slugs(works))
	}

	// Non-listed works hold strictly decreasing year order, unknown last
	rest := works[2:]
	for i := 1; i < len(rest); i++ {
		prev, cur := rest[i-1].Year, rest[i].Year
		if prev == 0 && cur != 0 {
			t.Errorf("Unknown year sorted before dated work at %d: %v", i, slugs(works))
		}
		if prev != 0 && cur != 0 && prev < cur {
			t.Errorf("Year order violated at %d: %d < %d", i, prev, cur)
		}
	}
}
