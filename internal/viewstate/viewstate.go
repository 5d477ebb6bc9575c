// Package viewstate models the per-visitor UI state explicitly instead of
// as ambient globals, so every transition is testable.
package viewstate

import (
	"fmt"

	"github.com/rovira-studio/atelier/internal/models"
)

// State holds what a single visitor is currently looking at: language, works
// view mode, the selected work (detail drawer) and its carousel position.
type State struct {
	Locale   string          `json:"locale"`
	View     models.ViewMode `json:"view"`
	Selected string          `json:"selected,omitempty"` // work slug; "" means drawer closed
	Carousel int             `json:"carousel"`
	albumLen int
}

// New returns the initial state: given locale, grid view, nothing selected.
func New(locale string) *State {
	return &State{
		Locale: locale,
		View:   models.ViewGrid,
	}
}

// SetView switches the works display mode. Any mode is reachable from any
// other.
func (s *State) SetView(v models.ViewMode) error {
	if !v.Valid() {
		return fmt.Errorf("unknown view mode %q", v)
	}
	s.View = v
	return nil
}

// SetLocale switches the display language.
func (s *State) SetLocale(locale string, known func(string) bool) error {
	if !known(locale) {
		return fmt.Errorf("unknown locale %q", locale)
	}
	s.Locale = locale
	return nil
}

// Select opens the detail drawer on the given work and resets the carousel
// to the first image. Selecting "" closes the drawer.
func (s *State) Select(slug string, albumLen int) {
	s.Selected = slug
	s.Carousel = 0
	s.albumLen = albumLen
	if slug == "" {
		s.albumLen = 0
	}
}

// CarouselNext advances the carousel one image, wrapping to the first after
// the last.
func (s *State) CarouselNext() {
	if s.albumLen == 0 {
		return
	}
	s.Carousel = (s.Carousel + 1) % s.albumLen
}

// CarouselPrev steps the carousel back one image, wrapping to the last
// before the first.
func (s *State) CarouselPrev() {
	if s.albumLen == 0 {
		return
	}
	s.Carousel = (s.Carousel + s.albumLen - 1) % s.albumLen
}
