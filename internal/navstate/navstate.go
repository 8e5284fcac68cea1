// Package navstate tracks which page section is in view and whether the
// mobile navigation overlay is open.
//
// The core is the pure reducer Scroll. Tracker wraps it as an owned object
// with a create/dispose lifecycle so callers never share ambient state.
package navstate

import "math"

const (
	// ScrollThreshold is the offset past which the header switches to its
	// scrolled variant.
	ScrollThreshold = 50.0

	// ProbeBias is added to the scroll offset before matching sections, so a
	// section becomes active slightly before it reaches the viewport top.
	ProbeBias = 100.0
)

// Section is a named, anchorable region of the page.
type Section struct {
	ID     string
	Anchor string
	Label  string
}

// Href returns the in-page link for the section.
func (s Section) Href() string {
	return "#" + s.Anchor
}

// Rect is the vertical geometry of a rendered section.
type Rect struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether y lies in [Top, Top+Height).
func (r Rect) Contains(y float64) bool {
	return y >= r.Top && y < r.Top+r.Height
}

// Geometry looks up the rendered geometry of a section by anchor id.
type Geometry interface {
	Lookup(anchor string) (Rect, bool)
}

// Layout is a Geometry backed by a map, as reported by the browser.
type Layout map[string]Rect

// Lookup implements Geometry.
func (l Layout) Lookup(anchor string) (Rect, bool) {
	r, ok := l[anchor]
	return r, ok
}

// State is the UI-relevant view of the navigation.
type State struct {
	Scrolled      bool
	ActiveSection string
	MenuOpen      bool
}

// IsActive reports whether id is the active section.
func (s State) IsActive(id string) bool {
	return s.ActiveSection != "" && s.ActiveSection == id
}

// Scroll derives the next state from a scroll offset. Sections missing from
// geometry are skipped. The first section containing the probe wins; when
// none does, ActiveSection keeps its prior value.
func Scroll(prev State, offsetY float64, sections []Section, geo Geometry) State {
	offsetY = normalizeOffset(offsetY)

	next := prev
	next.Scrolled = offsetY > ScrollThreshold

	if geo == nil {
		return next
	}

	probe := offsetY + ProbeBias
	for _, s := range sections {
		r, ok := geo.Lookup(s.Anchor)
		if !ok {
			continue
		}
		if r.Contains(probe) {
			next.ActiveSection = s.ID
			break
		}
	}
	return next
}

// ToggleMenu flips the mobile overlay.
func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// CloseMenu closes the mobile overlay.
func (s State) CloseMenu() State {
	s.MenuOpen = false
	return s
}

// normalizeOffset clamps overscroll (negative offsets reported by elastic
// scrolling) and non-finite values to zero.
func normalizeOffset(y float64) float64 {
	if math.IsNaN(y) || math.IsInf(y, 0) || y < 0 {
		return 0
	}
	return y
}
