package navstate

import "errors"

// ErrUnknownSection is returned when a selection names no configured section.
var ErrUnknownSection = errors.New("unknown section")

// Scroller asks the rendering layer to smooth-scroll to an anchor.
type Scroller interface {
	ScrollTo(anchor string)
}

// Tracker owns the navigation state of one page session.
//
// A Tracker is not safe for concurrent use. Events for one page arrive on a
// single event loop; callers that fan in from several goroutines must
// serialize access themselves.
type Tracker struct {
	sections []Section
	byID     map[string]Section
	scroller Scroller
	state    State
	disposed bool
}

// NewTracker creates a Tracker in its initial state: not scrolled, no active
// section, menu closed.
func NewTracker(sections []Section, scroller Scroller) *Tracker {
	byID := make(map[string]Section, len(sections))
	for _, s := range sections {
		byID[s.ID] = s
	}
	return &Tracker{
		sections: append([]Section(nil), sections...),
		byID:     byID,
		scroller: scroller,
	}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Sections returns the configured sections in order.
func (t *Tracker) Sections() []Section {
	return append([]Section(nil), t.sections...)
}

// OnScroll applies a scroll event.
func (t *Tracker) OnScroll(offsetY float64, geo Geometry) State {
	if t.disposed {
		return t.state
	}
	t.state = Scroll(t.state, offsetY, t.sections, geo)
	return t.state
}

// ToggleMenu flips the mobile overlay.
func (t *Tracker) ToggleMenu() State {
	if t.disposed {
		return t.state
	}
	t.state = t.state.ToggleMenu()
	return t.state
}

// Dismiss closes the mobile overlay without selecting a section.
func (t *Tracker) Dismiss() State {
	if t.disposed {
		return t.state
	}
	t.state = t.state.CloseMenu()
	return t.state
}

// SelectSection closes the overlay and asks the rendering layer to scroll to
// the section. The active section is left to the scroll events that follow.
// A disposed Tracker still closes the overlay but no longer scrolls.
func (t *Tracker) SelectSection(id string) (State, error) {
	s, ok := t.byID[id]
	if !ok {
		return t.state, ErrUnknownSection
	}
	t.state = t.state.CloseMenu()
	if !t.disposed && t.scroller != nil {
		t.scroller.ScrollTo(s.Anchor)
	}
	return t.state, nil
}

// Dispose detaches the Tracker from the rendering layer. Later scroll and
// menu events leave the state untouched.
func (t *Tracker) Dispose() {
	t.disposed = true
	t.scroller = nil
}

// Disposed reports whether Dispose has been called.
func (t *Tracker) Disposed() bool {
	return t.disposed
}
