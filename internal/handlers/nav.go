package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trexgame/landing/internal/apperror"
	"github.com/trexgame/landing/internal/logger"
	"github.com/trexgame/landing/internal/metrics"
	"github.com/trexgame/landing/internal/navstate"
	"github.com/trexgame/landing/internal/session"
)

// ScrollToHeader names the anchor the browser should smooth-scroll to.
const ScrollToHeader = "X-Scroll-To"

const maxScrollBody = 16 << 10

type scrollRequest struct {
	Offset   *float64        `json:"offset"`
	Sections navstate.Layout `json:"sections"`
}

// NavScroll applies a scroll event. It answers 204 when nothing visible
// changed, otherwise the re-rendered header.
func (h *Handler) NavScroll(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req scrollRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScrollBody))
	if err := dec.Decode(&req); err != nil {
		apperror.WriteError(w, r, h.log, apperror.NewBadRequest("Malformed scroll event").WithInternal(err))
		return
	}
	if req.Offset == nil {
		apperror.WriteError(w, r, h.log, apperror.NewValidation("offset", "offset is required"))
		return
	}

	var before, after navstate.State
	sess.Do(func(t *navstate.Tracker) {
		before = t.State()
		after = t.OnScroll(*req.Offset, req.Sections)
	})
	metrics.NavEvents.WithLabelValues(metrics.NavScroll).Inc()

	if after == before {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeHeader(w, after, "")
}

// NavMenu toggles the mobile overlay.
func (h *Handler) NavMenu(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var state navstate.State
	sess.Do(func(t *navstate.Tracker) { state = t.ToggleMenu() })
	metrics.NavEvents.WithLabelValues(metrics.NavMenu).Inc()

	h.writeHeader(w, state, "")
}

// NavDismiss closes the mobile overlay, e.g. on a tap outside the links or
// when the viewport grows past the mobile breakpoint.
func (h *Handler) NavDismiss(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var state navstate.State
	sess.Do(func(t *navstate.Tracker) { state = t.Dismiss() })
	metrics.NavEvents.WithLabelValues(metrics.NavDismiss).Inc()

	h.writeHeader(w, state, "")
}

// NavSelect closes the overlay and tells the browser which anchor to scroll
// to through the X-Scroll-To header.
func (h *Handler) NavSelect(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "section")

	var (
		state navstate.State
		err   error
	)
	anchor := sess.Do(func(t *navstate.Tracker) { state, err = t.SelectSection(id) })
	if errors.Is(err, navstate.ErrUnknownSection) {
		apperror.WriteError(w, r, h.log, apperror.ErrSectionNotFound.WithMessage("Section '"+id+"' not found"))
		return
	}
	metrics.NavEvents.WithLabelValues(metrics.NavSelect).Inc()

	h.writeHeader(w, state, anchor)
}

// NavDispose ends the page's session. Browsers call it with sendBeacon while
// the page unloads, so it always answers 204.
func (h *Handler) NavDispose(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(CookieName); err == nil {
		if h.store.Dispose(c.Value) {
			metrics.NavEvents.WithLabelValues(metrics.NavDispose).Inc()
		}
	}
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		apperror.WriteError(w, r, h.log, apperror.ErrSessionNotFound)
		return nil, false
	}
	sess, ok := h.store.Get(c.Value)
	if !ok {
		h.clearSessionCookie(w)
		apperror.WriteError(w, r, h.log, apperror.ErrSessionNotFound)
		return nil, false
	}
	return sess, true
}

func (h *Handler) writeHeader(w http.ResponseWriter, state navstate.State, scrollTo string) {
	if scrollTo != "" {
		w.Header().Set(ScrollToHeader, "#"+scrollTo)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.header(state).Render(w); err != nil {
		h.log.Error("render header", logger.Error(err))
	}
}
