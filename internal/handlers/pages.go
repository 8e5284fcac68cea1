package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	g "maragu.dev/gomponents"

	"github.com/trexgame/landing/internal/components"
	"github.com/trexgame/landing/internal/config"
	"github.com/trexgame/landing/internal/content"
	"github.com/trexgame/landing/internal/logger"
	"github.com/trexgame/landing/internal/metrics"
	"github.com/trexgame/landing/internal/navstate"
	"github.com/trexgame/landing/internal/session"
)

// CookieName carries the navigation session id.
const CookieName = "trex_nav"

type Handler struct {
	cfg   *config.Config
	store *session.Store
	log   *slog.Logger
	now   func() time.Time
}

func New(cfg *config.Config, store *session.Store, log *slog.Logger) *Handler {
	return &Handler{
		cfg:   cfg,
		store: store,
		log:   log.With(logger.Scope("handlers")),
		now:   time.Now,
	}
}

// LandingPage renders the full page and starts a navigation session for it.
// A reload ends the previous session of the same browser first.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pageForms{})
}

// pageForms carries subscribe form state into a full page render, so a plain
// form post can show its validation error in place.
type pageForms struct {
	Community components.SubscribeForm
	Footer    components.SubscribeForm
}

func (f *pageForms) set(form components.SubscribeForm) {
	if form.Source == components.SourceCommunity {
		f.Community = form
	} else {
		f.Footer = form
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, forms pageForms) {
	if c, err := r.Cookie(CookieName); err == nil {
		h.store.Dispose(c.Value)
	}

	state := navstate.State{}
	sess, err := h.store.Create()
	switch {
	case err == nil:
		h.setSessionCookie(w, sess.ID)
		state = sess.State()
	case errors.Is(err, session.ErrStoreFull):
		h.log.Warn("rendering without navigation session", logger.Error(err))
	default:
		h.log.Error("create navigation session", logger.Error(err))
	}

	forms.Community.Source = components.SourceCommunity
	forms.Footer.Source = components.SourceFooter

	page := components.Layout(
		components.PageConfig{
			SiteURL:    h.cfg.SiteURL,
			NavSession: sess != nil,
		},
		h.header(state),
		g.El("main",
			components.Hero(h.cfg.LaunchAppURL),
			components.Features(h.cfg.LaunchAppURL),
			components.HowItWorks(h.cfg.LaunchAppURL),
			components.Community(forms.Community),
		),
		components.PageFooter(h.now().Year(), forms.Footer),
	)

	metrics.PageViews.Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.log.Error("render landing page", logger.Error(err))
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) header(state navstate.State) g.Node {
	return components.SiteHeader(components.HeaderProps{
		State:     state,
		Sections:  content.Sections,
		LaunchURL: h.cfg.LaunchAppURL,
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
