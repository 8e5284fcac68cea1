package handlers

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/trexgame/landing/internal/components"
	"github.com/trexgame/landing/internal/logger"
	"github.com/trexgame/landing/internal/metrics"
)

// FragmentHeader marks requests from the page script, which swap the
// returned form in place.
const FragmentHeader = "X-Fragment"

const maxSubscribeBody = 4 << 10

// Subscribe accepts the email capture forms. Nothing is stored or sent: the
// address is logged and the form comes back empty.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubscribeBody)
	if err := r.ParseForm(); err != nil {
		h.respondSubscribe(w, r, components.SubscribeForm{Source: components.SourceFooter, Error: "Something went wrong, please try again"}, http.StatusBadRequest)
		return
	}

	source := r.PostForm.Get("source")
	if source != components.SourceCommunity {
		source = components.SourceFooter
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))

	if msg := validateEmail(email); msg != "" {
		metrics.Subscriptions.WithLabelValues(source, "invalid").Inc()
		h.respondSubscribe(w, r, components.SubscribeForm{Source: source, Email: email, Error: msg}, http.StatusUnprocessableEntity)
		return
	}

	h.log.Info("email submitted",
		logger.Scope("subscribe"),
		slog.String("source", source),
		slog.String("email", email),
	)
	metrics.Subscriptions.WithLabelValues(source, "accepted").Inc()

	h.respondSubscribe(w, r, components.SubscribeForm{Source: source}, http.StatusOK)
}

// respondSubscribe answers script requests with the form fragment. Plain form
// posts are redirected back to the page on success and get the full page,
// with the form showing its error, otherwise.
func (h *Handler) respondSubscribe(w http.ResponseWriter, r *http.Request, form components.SubscribeForm, status int) {
	if r.Header.Get(FragmentHeader) == "" {
		if status == http.StatusOK {
			http.Redirect(w, r, "/#subscribe-"+form.Source, http.StatusSeeOther)
			return
		}
		var forms pageForms
		forms.set(form)
		h.renderPage(w, r, status, forms)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := components.Subscribe(form).Render(w); err != nil {
		h.log.Error("render subscribe form", logger.Error(err))
	}
}

// validateEmail returns a user-facing message, or "" when the address is a
// bare addr-spec with a domain part.
func validateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "Enter a valid email address"
	}
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return "Enter a valid email address"
	}
	return ""
}
