package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trexgame/landing/internal/config"
	"github.com/trexgame/landing/internal/content"
	"github.com/trexgame/landing/internal/session"
)

func newTestHandler(t *testing.T, maxSessions int) (*Handler, *session.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Port:         "4002",
		Environment:  "test",
		SiteURL:      "https://trexgame.com",
		LaunchAppURL: "https://play.trexgame.com",
	}
	store := session.NewStore(content.Sections, session.Options{TTL: time.Hour, MaxSessions: maxSessions}, log)
	h := New(cfg, store, log)
	h.now = func() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) }
	return h, store
}

// mount renders the landing page and returns the session cookie it set.
func mount(t *testing.T, h *Handler) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	h.LandingPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("landing page did not set a session cookie")
	return nil
}

func post(t *testing.T, handler http.HandlerFunc, target string, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func selectSection(t *testing.T, h *Handler, id string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/nav/select/"+id, nil)
	req.AddCookie(cookie)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("section", id)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	h.NavSelect(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp["error"]["code"].(string)
}

func TestLandingPage(t *testing.T) {
	h, store := newTestHandler(t, 10)

	rec := httptest.NewRecorder()
	h.LandingPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `id="site-header"`)
	assert.Contains(t, body, `data-scrolled="false"`)
	assert.Contains(t, body, `data-nav-session="true"`)
	assert.Contains(t, body, "Unleash Your Inner Dinosaur!")
	assert.Contains(t, body, "© 2026 TrexGame")
	assert.Contains(t, body, `href="https://play.trexgame.com"`)
	for _, s := range content.Sections {
		assert.Contains(t, body, `id="`+s.Anchor+`"`)
	}

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 1, store.Len())
}

func TestLandingPage_ReloadReplacesSession(t *testing.T) {
	h, store := newTestHandler(t, 10)
	first := mount(t, h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(first)
	rec := httptest.NewRecorder()
	h.LandingPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(first.Value)
	assert.False(t, ok)
}

func TestLandingPage_StoreFull(t *testing.T) {
	h, store := newTestHandler(t, 1)
	_, err := store.Create()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.LandingPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.NotContains(t, rec.Body.String(), "data-nav-session")
}

func TestNavScroll_Scenario(t *testing.T) {
	h, _ := newTestHandler(t, 10)
	cookie := mount(t, h)

	const geometry = `"sections":{"features":{"top":800,"height":600},"how-it-works":{"top":1400,"height":500}}`

	rec := post(t, h.NavScroll, "/nav/scroll", `{"offset":750,`+geometry+`}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-active-section="features"`)
	assert.Contains(t, rec.Body.String(), `data-scrolled="true"`)

	rec = post(t, h.NavScroll, "/nav/scroll", `{"offset":1350,`+geometry+`}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-active-section="how-it-works"`)

	rec = post(t, h.NavScroll, "/nav/scroll", `{"offset":100,`+geometry+`}`, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code, "no match keeps the prior section")

	rec = post(t, h.NavScroll, "/nav/scroll", `{"offset":10,`+geometry+`}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-scrolled="false"`)
	assert.Contains(t, rec.Body.String(), `data-active-section="how-it-works"`)
}

func TestNavScroll_BadRequests(t *testing.T) {
	h, _ := newTestHandler(t, 10)
	cookie := mount(t, h)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"not json", `offset=10`, http.StatusBadRequest, "bad_request"},
		{"wrong type", `{"offset":"ten"}`, http.StatusBadRequest, "bad_request"},
		{"missing offset", `{"sections":{}}`, http.StatusUnprocessableEntity, "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h.NavScroll, "/nav/scroll", tt.body, cookie)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestNav_RequiresSession(t *testing.T) {
	h, _ := newTestHandler(t, 10)

	rec := post(t, h.NavMenu, "/nav/menu", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "session_not_found", errorCode(t, rec))

	rec = post(t, h.NavScroll, "/nav/scroll", `{"offset":1}`, &http.Cookie{Name: CookieName, Value: "stale"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "session_not_found", errorCode(t, rec))
}

func TestNavMenu_ToggleAndDismiss(t *testing.T) {
	h, _ := newTestHandler(t, 10)
	cookie := mount(t, h)

	rec := post(t, h.NavMenu, "/nav/menu", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-menu-open="true"`)
	assert.Contains(t, rec.Body.String(), `id="mobile-menu" class=`)

	rec = post(t, h.NavMenu, "/nav/menu", "", cookie)
	assert.Contains(t, rec.Body.String(), `data-menu-open="false"`)

	post(t, h.NavMenu, "/nav/menu", "", cookie)
	rec = post(t, h.NavDismiss, "/nav/dismiss", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-menu-open="false"`)
}

func TestNavSelect(t *testing.T) {
	h, _ := newTestHandler(t, 10)
	cookie := mount(t, h)
	post(t, h.NavMenu, "/nav/menu", "", cookie)

	rec := selectSection(t, h, "community", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#community", rec.Header().Get(ScrollToHeader))
	assert.Contains(t, rec.Body.String(), `data-menu-open="false"`)
	assert.Contains(t, rec.Body.String(), `id="mobile-menu" hidden`)
}

func TestNavSelect_UnknownSection(t *testing.T) {
	h, _ := newTestHandler(t, 10)
	cookie := mount(t, h)

	rec := selectSection(t, h, "pricing", cookie)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "section_not_found", errorCode(t, rec))
	assert.Empty(t, rec.Header().Get(ScrollToHeader))
}

func TestNavDispose(t *testing.T) {
	h, store := newTestHandler(t, 10)
	cookie := mount(t, h)

	rec := post(t, h.NavDispose, "/nav/dispose", "", cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, store.Len())

	rec = post(t, h.NavDispose, "/nav/dispose", "", cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code, "dispose is idempotent")

	rec = post(t, h.NavMenu, "/nav/menu", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func postForm(t *testing.T, h *Handler, values url.Values, fragment bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if fragment {
		req.Header.Set(FragmentHeader, "1")
	}
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)
	return rec
}

func TestSubscribe_Accepted(t *testing.T) {
	h, _ := newTestHandler(t, 10)

	rec := postForm(t, h, url.Values{"email": {" rex@trexgame.com "}, "source": {"community"}}, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="subscribe-community"`)
	assert.Contains(t, body, `value=""`)
	assert.NotContains(t, body, "rex@trexgame.com")
}

func TestSubscribe_Invalid(t *testing.T) {
	h, _ := newTestHandler(t, 10)

	rec := postForm(t, h, url.Values{"email": {"not-an-email"}}, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="subscribe-footer"`)
	assert.Contains(t, body, `value="not-an-email"`)
	assert.Contains(t, body, "Enter a valid email address")
}

func TestSubscribe_PlainFormPostRedirects(t *testing.T) {
	h, _ := newTestHandler(t, 10)

	rec := postForm(t, h, url.Values{"email": {"rex@trexgame.com"}, "source": {"footer"}}, false)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#subscribe-footer", rec.Header().Get("Location"))
}

func TestSubscribe_PlainFormPostInvalidRendersPage(t *testing.T) {
	h, _ := newTestHandler(t, 10)

	rec := postForm(t, h, url.Values{"email": {"dino@"}, "source": {"community"}}, false)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="site-header"`)
	assert.Contains(t, body, `value="dino@"`)
	assert.Contains(t, body, `id="subscribe-error-community"`)
	assert.Contains(t, body, "Enter a valid email address")
	assert.NotContains(t, body, `id="subscribe-error-footer"`)
	assert.Contains(t, body, `id="subscribe-footer"`)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"rex@trexgame.com", true},
		{"rex+news@localhost", true},
		{"", false},
		{"rex", false},
		{"rex@", false},
		{"@trexgame.com", false},
		{"Rex <rex@trexgame.com>", false},
		{"rex@@trexgame.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, validateEmail(tt.email) == "")
		})
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t, 10)
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
