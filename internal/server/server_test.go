package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trexgame/landing/internal/config"
	"github.com/trexgame/landing/internal/content"
	"github.com/trexgame/landing/internal/handlers"
	"github.com/trexgame/landing/internal/ratelimit"
	"github.com/trexgame/landing/internal/session"
)

func newTestRouter(t *testing.T, limiters *Limiters) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Port:         "4002",
		Environment:  "test",
		LaunchAppURL: "https://play.trexgame.com",
	}
	store := session.NewStore(content.Sections, session.Options{TTL: time.Hour, MaxSessions: 100}, log)

	if limiters == nil {
		limiters = &Limiters{
			Events:    ratelimit.New(6000, 1000),
			Subscribe: ratelimit.New(6000, 1000),
		}
	}

	return NewRouter(RouterParams{
		Config:   cfg,
		Log:      log,
		Handlers: handlers.New(cfg, store, log),
		Static: fstest.MapFS{
			"styles.css":    {Data: []byte("body{}")},
			"js/landing.js": {Data: []byte("// landing")},
		},
		Limiters: limiters,
	})
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == handlers.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp["error"]["code"].(string)
}

func TestRouter_Pages(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name        string
		target      string
		status      int
		contains    string
		contentType string
	}{
		{"landing page", "/", http.StatusOK, `id="site-header"`, "text/html; charset=utf-8"},
		{"health", "/health", http.StatusOK, `"status":"ok"`, "application/json"},
		{"stylesheet", "/static/styles.css", http.StatusOK, "body{}", "text/css; charset=utf-8"},
		{"script", "/static/js/landing.js", http.StatusOK, "// landing", ""},
		{"metrics", "/metrics", http.StatusOK, "landing_page_views_total", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRouter_StaticCacheHeader(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := do(t, r, http.MethodGet, "/static/styles.css", nil)

	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestRouter_NotFound(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := do(t, r, http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := do(t, r, http.MethodGet, "/nav/menu", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method_not_allowed", errorCode(t, rec))
}

func TestRouter_NavigationFlow(t *testing.T) {
	r := newTestRouter(t, nil)

	page := do(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, page.Code)
	cookie := sessionCookie(t, page)

	scroll := `{"offset":750,"sections":{"features":{"top":700,"height":600},"how-it-works":{"top":1300,"height":800}}}`
	rec := do(t, r, http.MethodPost, "/nav/scroll", strings.NewReader(scroll), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-scrolled="true"`)
	assert.Contains(t, rec.Body.String(), `data-active-section="features"`)

	rec = do(t, r, http.MethodPost, "/nav/scroll", strings.NewReader(scroll), cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, r, http.MethodPost, "/nav/menu", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-menu-open="true"`)

	rec = do(t, r, http.MethodPost, "/nav/select/community", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "#community", rec.Header().Get(handlers.ScrollToHeader))
	assert.Contains(t, rec.Body.String(), `data-menu-open="false"`)

	rec = do(t, r, http.MethodPost, "/nav/select/roadmap", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "section_not_found", errorCode(t, rec))

	rec = do(t, r, http.MethodPost, "/nav/dispose", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, r, http.MethodPost, "/nav/menu", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "session_not_found", errorCode(t, rec))
}

func TestRouter_NavRateLimited(t *testing.T) {
	r := newTestRouter(t, &Limiters{
		Events:    ratelimit.New(1, 2),
		Subscribe: ratelimit.New(6000, 1000),
	})

	for i := 0; i < 2; i++ {
		rec := do(t, r, http.MethodPost, "/nav/menu", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	rec := do(t, r, http.MethodPost, "/nav/menu", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", errorCode(t, rec))
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// Page loads and the unload beacon are not throttled by the event budget.
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodPost, "/nav/dispose", nil).Code)
}

// scrollPostInterval is the minimum gap between scroll posts sent by
// static/js/landing.js.
const scrollPostInterval = 125 * time.Millisecond

func TestRouter_DefaultBudgetCoversContinuousScroll(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	limiters := NewLimiters(cfg)
	limiters.Events.WithClock(func() time.Time { return now })
	r := newTestRouter(t, limiters)

	page := do(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, page.Code)
	cookie := sessionCookie(t, page)

	const layout = `{"features":{"top":800,"height":600},"how-it-works":{"top":1400,"height":500}}`

	// Ten seconds of continuous scrolling at the script's posting rate.
	for i := 0; i < 80; i++ {
		body := fmt.Sprintf(`{"offset":%d,"sections":%s}`, i*10, layout)
		rec := do(t, r, http.MethodPost, "/nav/scroll", strings.NewReader(body), cookie)
		require.NotEqual(t, http.StatusTooManyRequests, rec.Code, "scroll post %d rejected", i)
		now = now.Add(scrollPostInterval)
	}

	rec := do(t, r, http.MethodPost, "/nav/scroll",
		strings.NewReader(`{"offset":1350,"sections":`+layout+`}`), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-active-section="how-it-works"`)

	rec = do(t, r, http.MethodPost, "/nav/dispose", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_SubscribeRateLimited(t *testing.T) {
	r := newTestRouter(t, &Limiters{
		Events:    ratelimit.New(6000, 1000),
		Subscribe: ratelimit.New(1, 1),
	})

	form := func() io.Reader { return strings.NewReader("source=footer&email=rex%40trexgame.com") }
	first := httptest.NewRequest(http.MethodPost, "/subscribe", form())
	first.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	first.Header.Set(handlers.FragmentHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	second := httptest.NewRequest(http.MethodPost, "/subscribe", form())
	second.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
