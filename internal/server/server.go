package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/trexgame/landing/internal/apperror"
	"github.com/trexgame/landing/internal/config"
	"github.com/trexgame/landing/internal/handlers"
	"github.com/trexgame/landing/internal/logger"
	"github.com/trexgame/landing/internal/metrics"
	"github.com/trexgame/landing/internal/ratelimit"
)

var Module = fx.Module("server",
	fx.Provide(NewLimiters, NewRouter),
	fx.Invoke(StartServer, StartLimiterPruner),
)

// RouterParams are the dependencies for building the router
type RouterParams struct {
	fx.In

	Config   *config.Config
	Log      *slog.Logger
	Handlers *handlers.Handler
	Static   fs.FS `name:"static"`
	Limiters *Limiters
}

// Limiters are the per-client budgets for the event and subscribe routes.
// The page script posts scroll events at most every 125ms, so the default
// events budget of 600/min covers a continuous scroll with the burst left
// for taps.
type Limiters struct {
	Events    *ratelimit.Limiter
	Subscribe *ratelimit.Limiter
}

func NewLimiters(cfg *config.Config) *Limiters {
	return &Limiters{
		Events:    ratelimit.New(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst),
		Subscribe: ratelimit.New(cfg.RateLimit.SubscribePerMinute, 3),
	}
}

// NewRouter creates the chi router with the full middleware stack
func NewRouter(p RouterParams) http.Handler {
	log := p.Log.With(logger.Scope("http"))
	h := p.Handlers

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	// RealIP trusts X-Forwarded-For; run the site behind a proxy that sets it.
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(p.Static)))

	r.Get("/", h.LandingPage)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/nav", func(r chi.Router) {
		// Dispose only frees memory, so the unload beacon is never throttled.
		r.Post("/dispose", h.NavDispose)

		r.Group(func(r chi.Router) {
			r.Use(p.Limiters.Events.Middleware(deny(log, "nav")))
			r.Post("/scroll", h.NavScroll)
			r.Post("/menu", h.NavMenu)
			r.Post("/dismiss", h.NavDismiss)
			r.Post("/select/{section}", h.NavSelect)
		})
	})

	r.With(p.Limiters.Subscribe.Middleware(deny(log, "subscribe"))).Post("/subscribe", h.Subscribe)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteError(w, r, log, apperror.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteError(w, r, log, apperror.New(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed"))
	})

	return r
}

func staticHandler(static fs.FS) http.Handler {
	files := http.FileServer(http.FS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// StartLimiterPruner drops limiter entries for clients idle longer than the
// navigation session TTL.
func StartLimiterPruner(lc fx.Lifecycle, limiters *Limiters, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Nav.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						limiters.Events.Prune(cfg.Nav.SessionTTL)
						limiters.Subscribe.Prune(cfg.Nav.SessionTTL)
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func deny(log *slog.Logger, route string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.RateLimited.WithLabelValues(route).Inc()
		apperror.WriteError(w, r, log, apperror.ErrTooManyRequests)
	}
}

// requestLogger logs one line per request, skipping probes and scrapes
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.URL.RequestURI()),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if status >= 500 {
				log.Error("request failed", attrs...)
			} else {
				log.Debug("request", attrs...)
			}
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, handler http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
