package session

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/trexgame/landing/internal/config"
	"github.com/trexgame/landing/internal/content"
	"github.com/trexgame/landing/internal/metrics"
)

var Module = fx.Module("session",
	fx.Provide(NewConfiguredStore),
	fx.Invoke(StartSweeper),
)

// NewConfiguredStore builds the Store for the landing page sections and
// mirrors its size into the live-sessions gauge.
func NewConfiguredStore(cfg *config.Config, log *slog.Logger) *Store {
	store := NewStore(content.Sections, Options{
		TTL:         cfg.Nav.SessionTTL,
		MaxSessions: cfg.Nav.MaxSessions,
	}, log)
	store.OnChange = func(live int) {
		metrics.NavSessions.Set(float64(live))
	}
	return store
}

// StartSweeper runs the idle-session sweeper for the lifetime of the app.
func StartSweeper(lc fx.Lifecycle, store *Store, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				store.Run(ctx, cfg.Nav.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
