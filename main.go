// Package main serves the TrexGame landing page.
package main

import (
	"embed"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/trexgame/landing/internal/config"
	"github.com/trexgame/landing/internal/handlers"
	"github.com/trexgame/landing/internal/logger"
	"github.com/trexgame/landing/internal/server"
	"github.com/trexgame/landing/internal/session"
)

//go:embed static
var staticFS embed.FS

func staticFiles() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}

func main() {
	// Load .env files if present (for local development)
	// Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		fx.Provide(
			fx.Annotate(staticFiles, fx.ResultTags(`name:"static"`)),
		),

		logger.Module,
		config.Module,
		session.Module,
		handlers.Module,
		server.Module,
	).Run()
}
