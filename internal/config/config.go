package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port        string `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// Public URLs used in page metadata and call-to-action buttons
	SiteURL      string `env:"SITE_URL" envDefault:"https://trexgame.com"`
	LaunchAppURL string `env:"LAUNCH_APP_URL" envDefault:"#"`

	Nav       NavConfig
	RateLimit RateLimitConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NavConfig bounds the per-visitor navigation sessions
type NavConfig struct {
	SessionTTL    time.Duration `env:"NAV_SESSION_TTL" envDefault:"30m"`
	MaxSessions   int           `env:"NAV_SESSION_MAX" envDefault:"10000"`
	SweepInterval time.Duration `env:"NAV_SWEEP_INTERVAL" envDefault:"1m"`
}

// RateLimitConfig holds per-client request budgets
type RateLimitConfig struct {
	PerMinute          int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"600"`
	Burst              int `env:"RATE_LIMIT_BURST" envDefault:"60"`
	SubscribePerMinute int `env:"SUBSCRIBE_PER_MINUTE" envDefault:"10"`
}

// ListenAddr returns the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	port := strings.TrimPrefix(c.Port, ":")
	return c.Address + ":" + port
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Validate rejects settings that would leave the server unusable
func (c *Config) Validate() error {
	if strings.TrimPrefix(c.Port, ":") == "" {
		return fmt.Errorf("WEBSITE_PORT must not be empty")
	}
	if c.Nav.SessionTTL <= 0 {
		return fmt.Errorf("NAV_SESSION_TTL must be positive, got %s", c.Nav.SessionTTL)
	}
	if c.Nav.SweepInterval <= 0 {
		return fmt.Errorf("NAV_SWEEP_INTERVAL must be positive, got %s", c.Nav.SweepInterval)
	}
	if c.Nav.MaxSessions <= 0 {
		return fmt.Errorf("NAV_SESSION_MAX must be positive, got %d", c.Nav.MaxSessions)
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 || c.RateLimit.SubscribePerMinute <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	return nil
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration and logs the effective settings
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.ListenAddr()),
		slog.Duration("nav_session_ttl", cfg.Nav.SessionTTL),
		slog.Int("nav_session_max", cfg.Nav.MaxSessions),
	)

	return cfg, nil
}
