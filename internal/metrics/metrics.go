package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Page metrics
	PageViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_page_views_total",
		Help: "Total number of landing page renders",
	})

	// Navigation metrics
	NavEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_nav_events_total",
		Help: "Navigation events received from browsers",
	}, []string{"kind"})

	NavSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "landing_nav_sessions_live",
		Help: "Navigation sessions currently held in memory",
	})

	// Subscribe form metrics
	Subscriptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_subscriptions_total",
		Help: "Email subscribe submissions by form and result",
	}, []string{"source", "result"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	}, []string{"route"})
)

// Nav event kinds
const (
	NavScroll  = "scroll"
	NavMenu    = "menu"
	NavDismiss = "dismiss"
	NavSelect  = "select"
	NavDispose = "dispose"
)
