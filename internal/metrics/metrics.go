package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments of the ads engine.
type Metrics struct {
	// Event metrics
	Impressions prometheus.Counter
	Clicks      prometheus.Counter

	// Scheduling metrics
	Activations prometheus.Counter

	// Ranking metrics
	TrendingDuration  prometheus.Histogram
	TrendingCacheHits prometheus.Counter
}

// New creates and registers all instruments on the given registerer. Pass a
// fresh prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Impressions: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ads",
			Name:      "impressions_total",
			Help:      "Total number of impression events processed",
		}),
		Clicks: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ads",
			Name:      "clicks_total",
			Help:      "Total number of click events processed",
		}),
		Activations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ads",
			Name:      "activations_total",
			Help:      "Total number of advertisements activated by the scheduling pass",
		}),
		TrendingDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ads",
			Name:      "trending_duration_seconds",
			Help:      "Time spent computing the trending ranking",
			Buckets:   prometheus.DefBuckets,
		}),
		TrendingCacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ads",
			Name:      "trending_cache_hits_total",
			Help:      "Trending requests served from the cache",
		}),
	}
}
