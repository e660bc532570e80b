package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	commitsTotal     prometheus.Counter
	simulationsTotal *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	watchers         prometheus.Gauge
}

func initMetrics(config Config) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		commitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "preview",
			Name:      "commits_total",
			Help:      "Total number of session mutations committed",
		}),

		simulationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "preview",
			Name:      "simulations_total",
			Help:      "Total number of simulated events by event and status",
		}, []string{"event", "status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Markup serialization duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		watchers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: "preview",
			Name:      "watchers",
			Help:      "Number of connected WebSocket watchers",
		}),
	}
}
