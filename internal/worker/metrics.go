package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	cycles       *prometheus.CounterVec
	duration     prometheus.Histogram
	requirements prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		cycles: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tarkov_market",
			Subsystem: "refresh",
			Name:      "cycles_total",
			Help:      "Refresh cycles by outcome.",
		}, []string{"status"}),
		duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tarkov_market",
			Subsystem: "refresh",
			Name:      "cycle_duration_seconds",
			Help:      "Wall time of a full refresh cycle.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		requirements: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "tarkov_market",
			Subsystem: "refresh",
			Name:      "tracked_requirements",
			Help:      "Questline requirements resolved by the last cycle.",
		}),
	}
}
