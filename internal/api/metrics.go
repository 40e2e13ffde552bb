package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector bundles the service's prometheus metrics.
type Collector struct {
	RequestDuration  *prometheus.HistogramVec
	DatasetReloads   prometheus.Counter
	SelectionEvents  *prometheus.CounterVec
	ProviderRequests *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wardwatch",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration by route",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"route"},
		),
		DatasetReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "wardwatch",
				Name:      "dataset_reloads_total",
				Help:      "Wholesale district dataset reloads",
			},
		),
		SelectionEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wardwatch",
				Name:      "selection_events_total",
				Help:      "Selection events by kind and outcome",
			},
			[]string{"event", "outcome"},
		),
		ProviderRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wardwatch",
				Name:      "provider_requests_total",
				Help:      "External provider calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
	}
}

func (c *Collector) observeProvider(provider string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.ProviderRequests.WithLabelValues(provider, outcome).Inc()
}
