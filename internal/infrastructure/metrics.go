package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	ChartRequests     *prometheus.CounterVec
	ChartDuration     *prometheus.HistogramVec
	ArticleFetches    *prometheus.CounterVec
	DatasetRowsLoaded *prometheus.GaugeVec
}

// NewMetrics registers the collectors on the given registerer. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry to
// avoid duplicate-registration panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChartRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "macrolens",
			Name:      "chart_requests_total",
			Help:      "Chart requests by graph type and outcome.",
		}, []string{"graph", "outcome"}),
		ChartDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "macrolens",
			Name:      "chart_request_duration_seconds",
			Help:      "Chart request latency by graph type.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"graph"}),
		ArticleFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "macrolens",
			Name:      "article_fetches_total",
			Help:      "Word-cloud article fetches by outcome.",
		}, []string{"outcome"}),
		DatasetRowsLoaded: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "macrolens",
			Name:      "dataset_rows_loaded",
			Help:      "Rows loaded from each source table at startup.",
		}, []string{"table"}),
	}
}
