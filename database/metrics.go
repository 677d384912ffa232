package database

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "socialgraph"

// Outcome label values of searches_total.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// metrics groups the collectors owned by one Database.
type metrics struct {
	builds      prometheus.Counter
	members     prometheus.Gauge
	connections prometheus.Gauge
	searches    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func newMetrics() *metrics {
	return &metrics{
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "builds_total",
			Help:      "Number of completed graph builds",
		}),
		members: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "members",
			Help:      "Members in the current graph",
		}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "connections",
			Help:      "Undirected connections in the current graph",
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "search",
			Name:      "total",
			Help:      "Searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Search latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"algorithm"}),
	}
}

// register adds every collector to reg.
func (m *metrics) register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.builds, m.members, m.connections, m.searches, m.duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func (m *metrics) observe(algorithm, outcome string, seconds float64) {
	m.searches.WithLabelValues(algorithm, outcome).Inc()
	m.duration.WithLabelValues(algorithm).Observe(seconds)
}
