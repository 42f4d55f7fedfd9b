package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// JournalMetrics implements ports.JournalMetrics with Prometheus counters.
type JournalMetrics struct {
	entries     *prometheus.CounterVec
	tagsCreated prometheus.Counter
}

// NewJournalMetrics creates the journal counters and registers them on reg.
func NewJournalMetrics(reg prometheus.Registerer) (*JournalMetrics, error) {
	m := &JournalMetrics{
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journal",
			Name:      "entries_total",
			Help:      "Journal entries changed, by operation.",
		}, []string{"operation"}),
		tagsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "journal",
			Name:      "tags_created_total",
			Help:      "Tags created on first use.",
		}),
	}

	for _, c := range []prometheus.Collector{m.entries, m.tagsCreated} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// EntryChanged counts one create, update, delete or import.
func (m *JournalMetrics) EntryChanged(operation string) {
	m.entries.WithLabelValues(operation).Inc()
}

// TagsCreated adds n newly created tags.
func (m *JournalMetrics) TagsCreated(n int) {
	if n > 0 {
		m.tagsCreated.Add(float64(n))
	}
}

// NewRegistry returns a registry with the Go runtime and process
// collectors, for serving at /-/metrics.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}
