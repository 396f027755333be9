package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry  *prometheus.Registry
	enqueue   *prometheus.CounterVec
	snapshot  prometheus.Histogram
	processed *prometheus.CounterVec
}

func New(runtimeMetrics bool) *Metrics {
	reg := prometheus.NewRegistry()
	if runtimeMetrics {
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		reg.MustRegister(collectors.NewGoCollector())
	}
	m := &Metrics{
		registry: reg,
		enqueue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "techsnap_enqueue_total",
			Help: "Scan requests by outcome (queued, pending, invalid, error).",
		}, []string{"result"}),
		snapshot: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "techsnap_snapshot_seconds",
			Help:    "Latency of result snapshot queries.",
			Buckets: prometheus.DefBuckets,
		}),
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "techsnap_scans_processed_total",
			Help: "Scan requests settled by the analyzer, by status.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.enqueue, m.snapshot, m.processed)
	return m
}

func (m *Metrics) Enqueued(result string) {
	if m == nil {
		return
	}
	m.enqueue.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSnapshot(d time.Duration) {
	if m == nil {
		return
	}
	m.snapshot.Observe(d.Seconds())
}

func (m *Metrics) Processed(status string) {
	if m == nil {
		return
	}
	m.processed.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// EnqueueCounter returns the counter for one enqueue outcome.
func (m *Metrics) EnqueueCounter(result string) prometheus.Counter {
	return m.enqueue.WithLabelValues(result)
}

// ProcessedCounter returns the counter for one analyzer outcome.
func (m *Metrics) ProcessedCounter(status string) prometheus.Counter {
	return m.processed.WithLabelValues(status)
}
