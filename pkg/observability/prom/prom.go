// Package prom implements the observability hooks on Prometheus metrics.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ontouml/ontokit/pkg/observability"
)

const namespace = "ontokit"

// Metrics holds the Prometheus collectors behind every hook interface.
type Metrics struct {
	// Export
	exportsTotal   *prometheus.CounterVec // By status (ok/error)
	exportElements prometheus.Histogram
	exportDuration prometheus.Histogram

	// Coloring
	passesTotal      prometheus.Counter
	classesChanged   prometheus.Counter
	repaintsTotal    prometheus.Counter
	classesDefaulted prometheus.Gauge
	repaintDuration  prometheus.Histogram

	// Cache
	cacheOps   *prometheus.CounterVec // By key_type and result (hit/miss/set)
	cacheBytes *prometheus.CounterVec // By key_type

	// HTTP client
	requestsTotal   *prometheus.CounterVec   // By host, path and status
	requestDuration *prometheus.HistogramVec // By host and path
	requestErrors   *prometheus.CounterVec   // By host and path
}

var (
	_ observability.ExportHooks   = (*Metrics)(nil)
	_ observability.ColoringHooks = (*Metrics)(nil)
	_ observability.CacheHooks    = (*Metrics)(nil)
	_ observability.HTTPHooks     = (*Metrics)(nil)
)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "total",
			Help:      "Total number of schema exports",
		}, []string{"status"}),
		exportElements: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "elements",
			Help:      "Number of documents produced per export",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		exportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "duration_seconds",
			Help:      "Schema export duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),

		passesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coloring",
			Name:      "passes_total",
			Help:      "Total number of coloring passes",
		}),
		classesChanged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coloring",
			Name:      "classes_changed_total",
			Help:      "Total number of classes whose color changed during a pass",
		}),
		repaintsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coloring",
			Name:      "repaints_total",
			Help:      "Total number of whole-project repaints",
		}),
		classesDefaulted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "coloring",
			Name:      "classes_defaulted",
			Help:      "Classes left with the non-sortal default color by the last repaint",
		}),
		repaintDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "coloring",
			Name:      "repaint_duration_seconds",
			Help:      "Whole-project repaint duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Cache operations by result",
		}, []string{"key_type", "result"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Bytes written to the cache",
		}, []string{"key_type"}),

		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Requests sent to the OntoUML server by response status",
		}, []string{"host", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "request_duration_seconds",
			Help:      "OntoUML server request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"host", "path"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "errors_total",
			Help:      "Transport failures talking to the OntoUML server",
		}, []string{"host", "path"}),
	}

	for _, c := range []prometheus.Collector{
		m.exportsTotal, m.exportElements, m.exportDuration,
		m.passesTotal, m.classesChanged, m.repaintsTotal, m.classesDefaulted, m.repaintDuration,
		m.cacheOps, m.cacheBytes,
		m.requestsTotal, m.requestDuration, m.requestErrors,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Install registers m as every global hook.
func (m *Metrics) Install() {
	observability.SetExportHooks(m)
	observability.SetColoringHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func (m *Metrics) OnExport(_ context.Context, _ string, elements int, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.exportsTotal.WithLabelValues(status).Inc()
	m.exportDuration.Observe(d.Seconds())
	if err == nil {
		m.exportElements.Observe(float64(elements))
	}
}

func (m *Metrics) OnPass(_ context.Context, _, _, changed int, _ time.Duration) {
	m.passesTotal.Inc()
	m.classesChanged.Add(float64(changed))
}

func (m *Metrics) OnRepaint(_ context.Context, _, defaulted int, d time.Duration) {
	m.repaintsTotal.Inc()
	m.classesDefaulted.Set(float64(defaulted))
	m.repaintDuration.Observe(d.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheOps.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string, string) {}

func (m *Metrics) OnResponse(_ context.Context, _, host, path string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(host, path, statusLabel(status)).Inc()
	m.requestDuration.WithLabelValues(host, path).Observe(d.Seconds())
}

func (m *Metrics) OnError(_ context.Context, _, host, path string, _ error) {
	m.requestErrors.WithLabelValues(host, path).Inc()
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	case code >= 200:
		return "2xx"
	}
	return "other"
}
