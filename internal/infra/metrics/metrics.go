// Package metrics exposes Prometheus counters for the HTTP surface and the
// device authentication pipeline.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ipay4u"

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	authOutcomesTotal          *prometheus.CounterVec
	ingestOutcomesTotal        *prometheus.CounterVec
	registrationsTotal         *prometheus.CounterVec
	noncesPrunedTotal          prometheus.Counter
}

// New builds the collectors and registers them together with the Go runtime collectors.
func New(cfg *config.Config) *Metrics {
	serviceName := cfg.Env.ServiceName
	if serviceName == "" {
		serviceName = namespace
	}
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),
		authOutcomesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "device_auth_total",
			Help:        "Device request authentications by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		ingestOutcomesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "payment_events_total",
			Help:        "Payment notifications by ingestion outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		registrationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "device_registrations_total",
			Help:        "Device registrations by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		noncesPrunedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "nonces_pruned_total",
			Help:        "Nonces removed after leaving the retention window.",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDurationSeconds,
		m.authOutcomesTotal,
		m.ingestOutcomesTotal,
		m.registrationsTotal,
		m.noncesPrunedTotal,
	)

	return m
}

// NewRecorder exposes m as the domain recorder interface.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats exports connection pool statistics of db under the given name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// ObserveHTTPRequest records one served request; path is the route template.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDurationSeconds.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordAuthOutcome(outcome string) {
	m.authOutcomesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordIngestOutcome(outcome string) {
	m.ingestOutcomesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordRegistration(outcome string) {
	m.registrationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordNoncesPruned(count int64) {
	if count > 0 {
		m.noncesPrunedTotal.Add(float64(count))
	}
}
