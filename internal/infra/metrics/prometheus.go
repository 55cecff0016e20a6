// Package metrics exposes Prometheus collectors for syncs and upstream Google calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"studio/internal/domain/entity"
	"studio/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "studio"

// NewRegistry creates the process registry with the default Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry
}

// NewHandler serves the registry in the Prometheus text format.
func NewHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

type syncMetrics struct {
	syncsTotal     *prometheus.CounterVec
	syncDuration   *prometheus.HistogramVec
	syncedRecords  *prometheus.CounterVec
	googleRequests *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// Recorder is the full metrics surface: sync metrics plus HTTP server instrumentation.
type Recorder interface {
	service.SyncMetrics
	ObserveHTTPRequest(method, route string, statusCode int, took time.Duration)
}

// NewSyncMetrics registers the sync collectors on registry.
func NewSyncMetrics(registry *prometheus.Registry) Recorder {
	m := &syncMetrics{
		syncsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Number of GMB sync runs by outcome.",
		}, []string{"mode", "sync_type", "status"}),
		syncDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Wall time of GMB sync runs.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"mode", "sync_type", "status"}),
		syncedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "records_total",
			Help:      "Rows upserted by sync runs.",
		}, []string{"kind"}),
		googleRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "google",
			Name:      "requests_total",
			Help:      "Upstream Google API attempts by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of all HTTP requests.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of all HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		m.syncsTotal,
		m.syncDuration,
		m.syncedRecords,
		m.googleRequests,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

func (m *syncMetrics) ObserveSync(mode string, syncType entity.SyncType, status entity.JobStatus, took time.Duration, counts entity.SyncCounts) {
	labels := prometheus.Labels{"mode": mode, "sync_type": string(syncType), "status": string(status)}
	m.syncsTotal.With(labels).Inc()
	m.syncDuration.With(labels).Observe(took.Seconds())

	m.syncedRecords.WithLabelValues("locations").Add(float64(counts.Locations))
	m.syncedRecords.WithLabelValues("reviews").Add(float64(counts.Reviews))
	m.syncedRecords.WithLabelValues("media").Add(float64(counts.Media))
}

// ObserveGoogleRequest records one upstream attempt; statusCode 0 means a transport failure.
func (m *syncMetrics) ObserveGoogleRequest(endpoint string, statusCode int) {
	status := "network_error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.googleRequests.WithLabelValues(endpoint, status).Inc()
}

func (m *syncMetrics) ObserveHTTPRequest(method, route string, statusCode int, took time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

type noopMetrics struct{}

// NewNoop returns a Recorder that drops every observation.
func NewNoop() Recorder { return noopMetrics{} }

func (noopMetrics) ObserveSync(string, entity.SyncType, entity.JobStatus, time.Duration, entity.SyncCounts) {
}

func (noopMetrics) ObserveGoogleRequest(string, int) {}

func (noopMetrics) ObserveHTTPRequest(string, string, int, time.Duration) {}

// Module provides the registry, the recorder and its service.SyncMetrics view.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		NewSyncMetrics,
		func(r Recorder) service.SyncMetrics { return r },
	),
)
