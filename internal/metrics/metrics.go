// Package metrics provides Prometheus instrumentation for the trainbook
// service. Metrics are registered on a custom registry so the /metrics
// endpoint exposes only application metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trainbook"

var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration by method and path",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	storeOps = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Total store operations by name",
	}, []string{"op"})

	storeOpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Store operation duration by name",
		Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
	}, []string{"op"})

	trainingsCount = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "trainings_count",
		Help:      "Current number of training records held in memory",
	})

	participantsCount = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "participants_count",
		Help:      "Current number of participant records across all trainings",
	})

	exportsTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total dataset exports served",
	})

	importsTotal = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Total dataset import attempts by result",
	}, []string{"result"})
)

// Registry returns the registry backing the /metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}

// ObserveHTTPRequest records one served HTTP request.
func ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveStoreOp records one store operation.
func ObserveStoreOp(op string, d time.Duration) {
	storeOps.WithLabelValues(op).Inc()
	storeOpDuration.WithLabelValues(op).Observe(d.Seconds())
}

// SetCollectionSize updates the dataset gauges after a mutation.
func SetCollectionSize(trainings, participants int) {
	trainingsCount.Set(float64(trainings))
	participantsCount.Set(float64(participants))
}

// IncExport counts a served export.
func IncExport() {
	exportsTotal.Inc()
}

// IncImport counts an import attempt.
func IncImport(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	importsTotal.WithLabelValues(result).Inc()
}
