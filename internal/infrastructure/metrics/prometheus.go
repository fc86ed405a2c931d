// Package metrics expone métricas Prometheus de la consola: llamadas a la fuente de datos
// por pantalla y peticiones HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Propiedades-api/internal/application/listview"
)

var _ listview.Observer = (*Metrics)(nil)

var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics contadores e histogramas registrados en un Registry propio.
type Metrics struct {
	registry *prometheus.Registry

	fetchTotal      *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	deleteTotal     *prometheus.CounterVec
	deleteDuration  *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registra las métricas en un registry nuevo (incluye collectors de proceso y Go).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		fetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_fetch_total",
				Help: "Cargas de colección por pantalla y resultado",
			},
			[]string{"screen", "result"},
		),
		fetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "console_fetch_duration_seconds",
				Help:    "Duración de la carga de colección",
				Buckets: latencyBuckets,
			},
			[]string{"screen"},
		),
		deleteTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_delete_total",
				Help: "Solicitudes de eliminación por pantalla y resultado (deleted, failed, declined)",
			},
			[]string{"screen", "result"},
		),
		deleteDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "console_delete_duration_seconds",
				Help:    "Duración de la eliminación en la fuente de datos",
				Buckets: latencyBuckets,
			},
			[]string{"screen"},
		),
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_http_requests_total",
				Help: "Peticiones HTTP por método, ruta y status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "console_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP",
				Buckets: latencyBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveFetch implementa listview.Observer.
func (m *Metrics) ObserveFetch(screen string, err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.fetchTotal.WithLabelValues(screen, result).Inc()
	m.fetchDuration.WithLabelValues(screen).Observe(elapsed.Seconds())
}

// ObserveDelete implementa listview.Observer. Las confirmaciones rechazadas no miden duración.
func (m *Metrics) ObserveDelete(screen string, result listview.DeleteResult, elapsed time.Duration) {
	m.deleteTotal.WithLabelValues(screen, string(result)).Inc()
	if result != listview.DeleteDeclined {
		m.deleteDuration.WithLabelValues(screen).Observe(elapsed.Seconds())
	}
}

// RecordHTTPRequest registra una petición HTTP ya respondida.
func (m *Metrics) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposición en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry registry subyacente (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
