// Package metrics exposes supervisor state as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ech-workers/ech-client/internal/daemon/supervisor"
	"github.com/ech-workers/ech-client/internal/daemon/worker"
)

const namespace = "ech_client"

// Metrics holds the daemon's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	WorkerRunning      *prometheus.GaugeVec
	SystemProxyEnabled prometheus.Gauge
	Starts             *prometheus.CounterVec
	Stops              prometheus.Counter
	Exits              *prometheus.CounterVec
}

// New registers the collectors. output may be nil.
func New(output *worker.OutputLog) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,

		WorkerRunning: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "worker_running",
			Help:      "Whether a worker is running, by owner.",
		}, []string{"owner"}), // owner: "managed" or "external"

		SystemProxyEnabled: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_proxy_enabled",
			Help:      "Whether the OS proxy setting is enabled.",
		}),

		Starts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_starts_total",
			Help:      "Start requests by outcome.",
		}, []string{"outcome"}),

		Stops: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_stops_total",
			Help:      "Stop requests handled.",
		}),

		Exits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_exits_total",
			Help:      "Worker exits, split by whether they were requested.",
		}, []string{"expected"}),
	}

	if output != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "output_lines",
			Help:      "Worker output lines currently retained.",
		}, func() float64 { return float64(output.Len()) })
	}
	return m
}

// StartAttempt implements supervisor.Observer.
func (m *Metrics) StartAttempt(outcome string) {
	m.Starts.WithLabelValues(outcome).Inc()
}

// Stopped implements supervisor.Observer.
func (m *Metrics) Stopped() {
	m.Stops.Inc()
}

// WorkerExited implements supervisor.Observer.
func (m *Metrics) WorkerExited(expected bool) {
	m.Exits.WithLabelValues(strconv.FormatBool(expected)).Inc()
}

// ObserveStatus updates the gauges from a status poll.
func (m *Metrics) ObserveStatus(st supervisor.Status) {
	m.WorkerRunning.WithLabelValues("managed").Set(boolToFloat(st.ManagedRunning))
	m.WorkerRunning.WithLabelValues("external").Set(boolToFloat(st.ExternalRunning))
	m.SystemProxyEnabled.Set(boolToFloat(st.SystemProxyEnabled))
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
