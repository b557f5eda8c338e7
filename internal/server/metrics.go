package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/fibdrv/internal/device"
)

// Metrics owns a private Prometheus registry with HTTP and device
// collectors. It also implements device.Observer, so attaching it to a
// device records opens, contention and read latency.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests  prometheus.Gauge
	requestsTotal   prometheus.Counter
	responsesTotal  *prometheus.CounterVec
	deviceOpens     prometheus.Counter
	deviceBusy      prometheus.Counter
	deviceReads     *prometheus.CounterVec
	computeDuration prometheus.Histogram
}

var _ device.Observer = (*Metrics)(nil)

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibdrv_active_requests",
			Help: "Number of HTTP requests being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibdrv_requests_total",
			Help: "Total number of HTTP requests.",
		}),
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fibdrv_responses_total",
			Help: "HTTP responses by status code.",
		}, []string{"code"}),
		deviceOpens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibdrv_device_opens_total",
			Help: "Successful device opens.",
		}),
		deviceBusy: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibdrv_device_busy_total",
			Help: "Opens rejected because the device was held.",
		}),
		deviceReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fibdrv_device_reads_total",
			Help: "Device reads by result.",
		}, []string{"result"}),
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fibdrv_compute_duration_seconds",
			Help:    "Time spent computing the value of a read.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	m.deviceReads.WithLabelValues("ok")
	m.deviceReads.WithLabelValues("error")

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.activeRequests,
		m.requestsTotal,
		m.responsesTotal,
		m.deviceOpens,
		m.deviceBusy,
		m.deviceReads,
		m.computeDuration,
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// Registry exposes the registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// IncrementActiveRequests records the start of a request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests records the end of a request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveResponse counts a response by status code.
func (m *Metrics) ObserveResponse(status int) {
	m.responsesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// WritePrometheus serves the exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

func (m *Metrics) OnOpen(string)        { m.deviceOpens.Inc() }
func (m *Metrics) OnBusy(string)        { m.deviceBusy.Inc() }
func (m *Metrics) OnRelease(string)     {}
func (m *Metrics) OnSeek(string, int64) {}
func (m *Metrics) OnWrite(string, int)  {}

func (m *Metrics) OnRead(_ string, _ int64, elapsed time.Duration, err error) {
	if err != nil {
		m.deviceReads.WithLabelValues("error").Inc()
		return
	}
	m.deviceReads.WithLabelValues("ok").Inc()
	m.computeDuration.Observe(elapsed.Seconds())
}
