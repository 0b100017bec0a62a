package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

const namespace = "campaign_dashboard"

// Metrics agrupa os coletores Prometheus da API.
// Um *Metrics nil é válido e não registra nada.
type Metrics struct {
	registry *prometheus.Registry

	RequestCount    *prometheus.CounterVec
	RequestLatency  *prometheus.HistogramVec
	SyncRuns        *prometheus.CounterVec
	SyncDuration    prometheus.Histogram
	SyncDispatches  prometheus.Counter
	AssemblySkipped prometheus.Counter
	VendorRequests  *prometheus.CounterVec
}

// New cria e registra os coletores em um registry próprio
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total API requests received",
			},
			[]string{"route", "method", "status"},
		),
		RequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of request latencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		SyncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sync_runs_total",
				Help:      "Vendor sync runs by final status",
			},
			[]string{"status"},
		),
		SyncDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sync_duration_seconds",
				Help:      "Duration of full vendor syncs",
				Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
		SyncDispatches: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sync_dispatches_total",
				Help:      "Manual sync triggers accepted",
			},
		),
		AssemblySkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaign_assembly_skipped_total",
				Help:      "Campaigns skipped because the response could not be assembled",
			},
		),
		VendorRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vendor_requests_total",
				Help:      "Requests sent to the vendor analytics API",
			},
			[]string{"endpoint", "outcome"},
		),
	}
}

// Handler expõe o registry no formato de exposição do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument mede contagem e latência de uma rota
func (m *Metrics) Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := middleware.NewStatusRecorder(w)

			next.ServeHTTP(sr, r)

			m.RequestLatency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
			m.RequestCount.WithLabelValues(route, r.Method, strconv.Itoa(sr.StatusCode)).Inc()
		})
	}
}

func (m *Metrics) ObserveSync(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.SyncRuns.WithLabelValues(status).Inc()
	m.SyncDuration.Observe(duration.Seconds())
}

func (m *Metrics) IncSyncDispatch() {
	if m == nil {
		return
	}
	m.SyncDispatches.Inc()
}

func (m *Metrics) IncAssemblySkipped() {
	if m == nil {
		return
	}
	m.AssemblySkipped.Inc()
}

func (m *Metrics) IncVendorRequest(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.VendorRequests.WithLabelValues(endpoint, outcome).Inc()
}
