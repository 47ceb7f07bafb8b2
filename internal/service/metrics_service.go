package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsSnapshot is a JSON friendly summary of the counters.
type MetricsSnapshot struct {
	Requests          uint64  `json:"requests"`
	AvgRequestMs      float64 `json:"avgRequestMs"`
	Persists          uint64  `json:"persists"`
	PersistFailures   uint64  `json:"persistFailures"`
	AvgPersistMs      float64 `json:"avgPersistMs"`
	Reseeds           uint64  `json:"reseeds"`
	LastPersistFailed bool    `json:"lastPersistFailed"`
}

// MetricsService encapsulates Prometheus instrumentation. It also satisfies
// the store's metrics sink.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	persistDuration *prometheus.HistogramVec
	persistFailures prometheus.Counter
	reseeds         *prometheus.CounterVec
	lastPersistOK   prometheus.Gauge

	requestCount         uint64
	requestDurationTotal uint64
	persistCount         uint64
	persistFailCount     uint64
	persistDurationTotal uint64
	reseedCount          uint64
	lastPersistFailed    uint32
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	persistDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_persist_duration_seconds",
		Help:    "Duration of full store saves",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	persistFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_persist_failures_total",
		Help: "Saves that failed and left the backend behind memory",
	})

	reseeds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_reseeds_total",
		Help: "Times the demo data set replaced the store contents",
	}, []string{"reason"})

	lastPersistOK := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "store_last_persist_ok",
		Help: "1 when the most recent save succeeded",
	})
	lastPersistOK.Set(1)

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, persistDuration, persistFailures, reseeds, lastPersistOK, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		persistDuration: persistDuration,
		persistFailures: persistFailures,
		reseeds:         reseeds,
		lastPersistOK:   lastPersistOK,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObservePersist records one store save.
func (m *MetricsService) ObservePersist(duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
		m.persistFailures.Inc()
		m.lastPersistOK.Set(0)
		atomic.AddUint64(&m.persistFailCount, 1)
		atomic.StoreUint32(&m.lastPersistFailed, 1)
	} else {
		m.lastPersistOK.Set(1)
		atomic.StoreUint32(&m.lastPersistFailed, 0)
	}
	m.persistDuration.WithLabelValues(result).Observe(duration.Seconds())
	atomic.AddUint64(&m.persistCount, 1)
	atomic.AddUint64(&m.persistDurationTotal, uint64(duration.Nanoseconds()))
}

// IncReseed counts a demo data reseed.
func (m *MetricsService) IncReseed(reason string) {
	if m == nil {
		return
	}
	m.reseeds.WithLabelValues(reason).Inc()
	atomic.AddUint64(&m.reseedCount, 1)
}

// Snapshot returns aggregated metrics suitable for the JSON summary endpoint.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)
	persists := atomic.LoadUint64(&m.persistCount)
	persistDuration := atomic.LoadUint64(&m.persistDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}
	var avgPersistMs float64
	if persists > 0 {
		avgPersistMs = float64(persistDuration) / float64(persists) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		Requests:          requests,
		AvgRequestMs:      avgRequestMs,
		Persists:          persists,
		PersistFailures:   atomic.LoadUint64(&m.persistFailCount),
		AvgPersistMs:      avgPersistMs,
		Reseeds:           atomic.LoadUint64(&m.reseedCount),
		LastPersistFailed: atomic.LoadUint32(&m.lastPersistFailed) == 1,
	}
}
