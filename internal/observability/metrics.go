package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	cellInits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cellkit",
			Subsystem: "cell",
			Name:      "init_total",
			Help:      "Cell initialization attempts.",
		},
		[]string{"cell", "outcome"},
	)
	cellInitDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cellkit",
			Subsystem: "cell",
			Name:      "init_duration_seconds",
			Help:      "Cell initialization duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"cell", "outcome"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cellkit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cellkit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(cellInits, cellInitDuration, httpRequests, httpDuration)
	})
}

func RecordCellInit(name string, success bool, duration time.Duration) {
	RegisterMetrics()
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	cellInits.WithLabelValues(name, outcome).Inc()
	cellInitDuration.WithLabelValues(name, outcome).Observe(duration.Seconds())
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}
