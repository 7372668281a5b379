package metrics

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of scoring a single replay.
const (
	Scored    = "scored"
	Malformed = "malformed"
	Rejected  = "rejected"
	Failed    = "failed"
)

type Metrics struct {
	Registry *prometheus.Registry

	replays   *prometheus.CounterVec
	corrupted prometheus.Counter
	duration  prometheus.Histogram
	accuracy  prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		replays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beatstat",
			Name:      "replays_total",
			Help:      "Replays processed, by outcome.",
		}, []string{"outcome"}),
		corrupted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beatstat",
			Name:      "corrupted_replays_total",
			Help:      "Scored replays with duplicated note events.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beatstat",
			Name:      "score_duration_seconds",
			Help:      "Time spent parsing and scoring one replay.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		accuracy: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beatstat",
			Name:      "accuracy_ratio",
			Help:      "Accuracy of scored replays.",
			Buckets:   prometheus.LinearBuckets(0.5, 0.05, 10),
		}),
	}
	m.Registry.MustRegister(m.replays, m.corrupted, m.duration, m.accuracy)
	return m
}

// Observe records one replay. Accuracy and corruption only count for scored replays.
func (m *Metrics) Observe(outcome string, d time.Duration, accuracy float64, corrupted bool) {
	m.replays.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
	if outcome != Scored {
		return
	}
	m.accuracy.Observe(accuracy)
	if corrupted {
		m.corrupted.Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until the returned server is shut down.
func (m *Metrics) Serve(addr string, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Printf("serving metrics on %s/metrics", addr)
		if err := server.ListenAndServe(); nil != err && !errors.Is(err, http.ErrServerClosed) {
			logger.Println("metrics server stopped:", err)
		}
	}()
	return server
}
