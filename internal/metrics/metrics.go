// Package metrics exposes Prometheus counters and histograms for the review
// service. The collector carries its own registry so tests never collide on
// the global one.
package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sqlrecsys/server/internal/logging"
)

// Collector records review and provider activity.
type Collector struct {
	reviewsTotal     *prometheus.CounterVec
	stageDuration    *prometheus.HistogramVec
	providerRequests *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	errorsTotal      *prometheus.CounterVec
	cacheEvents      *prometheus.CounterVec
	registry         *prometheus.Registry
}

// NewCollector builds a collector with a private registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	reviewsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_reviews_total",
			Help: "Total number of schema reviews by final status",
		},
		[]string{"status"},
	)

	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schema_review_stage_duration_seconds",
			Help:    "Duration of individual review workflow stages",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 15.0, 60.0},
		},
		[]string{"stage"},
	)

	providerRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_provider_requests_total",
			Help: "Total number of model provider calls by provider and status",
		},
		[]string{"provider", "status"},
	)

	providerDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_provider_request_duration_seconds",
			Help:    "Duration of model provider calls",
			Buckets: []float64{0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"provider"},
	)

	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_review_errors_total",
			Help: "Total number of review failures by error kind",
		},
		[]string{"kind"},
	)

	cacheEvents := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_review_cache_events_total",
			Help: "Result cache hits and misses",
		},
		[]string{"event"},
	)

	registry.MustRegister(reviewsTotal)
	registry.MustRegister(stageDuration)
	registry.MustRegister(providerRequests)
	registry.MustRegister(providerDuration)
	registry.MustRegister(errorsTotal)
	registry.MustRegister(cacheEvents)

	return &Collector{
		reviewsTotal:     reviewsTotal,
		stageDuration:    stageDuration,
		providerRequests: providerRequests,
		providerDuration: providerDuration,
		errorsTotal:      errorsTotal,
		cacheEvents:      cacheEvents,
		registry:         registry,
	}
}

// RecordReview records a finished review with its final status.
func (c *Collector) RecordReview(status string) {
	c.reviewsTotal.WithLabelValues(status).Inc()
}

// RecordStage records how long a workflow stage took.
func (c *Collector) RecordStage(stage string, d time.Duration) {
	c.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordProviderCall records a model provider call.
func (c *Collector) RecordProviderCall(provider, status string, d time.Duration) {
	c.providerRequests.WithLabelValues(provider, status).Inc()
	c.providerDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// RecordError records a review failure by error kind.
func (c *Collector) RecordError(kind string) {
	c.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheEvent records a result cache hit or miss.
func (c *Collector) RecordCacheEvent(event string) {
	c.cacheEvents.WithLabelValues(event).Inc()
}

// Registry returns the Prometheus registry for HTTP exposure.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Serve exposes /metrics on the given port until ctx is canceled.
// It returns the listener error, or nil after a clean shutdown.
func (c *Collector) Serve(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	log := logging.New("metrics")
	log.Infof("metrics listening on %s", srv.Addr)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
