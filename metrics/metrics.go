// Package metrics registers the Prometheus collectors the job runner and
// tick driver update across a run, grounded on the teacher pack's
// dshills-langgraph-go graph.PrometheusMetrics: one struct of pre-built
// collectors created via promauto against a caller-supplied registry,
// rather than package-level globals, so multiple engine instances in the
// same process (as in tests) don't collide on metric names.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors holds every metric the engine publishes: jobs spawned/joined
// counters, a job-duration histogram, and gauges for the current size of
// the component a cargo's in-flight job is working on and how many
// components are queued behind it.
type Collectors struct {
	jobsSpawned  *prometheus.CounterVec
	jobsJoined   *prometheus.CounterVec
	jobDuration  *prometheus.HistogramVec
	componentSz  *prometheus.GaugeVec
	queueDepth   *prometheus.GaugeVec
	workerFallbk *prometheus.CounterVec
}

// New registers the engine's collectors against registry. Passing nil uses
// prometheus.DefaultRegisterer, matching NewPrometheusMetrics's convention.
func New(registry prometheus.Registerer) *Collectors {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Collectors{
		jobsSpawned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cargoflow",
			Name:      "jobs_spawned_total",
			Help:      "Number of link graph jobs spawned, by cargo.",
		}, []string{"cargo"}),

		jobsJoined: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cargoflow",
			Name:      "jobs_joined_total",
			Help:      "Number of link graph jobs joined, by cargo.",
		}, []string{"cargo"}),

		jobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cargoflow",
			Name:      "job_duration_seconds",
			Help:      "Wall-clock time from spawn to join for one job's handler pipeline.",
			Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60},
		}, []string{"cargo"}),

		componentSz: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cargoflow",
			Name:      "component_size",
			Help:      "Node count of the component a cargo's in-flight job last built.",
		}, []string{"cargo"}),

		queueDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cargoflow",
			Name:      "queue_depth",
			Help:      "Number of in-flight jobs currently queued for a cargo.",
		}, []string{"cargo"}),

		workerFallbk: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cargoflow",
			Name:      "worker_fallback_total",
			Help:      "Number of jobs that fell back to inline execution after worker creation failed.",
		}, []string{"cargo"}),
	}
}

// JobSpawned records one job spawn for the given cargo.
func (c *Collectors) JobSpawned(cargoLabel string) {
	c.jobsSpawned.WithLabelValues(cargoLabel).Inc()
}

// JobJoined records one job join and its end-to-end duration.
func (c *Collectors) JobJoined(cargoLabel string, d time.Duration) {
	c.jobsJoined.WithLabelValues(cargoLabel).Inc()
	c.jobDuration.WithLabelValues(cargoLabel).Observe(d.Seconds())
}

// SetComponentSize publishes the node count of the component currently
// being worked on for cargoLabel.
func (c *Collectors) SetComponentSize(cargoLabel string, size int) {
	c.componentSz.WithLabelValues(cargoLabel).Set(float64(size))
}

// SetQueueDepth publishes how many jobs are queued for cargoLabel.
func (c *Collectors) SetQueueDepth(cargoLabel string, depth int) {
	c.queueDepth.WithLabelValues(cargoLabel).Set(float64(depth))
}

// WorkerFallback records that a job fell back to inline execution because
// worker creation failed.
func (c *Collectors) WorkerFallback(cargoLabel string) {
	c.workerFallbk.WithLabelValues(cargoLabel).Inc()
}
