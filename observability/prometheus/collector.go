// Package prometheus exports lloyd run metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector, _ := lloydprom.NewCollector(reg)
//	eng := lloyd.New(lloyd.WithMetricsCollector(collector))
package prometheus

import (
	"time"

	"github.com/hupe1980/lloyd"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lloyd"

// Collector implements lloyd.MetricsCollector with Prometheus metrics.
type Collector struct {
	runs          *prometheus.CounterVec
	runLatency    prometheus.Histogram
	runIterations prometheus.Histogram
	runPoints     prometheus.Histogram
	batches       prometheus.Counter
	batchJobs     *prometheus.CounterVec
	batchLatency  prometheus.Histogram
}

var _ lloyd.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of clustering runs by status.",
		}, []string{"status"}),
		runLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of clustering runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		runIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_iterations",
			Help:      "Assignment passes executed per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		runPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_points",
			Help:      "Points clustered per run.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 10),
		}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Number of batches executed.",
		}),
		batchJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_jobs_total",
			Help:      "Jobs executed in batches by status.",
		}, []string{"status"}),
		batchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Duration of batches.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, m := range []prometheus.Collector{
		c.runs, c.runLatency, c.runIterations, c.runPoints,
		c.batches, c.batchJobs, c.batchLatency,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordRun implements lloyd.MetricsCollector.
func (c *Collector) RecordRun(_, points, iterations int, duration time.Duration, err error) {
	c.runLatency.Observe(duration.Seconds())
	if err != nil {
		c.runs.WithLabelValues("error").Inc()
		return
	}
	c.runs.WithLabelValues("ok").Inc()
	c.runIterations.Observe(float64(iterations))
	c.runPoints.Observe(float64(points))
}

// RecordBatch implements lloyd.MetricsCollector.
func (c *Collector) RecordBatch(count, failed int, duration time.Duration) {
	c.batches.Inc()
	c.batchJobs.WithLabelValues("ok").Add(float64(count - failed))
	c.batchJobs.WithLabelValues("error").Add(float64(failed))
	c.batchLatency.Observe(duration.Seconds())
}
