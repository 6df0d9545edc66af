package lloyd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// observability/prometheus package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordRun is called after each run.
	// iterations is the number of passes executed, err is nil if successful.
	RecordRun(k, points, iterations int, duration time.Duration, err error)

	// RecordBatch is called after each batch.
	// count is the number of jobs attempted, failed is the number that failed.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	RunPoints       atomic.Int64
	RunIterations   atomic.Int64
	BatchCount      atomic.Int64
	BatchJobs       atomic.Int64
	BatchFailed     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_, points, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.RunPoints.Add(int64(points))
	b.RunIterations.Add(int64(iterations))
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchJobs.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunAvgNanos:   avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
		RunPoints:     b.RunPoints.Load(),
		RunIterations: b.RunIterations.Load(),
		BatchCount:    b.BatchCount.Load(),
		BatchJobs:     b.BatchJobs.Load(),
		BatchFailed:   b.BatchFailed.Load(),
		BatchAvgNanos: avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount      int64
	RunErrors     int64
	RunAvgNanos   int64
	RunPoints     int64
	RunIterations int64
	BatchCount    int64
	BatchJobs     int64
	BatchFailed   int64
	BatchAvgNanos int64
}
