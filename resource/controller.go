// Package resource bounds the work a process spends on clustering runs
// and snapshot IO.
package resource

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of runs executing at once.
	// If 0, defaults to GOMAXPROCS.
	MaxWorkers int64

	// MaxInFlightPoints caps the total number of points held by runs
	// executing at once. If 0, no limit is enforced (only tracking).
	MaxInFlightPoints int64

	// IOLimitBytesPerSec is the maximum snapshot write throughput.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages worker slots, the in-flight point budget and IO.
// A nil *Controller imposes no limits.
type Controller struct {
	cfg Config

	workers *semaphore.Weighted

	pointSem  *semaphore.Weighted // nil if unlimited
	pointsIn  atomic.Int64
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.MaxInFlightPoints > 0 {
		c.pointSem = semaphore.NewWeighted(cfg.MaxInFlightPoints)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// Config returns the effective limits.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireWorker reserves a worker slot, blocking until one is free or
// ctx is canceled.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}
	return c.workers.Acquire(ctx, 1)
}

// TryAcquireWorker reserves a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workers.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workers.Release(1)
}

// AcquirePoints reserves n points of the in-flight budget.
// A request larger than the whole budget is clamped to the budget so it
// can still run alone.
func (c *Controller) AcquirePoints(ctx context.Context, n int64) error {
	if c == nil || n <= 0 {
		return nil
	}

	if c.pointSem != nil {
		if err := c.pointSem.Acquire(ctx, c.clamp(n)); err != nil {
			return err
		}
	}

	c.pointsIn.Add(n)
	return nil
}

// ReleasePoints returns n points to the budget.
func (c *Controller) ReleasePoints(n int64) {
	if c == nil || n <= 0 {
		return
	}

	if c.pointSem != nil {
		c.pointSem.Release(c.clamp(n))
	}
	c.pointsIn.Add(-n)
}

// PointsInFlight returns the number of points currently reserved.
func (c *Controller) PointsInFlight() int64 {
	if c == nil {
		return 0
	}
	return c.pointsIn.Load()
}

func (c *Controller) clamp(n int64) int64 {
	return min(n, c.cfg.MaxInFlightPoints)
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
// Requests larger than the burst are split.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}

	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
