package lloyd

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/hupe1980/lloyd/model"
	"golang.org/x/sync/errgroup"
)

// Job is one run of a batch.
type Job struct {
	Points []model.Point
	Config Config
}

// RunBatch runs independent jobs in parallel and returns their results in
// job order. Parallelism is bounded by the resource controller's worker
// slots, or GOMAXPROCS without one. The first failing job cancels the jobs
// that have not started yet.
func (e *Engine) RunBatch(ctx context.Context, jobs []Job) ([]*RunResult, error) {
	start := time.Now()
	results := make([]*RunResult, len(jobs))

	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	if e.opts.controller == nil {
		g.SetLimit(runtime.GOMAXPROCS(0))
	}

	ctrl := e.opts.controller
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctrl.AcquireWorker(gctx); err != nil {
				return err
			}
			defer ctrl.ReleaseWorker()

			n := int64(len(job.Points))
			if err := ctrl.AcquirePoints(gctx, n); err != nil {
				return err
			}
			defer ctrl.ReleasePoints(n)

			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := e.Run(job.Points, job.Config)
			if err != nil {
				failed.Add(1)
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()

	e.opts.logger.LogBatch(ctx, len(jobs), int(failed.Load()))
	e.opts.metricsCollector.RecordBatch(len(jobs), int(failed.Load()), time.Since(start))

	if err != nil {
		return nil, err
	}
	return results, nil
}
