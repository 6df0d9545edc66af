package lloyd

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/quality"
)

// Config holds the parameters of a single run.
type Config struct {
	// K is the number of clusters. Must be at least 1 and may exceed the
	// number of points.
	K int

	// MaxIterations is the number of assignment/update passes.
	// Zero performs no passes.
	MaxIterations int

	// Domain is the rectangle centroids are seeded from.
	// If nil, the bounding box of the input points is used.
	Domain *model.Rect

	// EarlyStop ends the run after the first pass that changes no label.
	EarlyStop bool

	// Silhouette computes the silhouette coefficient of the final labels.
	Silhouette bool
}

func (c Config) validate(points []model.Point) error {
	if len(points) == 0 {
		return invalidArgument("points", len(points), "must not be empty")
	}
	if c.K < 1 {
		return invalidArgument("k", c.K, "must be at least 1")
	}
	if c.MaxIterations < 0 {
		return invalidArgument("maxIterations", c.MaxIterations, "must not be negative")
	}
	if d := c.Domain; d != nil {
		if d.Width() < 0 || d.Height() < 0 || math.IsNaN(d.Width()) || math.IsNaN(d.Height()) {
			return invalidArgument("domain", *d, "max must not be below min")
		}
	}
	return nil
}

// Engine runs K-Means. It is safe for concurrent use as long as its
// random source is.
type Engine struct {
	opts options
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	return &Engine{opts: applyOptions(optFns)}
}

var defaultEngine = New()

// Run clusters points into k clusters with maxIterations passes on the
// default engine.
func Run(points []model.Point, k, maxIterations int) (*RunResult, error) {
	return defaultEngine.Run(points, Config{K: k, MaxIterations: maxIterations})
}

// Run clusters a copy of points. The caller's slice is never modified and
// the Cluster field of the inputs is ignored.
func (e *Engine) Run(points []model.Point, cfg Config) (*RunResult, error) {
	start := time.Now()

	res, err := e.run(points, cfg)

	ctx := context.Background()
	if err != nil {
		e.opts.logger.LogRun(ctx, cfg.K, len(points), 0, err)
		e.opts.metricsCollector.RecordRun(cfg.K, len(points), 0, time.Since(start), err)
		return nil, err
	}

	e.opts.logger.WithRunID(res.ID).LogRun(ctx, res.K, len(res.Points), res.Iterations, nil)
	e.opts.metricsCollector.RecordRun(res.K, len(res.Points), res.Iterations, time.Since(start), nil)
	return res, nil
}

func (e *Engine) run(points []model.Point, cfg Config) (*RunResult, error) {
	if err := cfg.validate(points); err != nil {
		return nil, err
	}

	start := time.Now()

	work := model.ClonePoints(points)

	domain := model.Bounds(work)
	if cfg.Domain != nil {
		domain = *cfg.Domain
	}

	centroids := kmeans.InitCentroids(e.opts.source, cfg.K, domain)
	trained := kmeans.Train(work, centroids, cfg.MaxIterations, kmeans.Options{EarlyStop: cfg.EarlyStop})

	res := &RunResult{
		ID:         uuid.NewString(),
		K:          cfg.K,
		Points:     work,
		Centroids:  centroids,
		Inertia:    trained.Inertia,
		Iterations: trained.Iterations,
		History:    trained.History,
	}

	if cfg.Silhouette {
		s := quality.Silhouette(work, cfg.K)
		res.Silhouette = &s
	}

	res.ElapsedMillis = float64(time.Since(start)) / float64(time.Millisecond)
	res.CreatedAt = time.Now().UTC()

	return res, nil
}
