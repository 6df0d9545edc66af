package lloyd

import (
	"context"
	"testing"

	"github.com/hupe1980/lloyd/datagen"
	"github.com/hupe1980/lloyd/random"
	"github.com/hupe1980/lloyd/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch(t *testing.T) {
	points := datagen.Canvas(random.NewSeeded(1))

	jobs := []Job{
		{Points: points, Config: Config{K: 2, MaxIterations: 10}},
		{Points: points, Config: Config{K: 3, MaxIterations: 10}},
		{Points: points, Config: Config{K: 4, MaxIterations: 10, Silhouette: true}},
		{Points: twoPairs(), Config: Config{K: 1, MaxIterations: 1}},
	}

	t.Run("KeepsJobOrder", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		eng := New(WithRandomSource(random.NewSeeded(2)), WithMetricsCollector(metrics))

		results, err := eng.RunBatch(context.Background(), jobs)
		require.NoError(t, err)
		require.Len(t, results, len(jobs))
		for i, res := range results {
			require.NotNil(t, res)
			assert.Equal(t, jobs[i].Config.K, res.K)
			assert.Len(t, res.Points, len(jobs[i].Points))
		}
		assert.NotNil(t, results[2].Silhouette)

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.BatchCount)
		assert.Equal(t, int64(len(jobs)), stats.BatchJobs)
		assert.Zero(t, stats.BatchFailed)
		assert.Equal(t, int64(len(jobs)), stats.RunCount)
	})

	t.Run("WithController", func(t *testing.T) {
		ctrl := resource.NewController(resource.Config{MaxWorkers: 1, MaxInFlightPoints: 100})
		eng := New(WithRandomSource(random.NewSeeded(2)), WithResourceController(ctrl))

		results, err := eng.RunBatch(context.Background(), jobs)
		require.NoError(t, err)
		assert.Len(t, results, len(jobs))
		assert.Zero(t, ctrl.PointsInFlight())
	})

	t.Run("FailingJob", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		eng := New(WithMetricsCollector(metrics))

		bad := append([]Job{}, jobs...)
		bad = append(bad, Job{Points: points, Config: Config{K: 0}})

		results, err := eng.RunBatch(context.Background(), bad)
		assert.Nil(t, results)
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorContains(t, err, "job 4")
		assert.Equal(t, int64(1), metrics.GetStats().BatchFailed)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New().RunBatch(ctx, jobs)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Empty", func(t *testing.T) {
		results, err := New().RunBatch(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
