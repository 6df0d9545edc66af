package resource

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})

	require.NoError(t, c.AcquireWorker(context.Background()))
	require.NoError(t, c.AcquireWorker(context.Background()))

	assert.False(t, c.TryAcquireWorker())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireWorker(ctx), context.DeadlineExceeded)

	c.ReleaseWorker()
	assert.True(t, c.TryAcquireWorker())
}

func TestController_DefaultWorkers(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, int64(runtime.GOMAXPROCS(0)), c.Config().MaxWorkers)
}

func TestController_Points(t *testing.T) {
	c := NewController(Config{MaxInFlightPoints: 100})

	require.NoError(t, c.AcquirePoints(context.Background(), 60))
	assert.Equal(t, int64(60), c.PointsInFlight())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquirePoints(ctx, 50), context.DeadlineExceeded)
	assert.Equal(t, int64(60), c.PointsInFlight())

	c.ReleasePoints(60)
	assert.Zero(t, c.PointsInFlight())

	// Oversized requests run alone.
	require.NoError(t, c.AcquirePoints(context.Background(), 500))
	assert.Equal(t, int64(500), c.PointsInFlight())
	c.ReleasePoints(500)
	assert.Zero(t, c.PointsInFlight())
}

func TestController_UnlimitedPoints(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquirePoints(context.Background(), 1_000_000))
	assert.Equal(t, int64(1_000_000), c.PointsInFlight())
	c.ReleasePoints(1_000_000)
	assert.Zero(t, c.PointsInFlight())
}

func TestController_IO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1000})

	start := time.Now()
	require.NoError(t, c.AcquireIO(context.Background(), 1000))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, c.AcquireIO(ctx, 3000))
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireWorker(context.Background()))
	assert.True(t, c.TryAcquireWorker())
	c.ReleaseWorker()
	require.NoError(t, c.AcquirePoints(context.Background(), 10))
	c.ReleasePoints(10)
	assert.Zero(t, c.PointsInFlight())
	require.NoError(t, c.AcquireIO(context.Background(), 1<<20))
	assert.Equal(t, Config{}, c.Config())
}
