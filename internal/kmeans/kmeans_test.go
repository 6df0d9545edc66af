package kmeans

import (
	"testing"

	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []model.Point {
	return []model.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 10, Y: 0}, {X: 10, Y: 1}}
}

func TestTrain_TwoClusters(t *testing.T) {
	points := square()
	centroids := []model.Centroid{{X: 0, Y: 0, ID: 0}, {X: 10, Y: 0, ID: 1}}

	res := Train(points, centroids, 5, Options{})

	assert.Equal(t, 5, res.Iterations)
	assert.Len(t, res.History, 5)
	labels := []int{points[0].Cluster, points[1].Cluster, points[2].Cluster, points[3].Cluster}
	assert.Equal(t, []int{0, 0, 1, 1}, labels)
	assert.InDelta(t, 0.0, centroids[0].X, 1e-12)
	assert.InDelta(t, 0.5, centroids[0].Y, 1e-12)
	assert.InDelta(t, 10.0, centroids[1].X, 1e-12)
	assert.InDelta(t, 0.5, centroids[1].Y, 1e-12)
	assert.InDelta(t, 1.0, res.Inertia, 1e-12)
}

func TestTrain_ZeroIterations(t *testing.T) {
	points := square()
	centroids := []model.Centroid{{X: 100, Y: 100, ID: 0}, {X: 0, Y: 0, ID: 1}}

	res := Train(points, centroids, 0, Options{})

	assert.Zero(t, res.Iterations)
	assert.Empty(t, res.History)
	for _, p := range points {
		assert.Equal(t, 0, p.Cluster)
	}
	assert.Equal(t, 100.0, centroids[0].X)
	assert.Equal(t, Inertia(points, centroids), res.Inertia)
}

func TestTrain_EmptyCentroidStays(t *testing.T) {
	points := square()
	centroids := []model.Centroid{{X: 5, Y: 0.5, ID: 0}, {X: 1000, Y: 1000, ID: 1}}

	Train(points, centroids, 3, Options{})

	assert.Equal(t, model.Centroid{X: 1000, Y: 1000, ID: 1}, centroids[1])
	for _, p := range points {
		assert.Equal(t, 0, p.Cluster)
	}
}

func TestTrain_EarlyStop(t *testing.T) {
	points := square()
	centroids := []model.Centroid{{X: 0, Y: 0, ID: 0}, {X: 10, Y: 0, ID: 1}}

	res := Train(points, centroids, 100, Options{EarlyStop: true})

	assert.Less(t, res.Iterations, 100)
	assert.GreaterOrEqual(t, res.Iterations, 2)
	assert.InDelta(t, 1.0, res.Inertia, 1e-12)
}

func TestTrain_HistoryNonIncreasing(t *testing.T) {
	rng := random.NewSeeded(3)
	var points []model.Point
	for range 50 {
		points = append(points, model.Point{X: rng.NextUniform(0, 20), Y: rng.NextUniform(0, 20)})
		points = append(points, model.Point{X: rng.NextUniform(200, 220), Y: rng.NextUniform(0, 20)})
	}
	centroids := InitCentroids(rng, 2, model.Bounds(points))

	res := Train(points, centroids, 20, Options{})

	require.Len(t, res.History, 20)
	for i := 1; i < len(res.History); i++ {
		assert.LessOrEqual(t, res.History[i], res.History[i-1]+1e-9, "pass %d", i)
	}
}

func TestNearest_TieGoesToLowerIndex(t *testing.T) {
	centroids := []model.Centroid{{X: -1, Y: 0, ID: 0}, {X: 1, Y: 0, ID: 1}}
	idx, d := Nearest(0, 0, centroids)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, d)

	idx, _ = Nearest(0.5, 0, centroids)
	assert.Equal(t, 1, idx)
}

func TestInitCentroids(t *testing.T) {
	src := random.NewSequence(1, 2, 3, 4, 5, 6)
	centroids := InitCentroids(src, 3, model.Canvas)

	assert.Equal(t, []model.Centroid{
		{X: 1, Y: 2, ID: 0},
		{X: 3, Y: 4, ID: 1},
		{X: 5, Y: 6, ID: 2},
	}, centroids)
	assert.Equal(t, 6, src.Drawn())

	seeded := InitCentroids(random.NewSeeded(1), 10, model.Canvas)
	for _, c := range seeded {
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.Less(t, c.X, 500.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.Less(t, c.Y, 400.0)
	}
}
