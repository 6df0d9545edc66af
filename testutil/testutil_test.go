package testutil

import (
	"testing"

	"github.com/hupe1980/lloyd/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	points := rng.UniformPoints(50, model.Canvas)

	assert.Len(t, points, 50)
	for _, p := range points {
		assert.True(t, model.Canvas.Contains(p))
		assert.Zero(t, p.Cluster)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.UniformPoints(5, model.Canvas)
	rng.Reset()
	b := rng.UniformPoints(5, model.Canvas)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())

	rng.Reset()
	p1, _ := rng.ClusteredPoints(6, 2, 50, 3)
	rng.Reset()
	p2, _ := rng.ClusteredPoints(6, 2, 50, 3)
	assert.Equal(t, p1, p2)
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	points, truth := rng.ClusteredPoints(30, 3, 100, 1)

	require.Len(t, points, 30)
	require.Len(t, truth, 30)
	assert.Equal(t, []int{0, 1, 2}, truth[:3])
	// Center 0 sits at (100, 0).
	assert.InDelta(t, 100, points[0].X, 10)
	assert.InDelta(t, 0, points[0].Y, 10)
}

func TestExactLabels(t *testing.T) {
	points := []model.Point{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 5, Y: 0}}
	centroids := []model.Centroid{{X: 0, Y: 0}, {X: 10, Y: 0}}

	// (5,0) is equidistant and goes to the lower index.
	assert.Equal(t, []int{0, 1, 0}, ExactLabels(points, centroids))
}

func TestPurity(t *testing.T) {
	assert.Equal(t, 1.0, Purity([]int{1, 1, 0, 0}, []int{0, 0, 1, 1}))
	assert.Equal(t, 0.75, Purity([]int{0, 0, 0, 1}, []int{0, 0, 1, 1}))
	assert.Equal(t, 1.0, Purity(nil, nil))
	assert.Equal(t, 0.0, Purity([]int{0}, nil))
}
