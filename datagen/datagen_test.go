package datagen

import (
	"testing"

	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas(t *testing.T) {
	points := Canvas(random.NewSeeded(1))
	require.Len(t, points, DefaultCount)
	for _, p := range points {
		assert.True(t, model.Canvas.Contains(p), "point %v outside canvas", p)
		assert.Zero(t, p.Cluster)
	}
}

func TestUniform_Deterministic(t *testing.T) {
	a := Uniform(random.NewSeeded(9), 10, model.Canvas)
	b := Uniform(random.NewSeeded(9), 10, model.Canvas)
	assert.Equal(t, a, b)
}

func TestBlobs(t *testing.T) {
	centers := []model.Centroid{{X: 0, Y: 0, ID: 0}, {X: 100, Y: 100, ID: 1}}
	points := Blobs(random.NewSeeded(5), centers, 50, 1)
	truth := Truth(len(centers), 50)

	require.Len(t, points, 100)
	require.Len(t, truth, 100)

	for i, p := range points {
		c := centers[truth[i]]
		assert.InDelta(t, c.X, p.X, 6, "point %d", i)
		assert.InDelta(t, c.Y, p.Y, 6, "point %d", i)
	}
}

func TestBlobs_DegenerateSource(t *testing.T) {
	centers := []model.Centroid{{X: 3, Y: 4, ID: 0}}

	for _, src := range []random.Source{random.NewSequence(0), random.NewSequence(-1, -2), random.NewSequence(7)} {
		points := Blobs(src, centers, 3, 10)
		require.Len(t, points, 3)
		for _, p := range points {
			assert.Equal(t, model.Point{X: 3, Y: 4}, p)
		}
	}
}

func TestBlobs_SequenceRedraw(t *testing.T) {
	// 0 is redrawn once, then u1=1 gives a zero radius.
	src := random.NewSequence(0, 1, 0.25)
	points := Blobs(src, []model.Centroid{{X: 5, Y: 5}}, 1, 2)

	require.Len(t, points, 1)
	assert.InDelta(t, 5.0, points[0].X, 1e-12)
	assert.InDelta(t, 5.0, points[0].Y, 1e-12)
	assert.Equal(t, 3, src.Drawn())
}
