package quality

import (
	"testing"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoGroups() []model.Point {
	return []model.Point{
		{X: 0, Y: 0, Cluster: 0},
		{X: 0, Y: 1, Cluster: 0},
		{X: 10, Y: 0, Cluster: 1},
		{X: 10, Y: 1, Cluster: 1},
	}
}

func TestInertia(t *testing.T) {
	centroids := []model.Centroid{{X: 0, Y: 0.5, ID: 0}, {X: 10, Y: 0.5, ID: 1}}
	assert.InDelta(t, 1.0, Inertia(twoGroups(), centroids), 1e-12)
}

func TestInertia_SkipsUnknownLabels(t *testing.T) {
	points := []model.Point{{X: 1, Y: 0, Cluster: 0}, {X: 5, Y: 5, Cluster: 7}}
	centroids := []model.Centroid{{X: 0, Y: 0, ID: 0}}
	assert.InDelta(t, 1.0, Inertia(points, centroids), 1e-12)
}

func TestClusterSizes(t *testing.T) {
	assert.Equal(t, []int{2, 2, 0}, ClusterSizes(twoGroups(), 3))
}

func TestSilhouette_WellSeparated(t *testing.T) {
	s := Silhouette(twoGroups(), 2)
	assert.Greater(t, s, 0.85)
	assert.LessOrEqual(t, s, 1.0)
}

func TestSilhouette_Exact(t *testing.T) {
	// Both points of cluster 0 see a=1, b=mean(10, sqrt(101)).
	points := twoGroups()
	s := Silhouette(points, 2)

	b := (10 + 10.04987562112089) / 2
	expected := (b - 1) / b
	assert.InDelta(t, expected, s, 1e-9)
}

func TestSilhouette_BadLabeling(t *testing.T) {
	points := []model.Point{
		{X: 0, Y: 0, Cluster: 0},
		{X: 10, Y: 0, Cluster: 0},
		{X: 0, Y: 1, Cluster: 1},
		{X: 10, Y: 1, Cluster: 1},
	}
	assert.Less(t, Silhouette(points, 2), 0.0)
}

func TestSilhouette_Degenerate(t *testing.T) {
	t.Run("SingleCluster", func(t *testing.T) {
		points := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
		assert.Zero(t, Silhouette(points, 1))
	})

	t.Run("EmptyClustersIgnored", func(t *testing.T) {
		assert.InDelta(t, Silhouette(twoGroups(), 2), Silhouette(twoGroups(), 5), 1e-12)
	})

	t.Run("Singletons", func(t *testing.T) {
		points := []model.Point{{X: 0, Y: 0, Cluster: 0}, {X: 5, Y: 5, Cluster: 1}}
		assert.Zero(t, Silhouette(points, 2))
	})
}

func TestSilhouetteMetric(t *testing.T) {
	euclidean, err := SilhouetteMetric(twoGroups(), 2, distance.MetricEuclidean)
	require.NoError(t, err)
	assert.Equal(t, Silhouette(twoGroups(), 2), euclidean)

	// Squared distances: a=1, b=mean(100, 101).
	squared, err := SilhouetteMetric(twoGroups(), 2, distance.MetricSquaredL2)
	require.NoError(t, err)
	assert.InDelta(t, 99.5/100.5, squared, 1e-12)

	_, err = SilhouetteMetric(twoGroups(), 2, distance.Metric(99))
	assert.ErrorContains(t, err, "unsupported metric")
}
