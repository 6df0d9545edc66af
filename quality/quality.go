// Package quality scores a clustering.
//
// Inertia measures compactness only and always improves with more
// clusters. Silhouette balances cohesion against separation and is
// comparable across different k on the same data.
package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
)

// Inertia returns the sum of squared distances from each point to the
// centroid with the point's label.
// Labels outside centroids are skipped.
func Inertia(points []model.Point, centroids []model.Centroid) float64 {
	terms := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Cluster < 0 || p.Cluster >= len(centroids) {
			continue
		}
		c := centroids[p.Cluster]
		terms = append(terms, distance.SquaredL2(p.X, p.Y, c.X, c.Y))
	}
	return floats.Sum(terms)
}

// ClusterSizes counts the points carrying each label in [0, k).
func ClusterSizes(points []model.Point, k int) []int {
	sizes := make([]int, k)
	for _, p := range points {
		if p.Cluster >= 0 && p.Cluster < k {
			sizes[p.Cluster]++
		}
	}
	return sizes
}

// Silhouette returns the mean silhouette coefficient of the labeling.
//
// For point i, a(i) is its mean Euclidean distance to the other members
// of its cluster and b(i) the smallest mean distance to the members of
// any other non-empty cluster. s(i) = (b-a)/max(a,b), and s(i) = 0 for
// members of singleton clusters. The result lies in [-1, 1]; it is 0
// when fewer than two clusters are populated.
//
// The cost is O(n²).
func Silhouette(points []model.Point, k int) float64 {
	// MetricEuclidean is always supported.
	s, _ := SilhouetteMetric(points, k, distance.MetricEuclidean)
	return s
}

// SilhouetteMetric is Silhouette under the given distance metric.
func SilhouetteMetric(points []model.Point, k int, metric distance.Metric) (float64, error) {
	dist, err := distance.Provider(metric)
	if err != nil {
		return 0, err
	}

	sizes := ClusterSizes(points, k)
	populated := 0
	for _, n := range sizes {
		if n > 0 {
			populated++
		}
	}
	if populated < 2 {
		return 0, nil
	}

	scores := make([]float64, len(points))
	sums := make([]float64, k)
	for i, p := range points {
		if p.Cluster < 0 || p.Cluster >= k {
			continue
		}
		clear(sums)
		for j, q := range points {
			if i == j || q.Cluster < 0 || q.Cluster >= k {
				continue
			}
			sums[q.Cluster] += dist(p.X, p.Y, q.X, q.Y)
		}

		own := p.Cluster
		if sizes[own] <= 1 {
			continue
		}
		a := sums[own] / float64(sizes[own]-1)

		b := math.Inf(1)
		for c, n := range sizes {
			if c == own || n == 0 {
				continue
			}
			b = min(b, sums[c]/float64(n))
		}

		if den := max(a, b); den > 0 {
			scores[i] = (b - a) / den
		}
	}

	return floats.Sum(scores) / float64(len(points)), nil
}
