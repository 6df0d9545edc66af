package testutil

import (
	"math"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/random"
)

// RNG wraps a random.Seeded source with point-set generators.
// It is thread-safe and implements random.Source.
type RNG struct {
	*random.Seeded
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{Seeded: random.NewSeeded(seed)}
}

// UniformPoints generates num points uniformly in rect.
func (r *RNG) UniformPoints(num int, rect model.Rect) []model.Point {
	points := make([]model.Point, num)
	for i := range points {
		points[i] = model.Point{
			X: r.NextUniform(rect.MinX, rect.MaxX),
			Y: r.NextUniform(rect.MinY, rect.MaxY),
		}
	}
	return points
}

// ClusteredPoints generates num points around clusters centers spaced
// evenly on a circle of the given radius, with Gaussian noise of the given
// spread. It returns the points and the index of the center each point was
// drawn from.
func (r *RNG) ClusteredPoints(num, clusters int, radius, spread float64) ([]model.Point, []int) {
	centers := make([]model.Centroid, clusters)
	for c := range centers {
		angle := 2 * math.Pi * float64(c) / float64(clusters)
		centers[c] = model.Centroid{X: radius * math.Cos(angle), Y: radius * math.Sin(angle), ID: c}
	}

	points := make([]model.Point, num)
	truth := make([]int, num)
	for i := range points {
		c := centers[i%clusters]
		points[i] = model.Point{
			X: c.X + r.NormFloat64()*spread,
			Y: c.Y + r.NormFloat64()*spread,
		}
		truth[i] = c.ID
	}
	return points, truth
}

// ExactLabels assigns every point to its nearest centroid by brute force,
// with ties going to the lower index.
func ExactLabels(points []model.Point, centroids []model.Centroid) []int {
	labels := make([]int, len(points))
	for i, p := range points {
		best, bestDist := 0, math.Inf(1)
		for j, c := range centroids {
			if d := distance.SquaredL2(p.X, p.Y, c.X, c.Y); d < bestDist {
				best, bestDist = j, d
			}
		}
		labels[i] = best
	}
	return labels
}

// Labels extracts the cluster labels of points.
func Labels(points []model.Point) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = p.Cluster
	}
	return out
}

// Purity returns the fraction of points whose predicted cluster's majority
// truth class matches their own truth class. Label permutations do not
// affect the score.
func Purity(predicted, truth []int) float64 {
	if len(predicted) == 0 || len(predicted) != len(truth) {
		if len(predicted) == 0 && len(truth) == 0 {
			return 1.0
		}
		return 0.0
	}

	counts := make(map[int]map[int]int)
	for i, p := range predicted {
		if counts[p] == nil {
			counts[p] = make(map[int]int)
		}
		counts[p][truth[i]]++
	}

	hits := 0
	for _, byTruth := range counts {
		best := 0
		for _, n := range byTruth {
			best = max(best, n)
		}
		hits += best
	}

	return float64(hits) / float64(len(predicted))
}
