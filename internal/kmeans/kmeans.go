package kmeans

import (
	"math"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/random"
)

// Options tunes a training run.
type Options struct {
	// EarlyStop ends training after the first assignment pass that
	// changes no label. When false, exactly maxIter passes run.
	EarlyStop bool
}

// Result summarizes a training run.
type Result struct {
	// Iterations is the number of assignment passes executed.
	Iterations int
	// History holds the inertia measured right after each assignment
	// pass, before the centroids move.
	History []float64
	// Inertia is measured against the final centroid positions.
	Inertia float64
}

// InitCentroids draws k centroids uniformly from domain.
// For each centroid, x is drawn before y.
func InitCentroids(src random.Source, k int, domain model.Rect) []model.Centroid {
	centroids := make([]model.Centroid, k)
	for i := range centroids {
		x := src.NextUniform(domain.MinX, domain.MaxX)
		y := src.NextUniform(domain.MinY, domain.MaxY)
		centroids[i] = model.Centroid{X: x, Y: y, ID: i}
	}
	return centroids
}

// Train runs Lloyd's algorithm in place: points get their labels
// overwritten and centroids move to the mean of their members.
// Centroids that end a pass without members keep their position.
func Train(points []model.Point, centroids []model.Centroid, maxIter int, opts Options) Result {
	k := len(centroids)
	counts := make([]int, k)
	sumX := make([]float64, k)
	sumY := make([]float64, k)

	res := Result{
		History: make([]float64, 0, maxIter),
	}

	for iter := 0; iter < maxIter; iter++ {
		// Assignment step
		changed := false
		var cost float64
		for i := range points {
			best, d := Nearest(points[i].X, points[i].Y, centroids)
			if points[i].Cluster != best {
				points[i].Cluster = best
				changed = true
			}
			cost += d
		}
		res.Iterations++
		res.History = append(res.History, cost)

		// The first pass always counts as a change: labels start at 0
		// without ever having been compared.
		if opts.EarlyStop && iter > 0 && !changed {
			break
		}

		// Update step
		clear(counts)
		clear(sumX)
		clear(sumY)
		for _, p := range points {
			counts[p.Cluster]++
			sumX[p.Cluster] += p.X
			sumY[p.Cluster] += p.Y
		}
		for j := range centroids {
			if counts[j] == 0 {
				continue
			}
			n := float64(counts[j])
			centroids[j].X = sumX[j] / n
			centroids[j].Y = sumY[j] / n
		}
	}

	res.Inertia = Inertia(points, centroids)
	return res
}

// Nearest returns the index of the centroid closest to (x, y) and the
// squared distance to it. Ties resolve to the lowest index.
func Nearest(x, y float64, centroids []model.Centroid) (int, float64) {
	best := 0
	minDist := math.Inf(1)
	for j, c := range centroids {
		d := distance.SquaredL2(x, y, c.X, c.Y)
		if d < minDist {
			minDist = d
			best = j
		}
	}
	return best, minDist
}

// Inertia returns the sum of squared distances from each point to the
// centroid its label points at.
func Inertia(points []model.Point, centroids []model.Centroid) float64 {
	var sum float64
	for _, p := range points {
		c := centroids[p.Cluster]
		sum += distance.SquaredL2(p.X, p.Y, c.X, c.Y)
	}
	return sum
}
