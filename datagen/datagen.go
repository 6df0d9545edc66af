// Package datagen generates synthetic point clouds for demos and tests.
//
// Uniform reproduces the front-end's default dataset (200 points on the
// 500x400 canvas). Blobs produces separable clusters with a known
// ground truth.
package datagen

import (
	"math"

	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/random"
)

// DefaultCount is the number of points the front-end generates per batch.
const DefaultCount = 200

// Uniform draws n points uniformly from rect. x is drawn before y.
func Uniform(src random.Source, n int, rect model.Rect) []model.Point {
	points := make([]model.Point, n)
	for i := range points {
		points[i].X = src.NextUniform(rect.MinX, rect.MaxX)
		points[i].Y = src.NextUniform(rect.MinY, rect.MaxY)
	}
	return points
}

// Canvas draws DefaultCount points on model.Canvas.
func Canvas(src random.Source) []model.Point {
	return Uniform(src, DefaultCount, model.Canvas)
}

// Blobs draws perCluster points around each center with an isotropic
// Gaussian of standard deviation spread. Points are emitted center by
// center; the labels of the returned points are 0, use Truth for the
// generating center of each point.
func Blobs(src random.Source, centers []model.Centroid, perCluster int, spread float64) []model.Point {
	points := make([]model.Point, 0, len(centers)*perCluster)
	for _, c := range centers {
		for range perCluster {
			dx, dy := gaussianPair(src)
			points = append(points, model.Point{
				X: c.X + dx*spread,
				Y: c.Y + dy*spread,
			})
		}
	}
	return points
}

// Truth returns the generating center index for each point of a Blobs
// result with the given number of centers and perCluster.
func Truth(centers, perCluster int) []int {
	truth := make([]int, 0, centers*perCluster)
	for c := range centers {
		for range perCluster {
			truth = append(truth, c)
		}
	}
	return truth
}

// maxRedraws bounds the redraws of a non-positive Box-Muller radius sample.
const maxRedraws = 16

// gaussianPair returns two independent standard normal samples using
// the Box-Muller transform. A source that keeps yielding values outside
// (0, 1] yields (0, 0).
func gaussianPair(src random.Source) (float64, float64) {
	u1 := src.NextUniform(0, 1)
	for i := 0; u1 <= 0 || u1 > 1; i++ {
		if i == maxRedraws {
			return 0, 0
		}
		u1 = src.NextUniform(0, 1)
	}
	u2 := src.NextUniform(0, 1)

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	return r * math.Cos(theta), r * math.Sin(theta)
}
