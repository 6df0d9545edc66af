package distance

import (
	"fmt"
	"math"
)

// SquaredL2 returns dx² + dy² for the two positions.
func SquaredL2(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Euclidean returns the L2 distance between the two positions.
func Euclidean(ax, ay, bx, by float64) float64 {
	return math.Sqrt(SquaredL2(ax, ay, bx, by))
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(ax, ay, bx, by float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricEuclidean:
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
