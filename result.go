package lloyd

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/quality"
)

// RunResult is the outcome of a run. The engine does not touch it after
// returning it.
type RunResult struct {
	ID string `json:"id"`
	K  int    `json:"k"`

	// Points holds the input points in input order with their final labels.
	Points []model.Point `json:"points"`

	// Centroids holds the final centroid positions, indexed by ID.
	Centroids []model.Centroid `json:"centroids"`

	// Inertia is the sum of squared distances from each point to its
	// assigned centroid.
	Inertia float64 `json:"inertia"`

	ElapsedMillis float64 `json:"elapsed_millis"`

	// Iterations is the number of passes executed.
	Iterations int `json:"iterations"`

	// History holds the inertia measured after each assignment step.
	History []float64 `json:"history"`

	// Silhouette is set only when requested.
	Silhouette *float64 `json:"silhouette,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Members returns one bitmap of point indices per cluster.
func (r *RunResult) Members() []*roaring.Bitmap {
	members := make([]*roaring.Bitmap, r.K)
	for i := range members {
		members[i] = roaring.New()
	}
	for i, p := range r.Points {
		if p.Cluster >= 0 && p.Cluster < r.K {
			members[p.Cluster].Add(uint32(i))
		}
	}
	for _, bm := range members {
		bm.RunOptimize()
	}
	return members
}

// ClusterSizes returns the number of points assigned to each cluster.
func (r *RunResult) ClusterSizes() []int {
	return quality.ClusterSizes(r.Points, r.K)
}
