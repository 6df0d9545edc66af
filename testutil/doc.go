// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic point sets, brute-force ground truth for
// assignments, and label agreement scores.
//
// # Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points, truth := rng.ClusteredPoints(300, 3, 400, 5)
//
// # Exact Assignment (Ground Truth)
//
//	labels := testutil.ExactLabels(points, centroids)
//
// # Label Agreement
//
//	purity := testutil.Purity(labels, truth)
package testutil
