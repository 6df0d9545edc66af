// Package model defines the core types shared by the clustering engine
// and its storage layers.
//
// # Geometry
//
//   - Point: an input sample with its current cluster label
//   - Centroid: the representative position of one cluster
//   - Rect: an axis-aligned sampling domain
//
// Coordinates are plain float64 values; no package assumes bounds.
// Canvas reproduces the 500x400 drawing surface used by the original
// front-end and is only a convenience for callers that want it.
package model
