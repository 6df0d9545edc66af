// Package distance provides the distance functions used for cluster
// assignment and quality scoring of 2-D points.
//
// Assignment only needs relative ordering, so the engine uses SquaredL2
// and never takes a square root. Euclidean exists for metrics that are
// defined on true distances, such as the silhouette coefficient.
package distance
