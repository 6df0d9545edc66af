// Package kmeans implements Lloyd's algorithm over 2-D points.
//
// The package is the numeric core behind lloyd.Engine. It trusts its
// inputs: validation, copying and timing happen in the caller.
package kmeans
