// Package distance provides 2D point distance kernels.
//
// Points are passed as separate coordinate sequences (x and y) rather than
// as a slice of structs, matching the column layout callers usually have
// when the data comes from a numeric array.
//
// # Kernels
//
//   - Euclidean: straight-line distance between two points
//   - SquaredEuclidean: the same without the square root
//   - Nearest: minimum Euclidean distance from a point to a reference set
//
// # Usage
//
//	d := distance.Euclidean(0, 0, 3, 4) // 5
//	n := distance.Nearest(0, 0, xRef, yRef)
package distance
