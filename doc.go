// Package spdist computes the mean nearest-neighbor distance between two
// 2D point sets.
//
// For every query point (x[i], y[i]) the engine finds the Euclidean distance
// to the closest reference point (xRef[j], yRef[j]) and averages these
// minima over all query points. The score is commonly used to measure how
// closely a predicted trajectory or sampled point cloud follows a reference.
//
// # Quick Start
//
//	d, err := spdist.MeanNearestDistance(x, y, xRef, yRef)
//	if errors.Is(err, spdist.ErrVectorSizeMismatch) {
//	    // inputs have the wrong shape
//	}
//
// # Parallelism
//
// The search is brute force, O(len(x) * len(xRef)). The outer loop over query
// points can be spread across goroutines:
//
//	e := spdist.NewEngine(spdist.WithWorkers(0)) // GOMAXPROCS workers
//	d, err := e.MeanNearestDistance(ctx, x, y, xRef, yRef)
//
// Per-point minima are written to a buffer and summed in index order, so a
// parallel engine returns the same bits as a sequential one.
//
// # Shape Checks
//
// By default the second length check compares len(xRef) with len(y), which
// requires query and reference sets of equal size. WithSymmetricShapeCheck
// compares len(xRef) with len(yRef) instead and allows sets of any size.
//
// # Numeric Edge Cases
//
//   - Empty reference set: every query point contributes 0.
//   - Empty query set: the result is NaN.
//   - NaN coordinates: propagate to the result.
//
// # Elementwise Add
//
// Add is an unrelated convenience that returns a[i] + b[i] in a new slice,
// using the same worker fan-out.
//
// For gonum vectors see the hostarray package.
package spdist
