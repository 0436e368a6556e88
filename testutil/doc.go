// Package testutil provides testing utilities for spdist.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets and an exact,
// deliberately naive oracle for the mean nearest-neighbor distance.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	x, y := rng.UniformPoints(1000, -1, 1)
//	xr, yr := rng.Trajectory(1000, 0.05)
//
// # Oracle
//
//	want := testutil.BruteForceMeanNearest(x, y, xr, yr)
package testutil
