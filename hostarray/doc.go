// Package hostarray adapts gonum vectors to the spdist engine.
//
// It is the boundary between a numeric-array ecosystem and the plain
// []float64 sequences the engine works on. Each call copies (or, for
// contiguous *mat.VecDense values, borrows) the vector data, delegates
// to the engine and converts results back to gonum types. No other logic
// lives here.
//
//	x := mat.NewVecDense(3, []float64{0, 1, 2})
//	d, err := hostarray.MeanNearestDistance(nil, x, y, xRef, yRef)
package hostarray
