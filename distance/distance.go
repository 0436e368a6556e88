package distance

import "math"

// SquaredEuclidean calculates the squared Euclidean distance between
// (ax, ay) and (bx, by).
func SquaredEuclidean(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// Euclidean calculates the Euclidean distance between (ax, ay) and (bx, by).
func Euclidean(ax, ay, bx, by float64) float64 {
	return math.Sqrt(SquaredEuclidean(ax, ay, bx, by))
}

// Nearest returns the minimum Euclidean distance from (px, py) to any point
// of the reference set (xRef[j], yRef[j]).
//
// Reference points are paired up to the shorter of the two slices.
// An empty reference set yields 0. Any NaN distance makes the result NaN.
func Nearest(px, py float64, xRef, yRef []float64) float64 {
	n := min(len(xRef), len(yRef))
	if n == 0 {
		return 0
	}

	// The square root is monotonic, so compare squared distances and
	// take a single root at the end.
	best := SquaredEuclidean(px, py, xRef[0], yRef[0])
	for j := 1; j < n; j++ {
		best = math.Min(best, SquaredEuclidean(px, py, xRef[j], yRef[j]))
	}

	return math.Sqrt(best)
}
