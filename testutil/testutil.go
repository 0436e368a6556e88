package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints returns n points with both coordinates in [minVal, maxVal).
func (r *RNG) UniformPoints(n int, minVal, maxVal float64) (x, y []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x = make([]float64, n)
	y = make([]float64, n)
	span := maxVal - minVal
	for i := range x {
		x[i] = minVal + r.rand.Float64()*span
		y[i] = minVal + r.rand.Float64()*span
	}
	return x, y
}

// Trajectory returns a random walk of n points starting at the origin,
// each step drawn from a normal distribution with the given standard deviation.
func (r *RNG) Trajectory(n int, step float64) (x, y []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x = make([]float64, n)
	y = make([]float64, n)
	for i := 1; i < n; i++ {
		x[i] = x[i-1] + r.rand.NormFloat64()*step
		y[i] = y[i-1] + r.rand.NormFloat64()*step
	}
	return x, y
}

// Jitter returns a copy of (x, y) with normal noise of the given standard
// deviation added to every coordinate.
func (r *RNG) Jitter(x, y []float64, sigma float64) (jx, jy []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jx = make([]float64, len(x))
	jy = make([]float64, len(y))
	for i := range x {
		jx[i] = x[i] + r.rand.NormFloat64()*sigma
	}
	for i := range y {
		jy[i] = y[i] + r.rand.NormFloat64()*sigma
	}
	return jx, jy
}

// Permute returns (x, y) reordered by the same random permutation.
// Only the first min(len(x), len(y)) pairs are kept.
func (r *RNG) Permute(x, y []float64) (px, py []float64) {
	n := min(len(x), len(y))

	r.mu.Lock()
	perm := r.rand.Perm(n)
	r.mu.Unlock()

	px = make([]float64, n)
	py = make([]float64, n)
	for i, p := range perm {
		px[i] = x[p]
		py[i] = y[p]
	}
	return px, py
}

// BruteForceMeanNearest computes the mean nearest-neighbor distance with
// textbook loops and no shortcuts. It performs no length validation and
// pairs reference coordinates up to the shorter slice.
func BruteForceMeanNearest(x, y, xRef, yRef []float64) float64 {
	m := min(len(xRef), len(yRef))

	var sum float64
	for i := range x {
		best := 0.0
		for j := 0; j < m; j++ {
			d := math.Hypot(x[i]-xRef[j], y[i]-yRef[j])
			if j == 0 || d < best {
				best = d
			}
		}
		sum += best
	}
	return sum / float64(len(x))
}
