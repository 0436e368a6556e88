package spdist

import (
	"context"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/spdist/distance"
	"github.com/hupe1980/spdist/internal/parallel"
)

const float64Size = 8

// Engine computes nearest-neighbor distances between 2D point sets.
//
// An Engine holds configuration only and is safe for concurrent use.
type Engine struct {
	workers        int
	minChunk       int
	symmetricCheck bool
	logger         *Logger
	metrics        MetricsCollector
	rc             *ResourceController
}

// NewEngine creates an Engine. Without options it runs sequentially,
// logs nothing and collects no metrics.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	e := &Engine{
		workers:        o.workers,
		minChunk:       o.minChunk,
		symmetricCheck: o.symmetricCheck,
		logger:         o.logger,
		metrics:        o.metricsCollector,
		rc:             o.controller,
	}
	if e.logger == nil {
		e.logger = NoopLogger()
	}
	if e.metrics == nil {
		e.metrics = NoopMetricsCollector{}
	}

	return e
}

// Workers returns the configured maximum number of workers.
func (e *Engine) Workers() int {
	return e.workers
}

// MeanNearestDistance returns the mean, over all query points (x[i], y[i]),
// of the Euclidean distance to the nearest reference point (xRef[j], yRef[j]).
//
// Lengths are checked in order and the first failure is returned as a
// *SizeMismatchError matching ErrVectorSizeMismatch:
//
//  1. len(x) == len(y)
//  2. len(xRef) == len(y), or len(xRef) == len(yRef) with WithSymmetricShapeCheck
//
// Numeric edge cases are not errors:
//
//   - An empty reference set contributes 0 for every query point, which can
//     hide missing data.
//   - An empty query set yields NaN (0/0).
//   - A NaN coordinate makes the affected minimum, and so the mean, NaN.
//
// ctx is only observed between worker chunks; a cancelled parallel call
// returns ctx.Err().
func (e *Engine) MeanNearestDistance(ctx context.Context, x, y, xRef, yRef []float64) (float64, error) {
	start := time.Now()

	mean, workers, err := e.meanNearestDistance(ctx, x, y, xRef, yRef)

	took := time.Since(start)
	e.metrics.RecordDistance(len(x), len(xRef), took, err)
	if err == nil {
		e.logger.LogDistance(ctx, len(x), len(xRef), workers, took)
	}

	return mean, err
}

func (e *Engine) meanNearestDistance(ctx context.Context, x, y, xRef, yRef []float64) (float64, int, error) {
	if len(x) != len(y) {
		return 0, 0, &SizeMismatchError{Operation: "distance", Argument: "y", Expected: len(x), Actual: len(y)}
	}
	if e.symmetricCheck {
		if len(xRef) != len(yRef) {
			return 0, 0, &SizeMismatchError{Operation: "distance", Argument: "yRef", Expected: len(xRef), Actual: len(yRef)}
		}
	} else if len(xRef) != len(y) {
		return 0, 0, &SizeMismatchError{Operation: "distance", Argument: "xRef", Expected: len(y), Actual: len(xRef)}
	}

	n := len(x)
	mins, err := e.alloc(n)
	if err != nil {
		return 0, 0, err
	}
	defer e.rc.ReleaseMemory(int64(n) * float64Size)

	workers, err := e.run(ctx, n, func(r parallel.Range) {
		for i := r.Start; i < r.End; i++ {
			mins[i] = distance.Nearest(x[i], y[i], xRef, yRef)
		}
	})
	if err != nil {
		return 0, 0, err
	}

	// Summing the buffer in index order keeps the result independent of how
	// the map phase was partitioned. n == 0 gives 0/0.
	return floats.Sum(mins) / float64(n), workers, nil
}

// Add returns a new slice holding a[i] + b[i].
// Slices of different length return a *SizeMismatchError.
func (e *Engine) Add(ctx context.Context, a, b []float64) ([]float64, error) {
	start := time.Now()

	out, workers, err := e.add(ctx, a, b)

	took := time.Since(start)
	e.metrics.RecordAdd(len(a), took, err)
	if err == nil {
		e.logger.LogAdd(ctx, len(a), workers, took)
	}

	return out, err
}

func (e *Engine) add(ctx context.Context, a, b []float64) ([]float64, int, error) {
	if len(a) != len(b) {
		return nil, 0, &SizeMismatchError{Operation: "add", Argument: "b", Expected: len(a), Actual: len(b)}
	}

	// The result is owned by the caller, so only the reservation is scoped
	// to the call.
	out, err := e.alloc(len(a))
	if err != nil {
		return nil, 0, err
	}
	defer e.rc.ReleaseMemory(int64(len(a)) * float64Size)

	workers, err := e.run(ctx, len(a), func(r parallel.Range) {
		floats.AddTo(out[r.Start:r.End], a[r.Start:r.End], b[r.Start:r.End])
	})
	if err != nil {
		return nil, 0, err
	}

	return out, workers, nil
}

func (e *Engine) alloc(n int) ([]float64, error) {
	if err := e.rc.AcquireMemory(int64(n) * float64Size); err != nil {
		return nil, err
	}
	return make([]float64, n), nil
}

// run fans fn out over [0, n) and reports the number of workers used.
func (e *Engine) run(ctx context.Context, n int, fn func(parallel.Range)) (int, error) {
	workers := e.workers
	if workers <= 1 || n <= e.minChunk {
		return 1, parallel.For(ctx, n, 1, e.minChunk, fn)
	}

	granted, err := e.rc.AcquireWorkers(ctx, workers)
	if err != nil {
		return 0, err
	}
	defer e.rc.ReleaseWorkers(granted)

	return granted, parallel.For(ctx, n, granted, e.minChunk, fn)
}

var defaultEngine = NewEngine()

// MeanNearestDistance computes the mean nearest-neighbor distance on the
// calling goroutine. See Engine.MeanNearestDistance for the full contract.
//
//	d, err := spdist.MeanNearestDistance(
//	    []float64{0}, []float64{0},
//	    []float64{3}, []float64{4},
//	) // d == 5
func MeanNearestDistance(x, y, xRef, yRef []float64) (float64, error) {
	return defaultEngine.MeanNearestDistance(context.Background(), x, y, xRef, yRef)
}

// Add returns the elementwise sum of a and b in a new slice.
func Add(a, b []float64) ([]float64, error) {
	return defaultEngine.Add(context.Background(), a, b)
}
