package spdist

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/spdist/internal/parallel"
)

type options struct {
	workers          int
	minChunk         int
	symmetricCheck   bool
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *ResourceController
}

func defaultOptions() options {
	return options{
		workers:  1,
		minChunk: parallel.DefaultMinChunk,
	}
}

// Option configures an Engine.
type Option func(*options)

// WithWorkers sets how many goroutines the outer loop over query points may
// fan out to. n == 1 runs sequentially (the default); n <= 0 uses GOMAXPROCS.
//
// The result does not depend on n: per-point minima are reduced in index
// order after all workers finish.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithMinChunk sets the minimum number of query points handed to one worker.
// Inputs smaller than this run on the calling goroutine.
//
// Values < 1 restore the default.
func WithMinChunk(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = parallel.DefaultMinChunk
		}
		o.minChunk = n
	}
}

// WithSymmetricShapeCheck makes the second length check compare the
// reference coordinates with each other (len(xRef) == len(yRef)) instead of
// comparing len(xRef) with len(y).
//
// Without it, query and reference sets must have the same size and a yRef of
// a different length is paired with xRef up to the shorter of the two.
func WithSymmetricShapeCheck() Option {
	return func(o *options) {
		o.symmetricCheck = true
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := spdist.NewJSONLogger(slog.LevelDebug)
//	e := spdist.NewEngine(spdist.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
//	metrics := &spdist.BasicMetricsCollector{}
//	e := spdist.NewEngine(spdist.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithResourceController shares a worker and memory budget between engines.
//
// Each call acquires up to its configured worker count from rc and runs with
// however many slots were free. Pass nil to disable.
func WithResourceController(rc *ResourceController) Option {
	return func(o *options) {
		o.controller = rc
	}
}
