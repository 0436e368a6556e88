package spdist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordDistance is called after each mean nearest-distance computation.
	// queries and references are the input set sizes, err is nil on success.
	RecordDistance(queries, references int, duration time.Duration, err error)

	// RecordAdd is called after each elementwise add.
	RecordAdd(length int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDistance(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordAdd(int, time.Duration, error)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DistanceCount      atomic.Int64
	DistanceErrors     atomic.Int64
	DistanceTotalNanos atomic.Int64
	DistancePairs      atomic.Int64
	AddCount           atomic.Int64
	AddErrors          atomic.Int64
	AddTotalNanos      atomic.Int64
	AddElements        atomic.Int64
}

// RecordDistance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistance(queries, references int, duration time.Duration, err error) {
	b.DistanceCount.Add(1)
	b.DistanceTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DistanceErrors.Add(1)
		return
	}
	b.DistancePairs.Add(int64(queries) * int64(references))
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(length int, duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
		return
	}
	b.AddElements.Add(int64(length))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DistanceCount:    b.DistanceCount.Load(),
		DistanceErrors:   b.DistanceErrors.Load(),
		DistanceAvgNanos: avg(b.DistanceTotalNanos.Load(), b.DistanceCount.Load()),
		DistancePairs:    b.DistancePairs.Load(),
		AddCount:         b.AddCount.Load(),
		AddErrors:        b.AddErrors.Load(),
		AddAvgNanos:      avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		AddElements:      b.AddElements.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DistanceCount    int64
	DistanceErrors   int64
	DistanceAvgNanos int64
	// DistancePairs is the number of query/reference pairs evaluated.
	DistancePairs int64
	AddCount      int64
	AddErrors     int64
	AddAvgNanos   int64
	AddElements   int64
}
