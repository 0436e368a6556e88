// Package parallel provides fan-out/fan-in helpers over index ranges.
//
// Work is split into contiguous chunks, and each chunk is handled by one
// goroutine of a bounded errgroup. Callers write results into disjoint
// parts of a shared buffer, so no synchronization is needed beyond Wait.
package parallel
