// Package resource implements a process-wide budget for distance computations.
//
// The Controller manages two resources shared by every engine that holds it:
//
//   - Workers: goroutines a computation may fan out to (weighted semaphore)
//   - Memory: scratch and output buffers (fail-fast, tracked with atomics)
//
// # Workers
//
// AcquireWorkers blocks for the first slot only and then grabs as many extra
// slots as are free, up to the requested count. A busy process therefore
// degrades to fewer workers instead of queueing:
//
//	n, err := rc.AcquireWorkers(ctx, 8)
//	if err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorkers(n)
//
// # Memory
//
// AcquireMemory is non-blocking and returns ErrMemoryLimitExceeded when the
// limit would be exceeded.
//
// The usage counters are padded to separate cache lines with
// golang.org/x/sys/cpu.CacheLinePad.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: workers are granted as
// requested and memory is never limited.
package resource
