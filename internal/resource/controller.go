package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/cpu"
)

// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrent workers across all holders.
	// If 0, defaults to 1.
	MaxWorkers int64

	// MemoryLimitBytes is the hard limit for buffers allocated by computations.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64
}

// Controller manages shared workers and memory.
type Controller struct {
	cfg Config

	workerSem *semaphore.Weighted
	memSem    *semaphore.Weighted // nil if unlimited

	// Every call on every engine sharing the controller updates both
	// counters; keep each on its own cache line.
	_           cpu.CacheLinePad
	workersUsed atomic.Int64
	_           cpu.CacheLinePad
	memUsed     atomic.Int64
	_           cpu.CacheLinePad
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	return c
}

// AcquireWorkers reserves between 1 and want worker slots and returns the
// number granted. It blocks only until the first slot is free.
func (c *Controller) AcquireWorkers(ctx context.Context, want int) (int, error) {
	if want < 1 {
		want = 1
	}
	if c == nil {
		return want, nil
	}

	if err := c.workerSem.Acquire(ctx, 1); err != nil {
		return 0, err
	}

	granted := 1
	for granted < want && c.workerSem.TryAcquire(1) {
		granted++
	}

	c.workersUsed.Add(int64(granted))
	return granted, nil
}

// ReleaseWorkers releases n worker slots obtained from AcquireWorkers.
func (c *Controller) ReleaseWorkers(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.workersUsed.Add(-int64(n))
	c.workerSem.Release(int64(n))
}

// WorkersInUse returns the number of worker slots currently held.
func (c *Controller) WorkersInUse() int64 {
	if c == nil {
		return 0
	}
	return c.workersUsed.Load()
}

// MaxWorkers returns the configured worker limit (0 for a nil controller).
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxWorkers
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}
