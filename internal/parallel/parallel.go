package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the default minimum number of elements per chunk.
const DefaultMinChunk = 256

// Range is a half-open index range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split partitions [0, n) into at most workers contiguous ranges, each holding
// at least minChunk indices (except when n itself is smaller).
// Ranges are returned in index order and cover [0, n) exactly once.
func Split(n, workers, minChunk int) []Range {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if minChunk < 1 {
		minChunk = 1
	}

	chunks := min(workers, (n+minChunk-1)/minChunk)
	if chunks < 1 {
		chunks = 1
	}

	ranges := make([]Range, 0, chunks)
	size, rem := n/chunks, n%chunks
	start := 0
	for i := 0; i < chunks; i++ {
		end := start + size
		if i < rem {
			end++
		}
		ranges = append(ranges, Range{Start: start, End: end})
		start = end
	}

	return ranges
}

// For calls fn once per range of Split(n, workers, minChunk).
//
// A single range runs on the calling goroutine. Otherwise up to workers
// goroutines run concurrently. Ranges not yet started when ctx is done are
// skipped and ctx.Err() is returned.
func For(ctx context.Context, n, workers, minChunk int, fn func(r Range)) error {
	ranges := Split(n, workers, minChunk)

	if len(ranges) <= 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, r := range ranges {
			fn(r)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, r := range ranges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(r)
			return nil
		})
	}

	return g.Wait()
}
