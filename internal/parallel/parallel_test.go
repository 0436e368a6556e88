package parallel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		workers  int
		minChunk int
		expected []Range
	}{
		{"Empty", 0, 4, 1, nil},
		{"Sequential", 10, 1, 1, []Range{{0, 10}}},
		{"Even", 8, 4, 1, []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"Remainder", 10, 3, 1, []Range{{0, 4}, {4, 7}, {7, 10}}},
		{"MinChunkBounds", 10, 8, 4, []Range{{0, 4}, {4, 7}, {7, 10}}},
		{"SmallerThanChunk", 3, 8, 256, []Range{{0, 3}}},
		{"ZeroWorkers", 5, 0, 0, []Range{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.n, tt.workers, tt.minChunk))
		})
	}
}

func TestSplitCoversRange(t *testing.T) {
	for n := 1; n < 200; n += 7 {
		for workers := 1; workers <= 16; workers++ {
			ranges := Split(n, workers, 3)
			require.NotEmpty(t, ranges)
			assert.LessOrEqual(t, len(ranges), workers)

			next := 0
			for _, r := range ranges {
				assert.Equal(t, next, r.Start)
				assert.Positive(t, r.Len())
				next = r.End
			}
			assert.Equal(t, n, next)
		}
	}
}

func TestFor(t *testing.T) {
	t.Run("VisitsEveryIndex", func(t *testing.T) {
		const n = 1000
		hits := make([]int32, n)

		err := For(context.Background(), n, 8, 16, func(r Range) {
			for i := r.Start; i < r.End; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		require.NoError(t, err)

		for i, h := range hits {
			assert.Equal(t, int32(1), h, "index %d", i)
		}
	})

	t.Run("Inline", func(t *testing.T) {
		calls := 0
		err := For(context.Background(), 10, 1, 1, func(r Range) {
			calls++
			assert.Equal(t, Range{0, 10}, r)
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		err := For(ctx, 1000, 4, 1, func(Range) { calls.Add(1) })
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls.Load())

		err = For(ctx, 10, 1, 1, func(Range) { calls.Add(1) })
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls.Load())
	})
}
