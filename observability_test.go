package spdist

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	e := NewEngine(WithMetricsCollector(metrics))

	_, err := e.MeanNearestDistance(t.Context(), []float64{0, 1}, []float64{0, 1}, []float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	_, err = e.MeanNearestDistance(t.Context(), []float64{0}, []float64{0, 1}, nil, nil)
	require.Error(t, err)
	_, err = e.Add(t.Context(), []float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = e.Add(t.Context(), []float64{1}, nil)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.DistanceCount)
	assert.Equal(t, int64(1), stats.DistanceErrors)
	assert.Equal(t, int64(4), stats.DistancePairs)
	assert.Equal(t, int64(2), stats.AddCount)
	assert.Equal(t, int64(1), stats.AddErrors)
	assert.Equal(t, int64(3), stats.AddElements)
	assert.GreaterOrEqual(t, stats.DistanceAvgNanos, int64(0))
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.DistanceAvgNanos)
	assert.Zero(t, stats.AddAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordDistance(1, 1, time.Millisecond, nil)
		mc.RecordAdd(1, time.Millisecond, nil)
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := NewEngine(WithLogger(logger))

	_, err := e.MeanNearestDistance(t.Context(), []float64{0}, []float64{0}, []float64{3}, []float64{4})
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "distance completed", rec["msg"])
	assert.Equal(t, float64(1), rec["queries"])
	assert.Equal(t, float64(1), rec["references"])
	assert.Equal(t, float64(1), rec["workers"])

	buf.Reset()
	_, err = e.Add(t.Context(), []float64{1}, []float64{2})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"add completed"`)

	t.Run("ErrorsAreNotLogged", func(t *testing.T) {
		buf.Reset()
		_, err := e.MeanNearestDistance(t.Context(), []float64{0}, nil, nil, nil)
		require.ErrorIs(t, err, ErrVectorSizeMismatch)
		assert.Empty(t, buf.String())
	})
}

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))

	noop := NoopLogger()
	assert.False(t, noop.Enabled(t.Context(), slog.LevelError))

	e := NewEngine(WithLogLevel(slog.LevelError))
	assert.True(t, e.logger.Enabled(t.Context(), slog.LevelError))
}
