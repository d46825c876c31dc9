package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConstantAnswer(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the real clock")
	}

	cfg := DefaultConfig()
	cfg.Warmup = time.Second

	result, err := Run(context.Background(), []byte("anything"),
		func([]byte) string { return "42" }, cfg)
	require.NoError(t, err)

	assert.Equal(t, "42", result.Answer)
	assert.GreaterOrEqual(t, result.Calibration.Iterations, uint64(1))
	assert.Equal(t, BatchSize(result.Calibration.Iterations), result.Calibration.BatchSize)

	for i, s := range result.Samples {
		assert.GreaterOrEqual(t, s, time.Duration(0), "sample %d", i)
	}
}

func TestRunAlternatingAnswerFailsInWarmup(t *testing.T) {
	clk := NewFakeClock()
	calls := 0
	solve := func(b []byte) int {
		calls++
		clk.Advance(time.Microsecond)
		if calls%2 == 0 {
			return len(b) + 1
		}
		return len(b)
	}

	cfg := DefaultConfig()
	cfg.Clock = clk

	result, err := Run(context.Background(), []byte("input"), solve, cfg)

	require.ErrorIs(t, err, ErrNonDeterministic)
	assert.Nil(t, result)
	assert.Equal(t, 2, calls, "sampling must never start")
}

func TestRunSlowSolution(t *testing.T) {
	clk := NewFakeClock()
	calls := 0
	solve := func(string) string {
		calls++
		clk.Advance(6 * time.Second)
		return "done"
	}

	cfg := DefaultConfig()
	cfg.Clock = clk

	result, err := Run(context.Background(), "input", solve, cfg)
	require.NoError(t, err)

	assert.Equal(t, "done", result.Answer)
	assert.Equal(t, uint64(1), result.Calibration.Iterations)
	assert.Equal(t, uint64(1), result.Calibration.BatchSize)
	assert.Equal(t, 1+SampleCount, calls)

	for _, s := range result.Samples {
		assert.Equal(t, 6*time.Second, s)
	}
}

func TestRunCalibratesToBudget(t *testing.T) {
	clk := NewFakeClock()
	solve := func(n int) int {
		clk.Advance(10 * time.Microsecond)
		return n
	}

	cfg := DefaultConfig()
	cfg.Clock = clk

	start := clk.Now()
	result, err := Run(context.Background(), 3, solve, cfg)
	require.NoError(t, err)

	assert.Equal(t, uint64(500_000), result.Calibration.Iterations)
	assert.Equal(t, uint64(5_000), result.Calibration.BatchSize)

	// Measurement takes about as long as warmup did.
	assert.Equal(t, 2*DefaultWarmup, clk.Since(start))
}

func TestRunDefaultsWarmup(t *testing.T) {
	clk := NewFakeClock()
	solve := func(int) int {
		clk.Advance(time.Second)
		return 1
	}

	result, err := Run(context.Background(), 0, solve, Config{Clock: clk, CPU: -1})
	require.NoError(t, err)
	assert.Equal(t, DefaultWarmup, result.Calibration.Budget)
	assert.Equal(t, uint64(5), result.Calibration.Iterations)
}
