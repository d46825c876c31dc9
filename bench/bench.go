// Package bench measures the steady-state latency of a deterministic
// solution function.
//
// A run has three phases. Warmup calls the solution repeatedly for a fixed
// budget, verifying that every answer matches the first. Calibrate turns the
// warmup throughput into a batch size. Sample then times SampleCount batches
// of that size back to back. The whole run happens on one locked OS thread
// with no concurrent work.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// DefaultWarmup is the warmup budget used when Config.Warmup is unset.
const DefaultWarmup = 5 * time.Second

// Config holds parameters for a single benchmark run.
type Config struct {
	// Warmup bounds the determinism check and calibration phase.
	Warmup time.Duration
	// CPU pins the measuring thread to a core when non-negative.
	CPU int
	// Clock defaults to RealClock.
	Clock Clock
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the standard warmup budget and no
// CPU pinning.
func DefaultConfig() Config {
	return Config{
		Warmup: DefaultWarmup,
		CPU:    -1,
	}
}

// Result is the outcome of a successful run.
type Result struct {
	Answer      string
	Calibration Calibration
	Samples     Samples
}

// Run benchmarks solve on arg. arg must already be stabilized; it is
// passed to every call as-is.
//
// ctx only carries logging context. Run cannot be cancelled: once started it
// completes or fails, and an external supervisor is expected to enforce any
// wall-clock limit on the measurement phase.
func Run[A, T any](
	ctx context.Context,
	arg A,
	solve func(A) T,
	cfg Config,
) (*Result, error) {
	if cfg.Warmup <= 0 {
		cfg.Warmup = DefaultWarmup
	}

	if cfg.Clock == nil {
		cfg.Clock = RealClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if cfg.CPU >= 0 {
		if err := pinCPU(cfg.CPU); err != nil {
			return nil, fmt.Errorf("pin to cpu %d: %w", cfg.CPU, err)
		}

		logger.DebugContext(ctx, "pinned measuring thread",
			slog.Int("cpu", cfg.CPU),
		)
	}

	logger.InfoContext(ctx, "warming up",
		slog.Duration("budget", cfg.Warmup),
	)

	answer, iterations, err := Warmup(arg, solve, cfg.Warmup, cfg.Clock)
	if err != nil {
		return nil, fmt.Errorf("warmup: %w", err)
	}

	cal := Calibrate(cfg.Warmup, iterations)

	logger.InfoContext(ctx, "warmup complete",
		slog.String("answer", answer),
		slog.Uint64("iterations", cal.Iterations),
		slog.Duration("estimated_per_call", cal.Estimate()),
		slog.Uint64("batch_size", cal.BatchSize),
	)

	samples := Sample(arg, solve, cal.BatchSize, cfg.Clock)

	logger.InfoContext(ctx, "sampling complete",
		slog.Int("batches", SampleCount),
		slog.Uint64("calls", cal.BatchSize*SampleCount),
	)

	return &Result{
		Answer:      answer,
		Calibration: cal,
		Samples:     samples,
	}, nil
}
