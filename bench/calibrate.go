package bench

import "time"

// SampleCount is the number of batches recorded in every run.
const SampleCount = 100

// Calibration describes how the measurement phase was sized.
type Calibration struct {
	// Budget is the warmup window.
	Budget time.Duration
	// Iterations is the number of calls completed during warmup.
	Iterations uint64
	// BatchSize is the number of calls timed together per sample.
	BatchSize uint64
}

// BatchSize spreads the warmup throughput over SampleCount batches so that
// measurement takes roughly as long as warmup did. It never returns 0.
func BatchSize(warmupIterations uint64) uint64 {
	return max(1, warmupIterations/SampleCount)
}

// Calibrate derives the measurement parameters from a finished warmup.
func Calibrate(budget time.Duration, warmupIterations uint64) Calibration {
	return Calibration{
		Budget:     budget,
		Iterations: warmupIterations,
		BatchSize:  BatchSize(warmupIterations),
	}
}

// Estimate is the mean warmup time per call.
func (c Calibration) Estimate() time.Duration {
	if c.Iterations == 0 {
		return 0
	}

	return c.Budget / time.Duration(c.Iterations)
}
