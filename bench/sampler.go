package bench

import (
	"time"

	"github.com/weiihann/ferriself/opaque"
)

// Samples holds one per-call latency estimate per batch, in batch order.
type Samples [SampleCount]time.Duration

// Sample times SampleCount consecutive batches of batch calls each and
// returns elapsed/batch for every batch.
//
// The clock is read once up front. After each batch the anchor moves forward
// by the batch's elapsed time instead of being re-read, so batches are
// contiguous and each boundary costs a single clock read.
//
// A panic inside solve is not recovered.
func Sample[A, T any](arg A, solve func(A) T, batch uint64, clk Clock) Samples {
	batch = max(1, batch)

	var samples Samples

	start := clk.Now()
	for i := range samples {
		for range batch {
			opaque.Result(solve(opaque.Value(arg)))
		}

		elapsed := clk.Since(start)
		samples[i] = elapsed / time.Duration(batch)
		start = start.Add(elapsed)
	}

	return samples
}
