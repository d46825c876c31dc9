package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/weiihann/ferriself/opaque"
)

// ErrNonDeterministic is returned when a solution produces two different
// answers for the same input.
var ErrNonDeterministic = errors.New("non-deterministic solution")

// Warmup establishes the baseline answer and keeps calling solve until the
// budget has elapsed, checking every answer against the baseline. The
// baseline call is the first iteration, so the returned count is at least 1
// even when a single call outlasts the budget.
//
// Warmup fails on the first answer that differs from the baseline.
func Warmup[A, T any](
	arg A,
	solve func(A) T,
	budget time.Duration,
	clk Clock,
) (string, uint64, error) {
	anchor := clk.Now()

	baseline := fmt.Sprint(opaque.Result(solve(opaque.Value(arg))))
	iterations := uint64(1)

	for clk.Since(anchor) < budget {
		got := fmt.Sprint(opaque.Result(solve(opaque.Value(arg))))
		iterations++

		if got != baseline {
			return "", iterations, fmt.Errorf(
				"%w: iteration %d answered %q, baseline was %q",
				ErrNonDeterministic, iterations, got, baseline,
			)
		}
	}

	return baseline, iterations, nil
}
