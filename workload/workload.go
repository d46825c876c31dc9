// Package workload generates deterministic synthetic puzzle inputs: one
// integer per line, drawn from a seeded distribution. They give the bundled
// solutions something realistic to chew on without a real puzzle input.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"math"
	mrand "math/rand"
	"strconv"
)

// Summary contains statistics about the generated input.
type Summary struct {
	Lines int
	Bytes int
	Sum   int64
}

// Config controls input generation parameters.
type Config struct {
	NumLines     int
	MinValue     int
	MaxValue     int
	Distribution string
	Seed         int64
}

// Generator produces deterministic inputs from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Generate writes the input to w and returns a Summary.
func (g *Generator) Generate(w io.Writer) (Summary, error) {
	var summary Summary

	if g.cfg.MaxValue < g.cfg.MinValue {
		return summary, fmt.Errorf(
			"max value %d is below min value %d", g.cfg.MaxValue, g.cfg.MinValue,
		)
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)

	for i := 0; i < g.cfg.NumLines; i++ {
		v := g.next()

		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')

		n, err := bw.Write(buf)
		if err != nil {
			return summary, fmt.Errorf("write line %d: %w", i, err)
		}

		summary.Lines++
		summary.Bytes += n
		summary.Sum += int64(v)
	}

	if err := bw.Flush(); err != nil {
		return summary, fmt.Errorf("flush: %w", err)
	}

	return summary, nil
}

func (g *Generator) next() int {
	lo, hi := g.cfg.MinValue, g.cfg.MaxValue
	span := hi - lo

	switch g.cfg.Distribution {
	case "power-law":
		alpha := 1.5
		u := g.rng.Float64()
		v := float64(max(1, lo)) / math.Pow(1-u, 1/alpha)
		return clamp(int(math.Min(v, float64(hi))), lo, hi)

	case "exponential":
		if span == 0 {
			return lo
		}
		lambda := math.Log(2) / math.Max(1, float64(span)/4)
		u := g.rng.Float64()
		v := float64(lo) - math.Log(1-u)/lambda
		return clamp(int(math.Min(v, float64(hi))), lo, hi)

	default:
		// Uniform, also the fallback for unknown distributions.
		return lo + g.rng.Intn(span+1)
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
