// Package report turns benchmark samples into summary statistics and
// renders them for collectors.
package report

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/weiihann/ferriself/bench"
)

// Protocol keys, one per output line.
const (
	KeyAnswer  = "FERRIS_ELF_ANSWER"
	KeyMedian  = "FERRIS_ELF_MEDIAN"
	KeyAverage = "FERRIS_ELF_AVERAGE"
	KeyMin     = "FERRIS_ELF_MIN"
	KeyMax     = "FERRIS_ELF_MAX"
)

// MedianIndex is the position of the median in the sorted sample set.
const MedianIndex = bench.SampleCount / 2

// Summary is a read-only view over a sample set.
type Summary struct {
	Median  time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
	// StdDev is informational and not part of the output protocol.
	StdDev time.Duration
}

// Report is one run's answer together with its summary.
type Report struct {
	Answer string
	Summary
}

// Summarize sorts a copy of samples and derives the summary statistics.
// Average is the integer mean, sum/SampleCount.
func Summarize(samples bench.Samples) Summary {
	sorted := samples
	slices.Sort(sorted[:])

	var (
		sum time.Duration
		xs  = make([]float64, len(sorted))
	)

	for i, s := range sorted {
		sum += s
		xs[i] = float64(s)
	}

	return Summary{
		Median:  sorted[MedianIndex],
		Average: sum / bench.SampleCount,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		StdDev:  time.Duration(stats.Sample{Xs: xs, Sorted: true}.StdDev()),
	}
}

// Write emits the five protocol lines for a finished run in a single write.
func Write(w io.Writer, answer string, s Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", KeyAnswer, answer)
	fmt.Fprintf(&b, "%s %d\n", KeyMedian, s.Median.Nanoseconds())
	fmt.Fprintf(&b, "%s %d\n", KeyAverage, s.Average.Nanoseconds())
	fmt.Fprintf(&b, "%s %d\n", KeyMin, s.Min.Nanoseconds())
	fmt.Fprintf(&b, "%s %d\n", KeyMax, s.Max.Nanoseconds())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// FormatNanos renders a duration with the largest unit it exceeds, rounded
// to two decimals with a trailing ".00" dropped: 1500 -> "1.50µs".
func FormatNanos(d time.Duration) string {
	scalars := []struct {
		name   string
		offset float64
	}{
		{"µs", 1000},
		{"ms", 1000},
		{"s", 1000},
		{"m", 60},
		{"h", 60},
	}

	value := float64(d)
	unit := "ns"

	for _, sc := range scalars {
		if value <= sc.offset {
			break
		}

		value /= sc.offset
		unit = sc.name
	}

	value = math.Round(value*100) / 100
	if value == math.Trunc(value) {
		return fmt.Sprintf("%.0f%s", value, unit)
	}

	return fmt.Sprintf("%.2f%s", value, unit)
}
