package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/weiihann/ferriself/bench"
)

// Document is the JSON form of a finished run.
type Document struct {
	Solution         string  `json:"solution,omitempty"`
	Answer           string  `json:"answer"`
	MedianNs         int64   `json:"median_ns"`
	AverageNs        int64   `json:"average_ns"`
	MinNs            int64   `json:"min_ns"`
	MaxNs            int64   `json:"max_ns"`
	StdDevNs         int64   `json:"stddev_ns"`
	WarmupBudgetNs   int64   `json:"warmup_budget_ns"`
	WarmupIterations uint64  `json:"warmup_iterations"`
	BatchSize        uint64  `json:"batch_size"`
	SamplesNs        []int64 `json:"samples_ns"`
}

// NewDocument assembles the JSON document for a run. Samples keep their
// batch order.
func NewDocument(solution string, res *bench.Result, s Summary) Document {
	samples := make([]int64, len(res.Samples))
	for i, d := range res.Samples {
		samples[i] = d.Nanoseconds()
	}

	return Document{
		Solution:         solution,
		Answer:           res.Answer,
		MedianNs:         s.Median.Nanoseconds(),
		AverageNs:        s.Average.Nanoseconds(),
		MinNs:            s.Min.Nanoseconds(),
		MaxNs:            s.Max.Nanoseconds(),
		StdDevNs:         s.StdDev.Nanoseconds(),
		WarmupBudgetNs:   res.Calibration.Budget.Nanoseconds(),
		WarmupIterations: res.Calibration.Iterations,
		BatchSize:        res.Calibration.BatchSize,
		SamplesNs:        samples,
	}
}

// WriteJSON writes doc as indented JSON to w.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
