package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/weiihann/ferriself/bench"
)

const metricsNamespace = "ferris_elf"

// WriteMetrics writes the run's summary as Prometheus gauges to path in the
// text exposition format, for pickup by a node_exporter textfile collector.
// The file is replaced atomically.
func WriteMetrics(path, solution string, cal bench.Calibration, s Summary) error {
	labels := prometheus.Labels{"solution": solution}

	latency := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   metricsNamespace,
		Name:        "latency_seconds",
		Help:        "Per-call latency statistics over the sampled batches.",
		ConstLabels: labels,
	}, []string{"stat"})

	batchSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metricsNamespace,
		Name:        "batch_size",
		Help:        "Calls timed together per sample.",
		ConstLabels: labels,
	})

	warmupIterations := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metricsNamespace,
		Name:        "warmup_iterations",
		Help:        "Calls completed during the warmup window.",
		ConstLabels: labels,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(latency, batchSize, warmupIterations)

	latency.WithLabelValues("median").Set(s.Median.Seconds())
	latency.WithLabelValues("average").Set(s.Average.Seconds())
	latency.WithLabelValues("min").Set(s.Min.Seconds())
	latency.WithLabelValues("max").Set(s.Max.Seconds())
	latency.WithLabelValues("stddev").Set(s.StdDev.Seconds())
	batchSize.Set(float64(cal.BatchSize))
	warmupIterations.Set(float64(cal.Iterations))

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
