// Package main provides the CLI entry point for ferriself, a
// self-calibrating micro-benchmark harness for puzzle solutions.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/weiihann/ferriself/bench"
	"github.com/weiihann/ferriself/config"
	"github.com/weiihann/ferriself/input"
	"github.com/weiihann/ferriself/report"
	"github.com/weiihann/ferriself/solution"
	"github.com/weiihann/ferriself/workload"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level, solution.Builtin())
	if err := root.Execute(); err != nil {
		logger.Error("ferriself failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(
	logger *slog.Logger,
	level *slog.LevelVar,
	registry *solution.Registry,
) *cobra.Command {
	root := &cobra.Command{
		Use:   "ferriself",
		Short: "Self-calibrating micro-benchmark harness for puzzle solutions",
		Long: `Ferriself measures the steady-state latency of a deterministic solution.
It verifies that the solution always returns the same answer, calibrates a
batch size from a fixed warmup window, times 100 batches, and prints the answer
and median/average/min/max latency in nanoseconds as FERRIS_ELF_* lines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(logger, level, registry),
		newListCmd(registry),
		newGenerateCmd(logger),
	)

	return root
}

func newRunCmd(
	logger *slog.Logger,
	level *slog.LevelVar,
	registry *solution.Registry,
) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark a solution against an input",
		Long: `Load the input, benchmark the selected solution over it and print the
FERRIS_ELF_* report to stdout. Settings come from flags, FERRIS_ELF_*
environment variables (INPUT for the input path) and an optional config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			return runBenchmark(cmd.Context(), logger, level, registry, cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "",
		"Path to a YAML/TOML/JSON config file")
	flags.StringP(config.KeySolution, "s", "",
		fmt.Sprintf("Solution to benchmark (one of %v)", registry.Names()))
	flags.StringP(config.KeyInput, "i", "",
		"Path to the puzzle input (default $INPUT)")
	flags.Duration(config.KeyWarmup, bench.DefaultWarmup,
		"Warmup and calibration budget")
	flags.Int(config.KeyCPU, -1,
		"Pin the measuring thread to this CPU (-1 = no pinning)")
	flags.String(config.KeyJSON, "",
		"Also write a JSON report with all samples to this path")
	flags.String(config.KeyMetrics, "",
		"Also write Prometheus textfile metrics to this path")
	flags.String(config.KeyLogLevel, "info",
		"Log level: debug, info, warn, error")

	return cmd
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	level *slog.LevelVar,
	registry *solution.Registry,
	cfg config.Config,
	stdout io.Writer,
) error {
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	level.Set(lvl)

	sol, err := registry.Lookup(cfg.Solution)
	if err != nil {
		return err
	}

	// All file access happens before the harness starts.
	in, err := input.Load(cfg.Input)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.String("solution", sol.Name()),
		slog.String("input", cfg.Input),
		slog.Int("input_bytes", in.Len()),
		slog.Duration("warmup", cfg.Warmup),
		slog.Int("cpu", cfg.CPU),
	)

	res, err := sol.Bench(ctx, in, cfg.Bench(logger))
	if err != nil {
		return fmt.Errorf("benchmark %s: %w", sol.Name(), err)
	}

	summary := report.Summarize(res.Samples)

	logger.InfoContext(ctx, "benchmark complete",
		slog.String("median", report.FormatNanos(summary.Median)),
		slog.String("average", report.FormatNanos(summary.Average)),
		slog.String("min", report.FormatNanos(summary.Min)),
		slog.String("max", report.FormatNanos(summary.Max)),
		slog.String("stddev", report.FormatNanos(summary.StdDev)),
	)

	if err := report.Write(stdout, res.Answer, summary); err != nil {
		return err
	}

	if cfg.JSONPath != "" {
		if err := writeJSONReport(cfg.JSONPath, report.NewDocument(sol.Name(), res, summary)); err != nil {
			return err
		}
	}

	if cfg.MetricsPath != "" {
		if err := report.WriteMetrics(cfg.MetricsPath, sol.Name(), res.Calibration, summary); err != nil {
			return err
		}
	}

	return nil
}

func writeJSONReport(path string, doc report.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON report: %w", err)
	}

	if err := report.WriteJSON(f, doc); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close JSON report: %w", err)
	}

	return nil
}

func newListCmd(registry *solution.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered solutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newGenerateCmd(logger *slog.Logger) *cobra.Command {
	var (
		lines        int
		minValue     int
		maxValue     int
		distribution string
		seed         int64
		output       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a deterministic synthetic input",
		Long: `Generate a newline-separated list of integers from a seeded distribution,
for exercising solutions without a real puzzle input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generateInput(cmd.Context(), logger, cmd.OutOrStdout(), output, workload.Config{
				NumLines:     lines,
				MinValue:     minValue,
				MaxValue:     maxValue,
				Distribution: distribution,
				Seed:         seed,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&lines, "lines", 1000,
		"Number of lines to generate")
	flags.IntVar(&minValue, "min", 1,
		"Smallest value")
	flags.IntVar(&maxValue, "max", 100000,
		"Largest value")
	flags.StringVar(&distribution, "distribution", "uniform",
		"Value distribution: uniform, power-law, exponential")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed (0 = use current time)")
	flags.StringVarP(&output, "output", "o", "",
		"Output file (default stdout)")

	return cmd
}

func generateInput(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	output string,
	cfg workload.Config,
) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if output == "" {
		summary, err := workload.NewGenerator(cfg).Generate(stdout)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		logGenerated(ctx, logger, "-", cfg.Seed, summary)

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	summary, err := workload.NewGenerator(cfg).Generate(f)
	if err != nil {
		f.Close()
		os.Remove(output)

		return fmt.Errorf("generate: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logGenerated(ctx, logger, output, cfg.Seed, summary)

	return nil
}

func logGenerated(
	ctx context.Context,
	logger *slog.Logger,
	output string,
	seed int64,
	summary workload.Summary,
) {
	logger.InfoContext(ctx, "input generated",
		slog.String("output", output),
		slog.Int64("seed", seed),
		slog.Int("lines", summary.Lines),
		slog.Int("bytes", summary.Bytes),
		slog.Int64("sum", summary.Sum),
	)
}
