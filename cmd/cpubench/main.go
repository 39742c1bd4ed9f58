// Package main provides the CLI entry point for cpubench, a fixed suite of
// CPU-bound micro-benchmarks for comparing raw computational throughput.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/cpubench/harness"
	"github.com/weiihann/cpubench/report"
	"github.com/weiihann/cpubench/workload"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "cpubench",
		Short: "Fixed CPU-bound micro-benchmark suite",
		Long: `Cpubench runs five deterministic workloads (recursive Fibonacci, a prime
sieve, a Mandelbrot pixel count, dense matrix multiplication and binary-tree
construction) one after another, printing the wall-clock time and a
correctness-checking result for each.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.Context(), logger, cmd.OutOrStdout())
		},
	}

	root.AddCommand(newListCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the benchmark workloads in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.WriteList(cmd.OutOrStdout(), workload.Default())
		},
	}
}

func runBenchmark(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	runner := harness.NewRunner(out, logger)

	if _, err := runner.Run(ctx, workload.Default()); err != nil {
		return fmt.Errorf("run benchmarks: %w", err)
	}

	return nil
}
