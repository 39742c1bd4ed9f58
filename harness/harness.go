package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/weiihann/cpubench/report"
	"github.com/weiihann/cpubench/workload"
)

// Runner executes workloads one after another and reports each timing.
type Runner struct {
	Out    io.Writer
	Logger *slog.Logger

	// Now reads the clock. time.Now carries a monotonic reading, so
	// differences are immune to wall clock adjustments.
	Now func() time.Time
}

// NewRunner creates a Runner writing results to out.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		Out:    out,
		Logger: logger,
		Now:    time.Now,
	}
}

// Time runs action once and writes a single result line for it.
func (r *Runner) Time(name string, action func() workload.Value) (Result, error) {
	start := r.Now()
	value := action()
	elapsed := r.Now().Sub(start)

	result := Result{
		Name:    name,
		Elapsed: elapsed,
		Value:   value,
	}

	if _, err := fmt.Fprintln(r.Out, report.FormatLine(name, result.ElapsedMs(), value)); err != nil {
		return result, fmt.Errorf("write result %s: %w", name, err)
	}

	return result, nil
}

// Run times every workload in order between the start and done banners.
func (r *Runner) Run(ctx context.Context, workloads []workload.Workload) ([]Result, error) {
	r.Logger.InfoContext(ctx, "starting benchmarks",
		slog.Int("workloads", len(workloads)),
	)

	if err := report.WriteBanner(r.Out); err != nil {
		return nil, fmt.Errorf("write banner: %w", err)
	}

	results := make([]Result, 0, len(workloads))

	for _, w := range workloads {
		result, err := r.Time(w.Name, w.Run)
		if err != nil {
			return results, err
		}

		r.Logger.InfoContext(ctx, "workload finished",
			slog.String("workload", w.Name),
			slog.Duration("elapsed", result.Elapsed),
			slog.String("result", result.Value.String()),
		)

		results = append(results, result)
	}

	if err := report.WriteFooter(r.Out); err != nil {
		return results, fmt.Errorf("write footer: %w", err)
	}

	r.Logger.InfoContext(ctx, "benchmark complete")

	return results, nil
}
