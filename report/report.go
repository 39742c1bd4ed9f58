// Package report formats benchmark results as console text.
package report

import (
	"fmt"
	"io"

	"github.com/weiihann/cpubench/workload"
)

const (
	banner = "Starting benchmarks..."
	footer = "Done!"
)

// FormatLine renders one timed workload as
// "<name>: <ms>ms (result: <value>)".
func FormatLine(name string, elapsedMs int64, value fmt.Stringer) string {
	return fmt.Sprintf("%s: %dms (result: %s)", name, elapsedMs, value)
}

// WriteBanner writes the start banner followed by a blank line.
func WriteBanner(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n\n", banner)

	return err
}

// WriteFooter writes a blank line followed by the completion banner.
func WriteFooter(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n%s\n", footer)

	return err
}

// WriteList writes the names of the given workloads, one per line.
func WriteList(w io.Writer, workloads []workload.Workload) error {
	if len(workloads) == 0 {
		return fmt.Errorf("no workloads to list")
	}

	for _, wl := range workloads {
		if _, err := fmt.Fprintln(w, wl.Name); err != nil {
			return fmt.Errorf("write %s: %w", wl.Name, err)
		}
	}

	return nil
}
