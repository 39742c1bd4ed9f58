// Package harness times benchmark workloads and writes their results.
package harness

import (
	"time"

	"github.com/weiihann/cpubench/workload"
)

// Result holds the outcome of one timed workload.
type Result struct {
	Name    string
	Elapsed time.Duration
	Value   workload.Value
}

// ElapsedMs returns the elapsed time truncated to whole milliseconds.
func (r Result) ElapsedMs() int64 {
	return r.Elapsed.Milliseconds()
}
