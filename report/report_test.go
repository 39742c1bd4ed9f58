package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weiihann/cpubench/workload"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name  string
		ms    int64
		value workload.Value
		want  string
	}{
		{
			name:  "1. Fibonacci(42)",
			ms:    812,
			value: workload.IntValue(267914296),
			want:  "1. Fibonacci(42): 812ms (result: 267914296)",
		},
		{
			name:  "4. Matrix Multiply (500x500)",
			ms:    0,
			value: workload.FloatValue(10291750),
			want:  "4. Matrix Multiply (500x500): 0ms (result: 10291750)",
		},
		{
			name:  "fractional",
			ms:    1500,
			value: workload.FloatValue(2.25),
			want:  "fractional: 1500ms (result: 2.25)",
		},
	}

	for _, tt := range tests {
		got := FormatLine(tt.name, tt.ms, tt.value)
		if got != tt.want {
			t.Errorf("FormatLine() = %q, want %q", got, tt.want)
		}
	}
}

func TestBannerAndFooter(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteBanner(&buf))
	require.NoError(t, WriteFooter(&buf))
	require.Equal(t, "Starting benchmarks...\n\n\nDone!\n", buf.String())
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteList(&buf, workload.Default()))
	require.Equal(t, "1. Fibonacci(42)\n"+
		"2. Prime Sieve (10M)\n"+
		"3. Mandelbrot (2000x2000)\n"+
		"4. Matrix Multiply (500x500)\n"+
		"5. Binary Trees (depth 18)\n", buf.String())
}

func TestWriteListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteList(&buf, nil); err == nil {
		t.Error("expected error for empty workload list")
	}
}
