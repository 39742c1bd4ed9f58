// Package workload implements the fixed set of CPU-bound benchmark
// computations. Every workload is a pure function of its size: no shared
// state, no randomness, no I/O.
package workload

import "strconv"

// Kind tags the concrete type carried by a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// Value is the result of a single workload run.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
}

// IntValue wraps an integer result.
func IntValue(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// FloatValue wraps a floating-point result.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}

// String renders the value in its natural form. Floats use the shortest
// representation that round-trips, without an exponent.
func (v Value) String() string {
	if v.Kind == KindFloat {
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	}

	return strconv.FormatInt(v.Int, 10)
}

// Workload pairs a display name with the computation it times.
type Workload struct {
	Name string
	Run  func() Value
}

// Sizes used by the default suite.
const (
	FibonacciN  = 42
	SieveLimit  = 10_000_000
	MandelbrotN = 2000
	MatrixN     = 500
	TreeDepth   = 18
)

// Default returns the benchmark suite in run order.
func Default() []Workload {
	return []Workload{
		{
			Name: "1. Fibonacci(42)",
			Run:  func() Value { return IntValue(Fibonacci(FibonacciN)) },
		},
		{
			Name: "2. Prime Sieve (10M)",
			Run:  func() Value { return IntValue(int64(PrimeSieve(SieveLimit))) },
		},
		{
			Name: "3. Mandelbrot (2000x2000)",
			Run:  func() Value { return IntValue(int64(Mandelbrot(MandelbrotN))) },
		},
		{
			Name: "4. Matrix Multiply (500x500)",
			Run:  func() Value { return FloatValue(MatrixMultiply(MatrixN)) },
		},
		{
			Name: "5. Binary Trees (depth 18)",
			Run:  func() Value { return IntValue(int64(BinaryTrees(TreeDepth))) },
		},
	}
}
