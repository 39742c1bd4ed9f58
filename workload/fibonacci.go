package workload

// Fibonacci computes fib(n) with the naive doubly recursive definition.
func Fibonacci(n int64) int64 {
	if n <= 1 {
		return n
	}

	return Fibonacci(n-1) + Fibonacci(n-2)
}
