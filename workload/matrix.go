package workload

// MatrixMultiply builds A[i][j] = i+j and B[i][j] = i-j, multiplies them
// with the textbook triple loop and returns the centre element of A×B.
func MatrixMultiply(n int) float64 {
	a := newMatrix(n)
	b := newMatrix(n)
	c := newMatrix(n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j] = float64(i + j)
			b[i][j] = float64(i) - float64(j)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += float64(a[i][k] * b[k][j])
			}
			c[i][j] = sum
		}
	}

	return c[n/2][n/2]
}

func newMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}
