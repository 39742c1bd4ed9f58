package workload

// Viewport and iteration cap for Mandelbrot.
const (
	mandelXMin    = -2.0
	mandelXMax    = 1.0
	mandelYMin    = -1.5
	mandelYMax    = 1.5
	mandelMaxIter = 1000
)

// Mandelbrot renders an n×n grid over [-2,1]×[-1.5,1.5] and returns the
// total number of escape-time iterations across all pixels.
func Mandelbrot(n int) int {
	count := 0
	size := float64(n)

	for py := 0; py < n; py++ {
		y0 := mandelYMin + (mandelYMax-mandelYMin)*float64(py)/size

		for px := 0; px < n; px++ {
			x0 := mandelXMin + (mandelXMax-mandelXMin)*float64(px)/size
			count += escapeTime(x0, y0)
		}
	}

	return count
}

func escapeTime(x0, y0 float64) int {
	var x, y float64

	iter := 0
	// The float64 conversions stop the compiler from fusing multiply-add,
	// which would change counts on arm64 and other FMA targets.
	for float64(x*x)+float64(y*y) <= 4.0 && iter < mandelMaxIter {
		xtemp := float64(x*x) - float64(y*y) + x0
		y = float64(2.0*x*y) + y0
		x = xtemp
		iter++
	}

	return iter
}
