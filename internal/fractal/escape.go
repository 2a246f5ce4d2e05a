package fractal

// escapeRadius2 is the squared escape radius.
const escapeRadius2 = 4.0

// Calculate iterates z = z*z + c from z = 0 and returns the number of steps
// taken before |z| exceeds 2, capped at maxIterations.
func Calculate(c complex128, maxIterations int) int {
	var z complex128
	n := 0
	for Abs2(z) <= escapeRadius2 && n < maxIterations {
		z = z*z + c
		n++
	}
	return n
}
