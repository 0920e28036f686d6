package mathutil

import "math"

// Step quantization
const (
	// stepQuantum rounds a grid step to 3 decimal places (1/1000).
	stepQuantum = 1000.0
)

// Cauchy wavelet normalization
const (
	twoPi = 2.0 * math.Pi
)
