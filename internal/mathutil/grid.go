// Package mathutil provides numeric helpers for the Cauchy wavelet transform.
package mathutil

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// QuantizeStep rounds a sampling step to 3 decimal places.
// Input grids read from text files carry floating-point jitter in the
// least significant digits; quantizing keeps the derived scale grid stable.
func QuantizeStep(step float64) float64 {
	return math.Round(stepQuantum*step) / stepQuantum
}

// Linspace returns n evenly spaced values over [start, stop].
// The endpoint is included. For n == 1 the result is [start]; for n <= 0
// it is empty.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range n {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint exactly.
	out[n-1] = stop
	return out
}

// CauchyLogNorm returns the log-domain normalization of a Cauchy wavelet of
// the given order:
//
//	ln(2π) − Σ_{m=0}^{order−1} ln(1+m)
//
// which equals ln(2π) − ln(order!).
func CauchyLogNorm(order int) float64 {
	if order <= 0 {
		return math.Log(twoPi)
	}
	logs := make([]float64, order)
	for m := range order {
		logs[m] = math.Log(1.0 + float64(m))
	}
	return math.Log(twoPi) - f64.Sum(logs)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
