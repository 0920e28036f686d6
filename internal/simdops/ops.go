// Package simdops provides the vector kernels used to build and apply
// Cauchy scale filters.
//
// Kernels are reached through function pointers so benchmarks can compare
// the SIMD implementations against plain loops without touching callers.
// With Profile-Guided Optimization the indirect calls in hot paths can be
// devirtualized.
package simdops

import (
	"math"

	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated operations for one row of the transform.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// MulComplex multiplies element-wise: dst[i] = a[i] * b[i]
	MulComplex func(dst, a, b []complex128)
}

var (
	simdOps = Ops{
		Scale:      f64.Scale,
		MulComplex: c128.Mul,
	}
	scalarOps = Ops{
		Scale:      scaleScalar,
		MulComplex: mulComplexScalar,
	}
)

// Float64Ops returns the SIMD-backed operations.
func Float64Ops() *Ops {
	return &simdOps
}

// ScalarOps returns plain-loop reference implementations.
func ScalarOps() *Ops {
	return &scalarOps
}

// Dilate writes dst[j] = omega[j] * a. Exact zeros are replaced by eps so
// the logarithm in CauchyFilter stays finite.
func (o *Ops) Dilate(dst, omega []float64, a, eps float64) {
	o.Scale(dst, omega, a)
	for j, x := range dst {
		if x == 0 {
			dst[j] = eps
		}
	}
}

// CauchyFilter writes the Cauchy wavelet of the given order evaluated at x:
//
//	dst[j] = exp(logNorm + order*ln(x[j]) - x[j])
//
// Working in the log domain keeps x^order from overflowing. The filter is
// real, so it equals its own conjugate.
func CauchyFilter(dst []complex128, x []float64, logNorm, order float64) {
	for j, v := range x[:len(dst)] {
		dst[j] = complex(math.Exp(logNorm+order*math.Log(v)-v), 0)
	}
}

// Apply multiplies the spectrum by the filter into dst.
func (o *Ops) Apply(dst, filter, spectrum []complex128) {
	o.MulComplex(dst, filter, spectrum)
}

func scaleScalar(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func mulComplexScalar(dst, a, b []complex128) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}
