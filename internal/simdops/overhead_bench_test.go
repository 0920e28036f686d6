package simdops

import (
	"math"
	"testing"

	"github.com/tphakala/simd/c128"
)

const benchBins = 2048

func benchInputs() (filter, spectrum []complex128) {
	filter = make([]complex128, benchBins)
	spectrum = make([]complex128, benchBins)
	for i := range filter {
		filter[i] = complex(math.Exp(-float64(i)/300), 0)
		spectrum[i] = complex(math.Cos(float64(i)), math.Sin(float64(i)))
	}
	return filter, spectrum
}

// BenchmarkDirectMulComplex measures direct SIMD call overhead.
func BenchmarkDirectMulComplex(b *testing.B) {
	filter, spectrum := benchInputs()
	dst := make([]complex128, benchBins)

	b.ReportAllocs()
	for b.Loop() {
		c128.Mul(dst, filter, spectrum)
	}
}

// BenchmarkIndirectMulComplex measures indirect call through Ops struct.
func BenchmarkIndirectMulComplex(b *testing.B) {
	ops := Float64Ops()
	filter, spectrum := benchInputs()
	dst := make([]complex128, benchBins)

	b.ReportAllocs()
	for b.Loop() {
		ops.Apply(dst, filter, spectrum)
	}
}

// BenchmarkScalarMulComplex measures the plain-loop reference.
func BenchmarkScalarMulComplex(b *testing.B) {
	ops := ScalarOps()
	filter, spectrum := benchInputs()
	dst := make([]complex128, benchBins)

	b.ReportAllocs()
	for b.Loop() {
		ops.Apply(dst, filter, spectrum)
	}
}

// BenchmarkCauchyFilter measures one full row filter build.
func BenchmarkCauchyFilter(b *testing.B) {
	ops := Float64Ops()
	omega := make([]float64, benchBins)
	for i := range omega {
		omega[i] = float64(i) * 0.015
	}
	aom := make([]float64, benchBins)
	dst := make([]complex128, benchBins)

	b.ReportAllocs()
	for b.Loop() {
		ops.Dilate(aom, omega, 40, 1e-19)
		CauchyFilter(dst, aom, -150, 326)
	}
}
