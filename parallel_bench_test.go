package wavelet

import (
	"fmt"
	"math"
	"testing"
)

// BenchmarkTransformSequential benchmarks row computation on one goroutine.
func BenchmarkTransformSequential(b *testing.B) {
	benchmarkTransform(b, 1, GonumFFT)
}

// BenchmarkTransformParallel benchmarks row computation with one worker per CPU.
func BenchmarkTransformParallel(b *testing.B) {
	benchmarkTransform(b, 0, GonumFFT)
}

// BenchmarkTransformGoDSP benchmarks the go-dsp spectral backend.
func BenchmarkTransformGoDSP(b *testing.B) {
	benchmarkTransform(b, 0, GoDSPFFT)
}

// BenchmarkTransformAlgoFFT benchmarks the algo-fft spectral backend.
func BenchmarkTransformAlgoFFT(b *testing.B) {
	benchmarkTransform(b, 0, AlgoFFT)
}

func benchmarkTransform(b *testing.B, workers int, fft SpectralFactory) {
	b.Helper()

	k, chi := benchmarkSignal()
	config := &Config{
		RMaxOut: 6,
		KWeight: 2,
		NFFT:    DefaultNFFT,
		Workers: workers,
		FFT:     fft,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Transform(k, chi, config); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
	}
}

// BenchmarkTransformWorkers benchmarks varying worker counts.
func BenchmarkTransformWorkers(b *testing.B) {
	k, chi := benchmarkSignal()

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("Workers%d", workers), func(b *testing.B) {
			config := &Config{RMaxOut: 6, NFFT: DefaultNFFT, Workers: workers}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := Transform(k, chi, config); err != nil {
					b.Fatalf("Transform failed: %v", err)
				}
			}
		})
	}
}

// benchmarkSignal is a two-shell spectrum on a typical 0.05 Å⁻¹ grid.
func benchmarkSignal() (k, chi []float64) {
	k = WavenumberGrid(2.0, 0.05, 281)
	chi = make([]float64, len(k))
	for i, kv := range k {
		chi[i] = math.Sin(2*kv*2.0)*math.Exp(-2*0.003*kv*kv) +
			0.5*math.Sin(2*kv*3.1)*math.Exp(-2*0.006*kv*kv)
	}
	return k, chi
}
