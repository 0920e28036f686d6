package wavelet

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-exafs-wavelet/internal/testutil"
)

// TestTransformParallel tests that parallel row computation is bit-exact
// with the sequential path.
func TestTransformParallel(t *testing.T) {
	k, chi := benchmarkSignal()

	seq, err := Transform(k, chi, &Config{RMaxOut: 6, KWeight: 2, NFFT: 1024, Workers: 1})
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 3, 8, 1000} {
		par, err := Transform(k, chi, &Config{RMaxOut: 6, KWeight: 2, NFFT: 1024, Workers: workers})
		require.NoError(t, err, "workers=%d", workers)

		// Bit-exact: every row is computed by identical code on identical input.
		testutil.AssertGridInDelta(t, seq.Coeffs, par.Coeffs, 0)
	}
}

// TestTransformConcurrentCalls verifies that independent Transform calls
// can run at the same time.
func TestTransformConcurrentCalls(t *testing.T) {
	const calls = 8

	k, chi := benchmarkSignal()
	want, err := Transform(k, chi, &Config{RMaxOut: 6, NFFT: 1024, Workers: 1})
	require.NoError(t, err)

	results := make([]*Result, calls)
	errs := make([]error, calls)

	var wg sync.WaitGroup
	for i := range calls {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fft := []SpectralFactory{GonumFFT, GoDSPFFT, AlgoFFT}[i%3]
			results[i], errs[i] = Transform(k, chi, &Config{RMaxOut: 6, NFFT: 1024, Workers: 2, FFT: fft})
		}(i)
	}
	wg.Wait()

	for i := range calls {
		require.NoError(t, errs[i], "call %d", i)
		testutil.AssertGridInDelta(t, want.Coeffs, results[i].Coeffs, testutil.BackendTolerance)
	}
}

// TestTransformParallelRowsFinite verifies every row written by the worker
// pool is populated with finite values.
func TestTransformParallelRowsFinite(t *testing.T) {
	k := WavenumberGrid(1.0, 0.1, 64)
	chi := make([]float64, len(k))
	for i, kv := range k {
		chi[i] = math.Sin(2 * kv)
	}

	result, err := Transform(k, chi, &Config{RMaxOut: 5, NFFT: 256, Workers: 4})
	require.NoError(t, err)

	testutil.AssertGridFinite(t, result.Coeffs)
	energy := result.RowEnergy()
	testutil.AssertNoNaNOrInf(t, energy)
	for i := 1; i < len(energy); i++ {
		require.Positive(t, energy[i], "row %d was never written", i)
	}
}
