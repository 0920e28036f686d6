package wavelet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-exafs-wavelet/internal/testutil"
)

func TestCauchyWavelet(t *testing.T) {
	k, chi := scenarioSignal()

	coeffs, err := CauchyWavelet(k, chi, scenarioRMax, 0, scenarioNFFT)
	require.NoError(t, err)

	result, err := Transform(k, chi, scenarioConfig())
	require.NoError(t, err)
	testutil.AssertGridInDelta(t, result.Coeffs, coeffs, 0)

	_, err = CauchyWavelet(k, chi[:10], scenarioRMax, 0, scenarioNFFT)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestTransformDefault(t *testing.T) {
	k := WavenumberGrid(2.0, 0.05, 281)
	chi := make([]float64, len(k))
	for i, kv := range k {
		chi[i] = math.Sin(2 * kv * 2.5)
	}

	result, err := TransformDefault(k, chi)
	require.NoError(t, err)

	rows, cols := result.Shape()
	assert.Equal(t, 326, rows)
	assert.Equal(t, 281, cols)
	testutil.AssertInRange(t, result.PeakScale(), 2.2, 2.8)
}

func TestTransformMulti(t *testing.T) {
	k := WavenumberGrid(2.0, 0.05, 200)
	chis := make([][]float64, 3)
	for n := range chis {
		chis[n] = make([]float64, len(k))
		for i, kv := range k {
			chis[n][i] = math.Sin(2 * kv * (1.5 + float64(n)))
		}
	}

	config := &Config{RMaxOut: 5, NFFT: 1024}
	results, err := TransformMulti(k, chis, config)
	require.NoError(t, err)
	require.Len(t, results, len(chis))

	for n, result := range results {
		single, err := Transform(k, chis[n], config)
		require.NoError(t, err)
		testutil.AssertGridInDelta(t, single.Coeffs, result.Coeffs, 0)
		testutil.AssertInRange(t, result.PeakScale(), 1.5+float64(n)-0.3, 1.5+float64(n)+0.3)
	}

	t.Run("Error names spectrum", func(t *testing.T) {
		bad := [][]float64{chis[0], chis[1][:5]}
		_, err := TransformMulti(k, bad, config)
		require.ErrorIs(t, err, ErrLengthMismatch)
		assert.Contains(t, err.Error(), "spectrum 1")
	})
}

func TestWavenumberGrid(t *testing.T) {
	k := WavenumberGrid(1.0, 0.5, 4)
	assert.Equal(t, []float64{1.0, 1.5, 2.0, 2.5}, k)
	assert.Empty(t, WavenumberGrid(0, 0.1, 0))
}
