package wavelet

import "fmt"

// CauchyWavelet is a one-shot transform returning only the coefficient grid.
// Rows are computed with one worker per CPU on the gonum backend.
//
// Example:
//
//	coeffs, err := wavelet.CauchyWavelet(k, chi, 10, 2, 2048)
func CauchyWavelet(k, chi []float64, rmaxOut, kweight float64, nfft int) ([][]complex128, error) {
	result, err := Transform(k, chi, &Config{
		RMaxOut: rmaxOut,
		KWeight: kweight,
		NFFT:    nfft,
	})
	if err != nil {
		return nil, err
	}
	return result.Coeffs, nil
}

// TransformDefault transforms chi(k) with DefaultConfig.
func TransformDefault(k, chi []float64) (*Result, error) {
	return Transform(k, chi, DefaultConfig())
}

// TransformMulti transforms several spectra sampled on the same k grid,
// such as a series of runs of one measurement. Spectra are processed in
// order; rows within each spectrum use config.Workers goroutines.
func TransformMulti(k []float64, chis [][]float64, config *Config) ([]*Result, error) {
	results := make([]*Result, len(chis))
	for i, chi := range chis {
		result, err := Transform(k, chi, config)
		if err != nil {
			return nil, fmt.Errorf("spectrum %d: %w", i, err)
		}
		results[i] = result
	}
	return results, nil
}

// WavenumberGrid returns n uniformly spaced wavenumbers starting at kmin.
func WavenumberGrid(kmin, kstep float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	k := make([]float64, n)
	for i := range k {
		k[i] = kmin + float64(i)*kstep
	}
	return k
}
