package wavelet

// Default transform parameters
const (
	DefaultRMaxOut = 10.0 // Highest output distance R
	DefaultKWeight = 0.0  // No k-weighting
	DefaultNFFT    = 2048 // Spectral transform length
)

// Scale grid constants
const (
	// rMin is the lower end of the scale grid. It is kept away from zero so
	// the grid size formula never divides by a zero span.
	rMin = 1e-7

	// clampEpsilon replaces exact zeros in the first scale value and in the
	// dilated frequency axis, keeping ln() and the dilation finite.
	clampEpsilon = 1e-19
)

// Transform geometry
const (
	// maxGridCells bounds the coefficient grid (nrpts*len(k)) and the
	// spectral transform length so oversized configs fail with an error
	// instead of an allocation panic.
	maxGridCells = 1 << 28

	halfDivisor  = 2 // Working signal length is nfft/2
	fftPadFactor = 2 // Spectral transforms run over 2*nfft points
)
