package wavelet

import (
	"fmt"
	"math"

	"github.com/tphakala/go-exafs-wavelet/internal/mathutil"
)

// scaleGrid holds everything derived from k and the config before any
// spectral work starts. It is shared read-only by all row workers.
type scaleGrid struct {
	kstep     float64
	nrpts     int
	nkout     int
	nfft      int
	r         []float64 // scale axis, r[0] clamped
	dilation  []float64 // a[i] = nrpts / (2*r[i])
	omega     []float64 // angular frequency of the first nfft bins
	cauchySum float64   // log normalization, shared by every row
}

// ScaleCount returns the number of output rows for a grid step and config:
//
//	kstep = round(1000*step)/1000
//	nrpts = round((rmax_out - 1e-7) / ((π/nfft)/kstep))
//
// The result may be zero or negative for degenerate inputs and saturates at
// math.MaxInt for huge ones; Transform rejects both.
func ScaleCount(step, rmaxOut float64, nfft int) int {
	count := scaleCount(step, rmaxOut, nfft)
	if count >= math.MaxInt {
		return math.MaxInt
	}
	return int(count)
}

func scaleCount(step, rmaxOut float64, nfft int) float64 {
	kstep := mathutil.QuantizeStep(step)
	rstep := (math.Pi / float64(nfft)) / kstep
	return math.Round((rmaxOut - rMin) / rstep)
}

// newScaleGrid validates k against the config and derives the scale grid.
// The config must already be validated.
func newScaleGrid(k []float64, config *Config) (*scaleGrid, error) {
	if len(k) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidGrid, len(k))
	}

	step := k[1] - k[0]
	if step == 0 {
		return nil, fmt.Errorf("%w: zero step (k[0] == k[1] == %g)", ErrInvalidGrid, k[0])
	}
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: non-finite step %g", ErrInvalidGrid, step)
	}

	kstep := mathutil.QuantizeStep(step)
	if kstep <= 0 {
		return nil, fmt.Errorf("%w: step %g quantizes to %g, must be positive", ErrInvalidGrid, step, kstep)
	}

	nfft := config.NFFT
	nkout := len(k)
	if nkout > fftPadFactor*nfft {
		return nil, fmt.Errorf("%w: %d samples exceed inverse transform length %d; increase nfft",
			ErrInvalidConfig, nkout, fftPadFactor*nfft)
	}

	if nfft > maxGridCells/fftPadFactor {
		return nil, fmt.Errorf("%w: nfft %d exceeds the limit of %d", ErrInvalidConfig, nfft, maxGridCells/fftPadFactor)
	}

	count := scaleCount(step, config.RMaxOut, nfft)
	if count <= 0 {
		return nil, fmt.Errorf("%w: rmax_out %g yields %g scale points", ErrInvalidConfig, config.RMaxOut, count)
	}
	if count > float64(maxGridCells/nkout) {
		return nil, fmt.Errorf("%w: rmax_out %g yields %g scale points x %d samples, limit is %d coefficients",
			ErrInvalidConfig, config.RMaxOut, count, nkout, maxGridCells)
	}
	nrpts := int(count)

	r := mathutil.Linspace(rMin, config.RMaxOut, nrpts)
	r[0] = clampEpsilon

	dilation := make([]float64, nrpts)
	for i, ri := range r {
		dilation[i] = float64(nrpts) / (halfDivisor * ri)
	}

	// freq[j] = (1/kstep) * j / (2*nfft); omega = 2π*freq
	omega := make([]float64, nfft)
	for j := range omega {
		omega[j] = 2 * math.Pi * (1.0 / kstep) * float64(j) / float64(fftPadFactor*nfft)
	}

	return &scaleGrid{
		kstep:     kstep,
		nrpts:     nrpts,
		nkout:     nkout,
		nfft:      nfft,
		r:         r,
		dilation:  dilation,
		omega:     omega,
		cauchySum: mathutil.CauchyLogNorm(nrpts),
	}, nil
}

// workingLength returns the number of signal samples fed to the forward
// transform: nfft/2.
func (g *scaleGrid) workingLength() int {
	return g.nfft / halfDivisor
}

// transformLength returns the spectral transform length: 2*nfft.
func (g *scaleGrid) transformLength() int {
	return fftPadFactor * g.nfft
}
