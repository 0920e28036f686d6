package wavelet

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result is the output of Transform. It is freshly allocated per call and
// owned by the caller.
type Result struct {
	// Coeffs holds the complex wavelet coefficients, Coeffs[i][j] for scale
	// R[i] and wavenumber K[j]. Rows share one contiguous backing array.
	Coeffs [][]complex128

	// R is the scale (distance) axis. R[0] is clamped to 1e-19.
	R []float64

	// K is a copy of the input wavenumber grid. The axis is not extended
	// when the signal is zero-padded.
	K []float64

	// KStep is the quantized wavenumber step used to build the grid.
	KStep float64

	// NFFT is the spectral resolution the result was computed with.
	NFFT int
}

// Shape returns the number of scale rows and wavenumber columns.
func (r *Result) Shape() (rows, cols int) {
	if len(r.Coeffs) == 0 {
		return 0, 0
	}
	return len(r.Coeffs), len(r.Coeffs[0])
}

// Magnitude returns |Coeffs| with the same layout.
func (r *Result) Magnitude() [][]float64 {
	rows, cols := r.Shape()
	data := make([]float64, rows*cols)
	out := make([][]float64, rows)
	re, im := make([]float64, cols), make([]float64, cols)
	for i, row := range r.Coeffs {
		out[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
		splitComplex(re, im, row)
		vecmath.Magnitude(out[i], re, im)
	}
	return out
}

// RowEnergy returns Σ_j |Coeffs[i][j]|² for every scale row.
func (r *Result) RowEnergy() []float64 {
	_, cols := r.Shape()
	energy := make([]float64, len(r.Coeffs))
	re, im := make([]float64, cols), make([]float64, cols)
	power := make([]float64, cols)
	for i, row := range r.Coeffs {
		splitComplex(re, im, row)
		vecmath.Power(power, re, im)
		energy[i] = floats.Sum(power)
	}
	return energy
}

// PeakScale returns the scale R with the largest row energy.
// It returns 0 for an empty result.
func (r *Result) PeakScale() float64 {
	if len(r.Coeffs) == 0 {
		return 0
	}
	return r.R[floats.MaxIdx(r.RowEnergy())]
}

// MeanScale returns the energy-weighted mean of R. It returns 0 for an
// empty or all-zero result.
func (r *Result) MeanScale() float64 {
	energy := r.RowEnergy()
	if floats.Sum(energy) == 0 {
		return 0
	}
	return stat.Mean(r.R, energy)
}

// Ridge returns, for every wavenumber column, the scale R at which the
// coefficient magnitude is largest.
func (r *Result) Ridge() []float64 {
	rows, cols := r.Shape()
	ridge := make([]float64, cols)
	if rows == 0 {
		return ridge
	}

	mag := r.Magnitude()
	column := make([]float64, rows)
	for j := range cols {
		for i := range rows {
			column[i] = mag[i][j]
		}
		ridge[j] = r.R[floats.MaxIdx(column)]
	}
	return ridge
}

func splitComplex(re, im []float64, z []complex128) {
	for j, v := range z {
		re[j], im[j] = real(v), imag(v)
	}
}
