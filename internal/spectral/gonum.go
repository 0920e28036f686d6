package spectral

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// gonumPlan wraps gonum's fftpack-based complex FFT.
type gonumPlan struct {
	fft   *fourier.CmplxFFT
	n     int
	scale complex128 // 1/n; gonum's Sequence doesn't normalize
}

// NewGonum returns a Plan backed by gonum.org/v1/gonum/dsp/fourier.
// Any positive length is supported; powers of two are fastest.
func NewGonum(n int) (Plan, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	return &gonumPlan{
		fft:   fourier.NewCmplxFFT(n),
		n:     n,
		scale: complex(1.0/float64(n), 0),
	}, nil
}

func (p *gonumPlan) Len() int { return p.n }

func (p *gonumPlan) Forward(dst, src []complex128) []complex128 {
	dst = prepareDst(dst, p.n)
	return p.fft.Coefficients(dst, src)
}

func (p *gonumPlan) Inverse(dst, src []complex128) []complex128 {
	dst = prepareDst(dst, p.n)
	dst = p.fft.Sequence(dst, src)
	for i := range dst {
		dst[i] *= p.scale
	}
	return dst
}
