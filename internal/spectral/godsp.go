package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// goDSPPlan wraps github.com/mjibson/go-dsp/fft. The package keeps its
// twiddle factors in a shared, lock-protected cache, so the plan itself only
// records the length.
type goDSPPlan struct {
	n int
}

// NewGoDSP returns a Plan backed by github.com/mjibson/go-dsp/fft.
// Power-of-two lengths use radix-2; other lengths fall back to Bluestein.
func NewGoDSP(n int) (Plan, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	return &goDSPPlan{n: n}, nil
}

func (p *goDSPPlan) Len() int { return p.n }

func (p *goDSPPlan) Forward(dst, src []complex128) []complex128 {
	if len(src) != p.n {
		panic("spectral: sequence length mismatch")
	}
	dst = prepareDst(dst, p.n)
	copy(dst, fft.FFT(src))
	return dst
}

func (p *goDSPPlan) Inverse(dst, src []complex128) []complex128 {
	if len(src) != p.n {
		panic("spectral: coefficients length mismatch")
	}
	dst = prepareDst(dst, p.n)
	// fft.IFFT already divides by n.
	copy(dst, fft.IFFT(src))
	return dst
}
