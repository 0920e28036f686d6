package spectral

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/tphakala/go-exafs-wavelet/internal/mathutil"
)

// algoFFTPlan wraps a precomputed github.com/cwbudde/algo-fft plan.
type algoFFTPlan struct {
	plan *algofft.Plan[complex128]
	n    int
}

// NewAlgoFFT returns a Plan backed by github.com/cwbudde/algo-fft.
// Only power-of-two lengths are accepted.
func NewAlgoFFT(n int) (Plan, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	if !mathutil.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrInvalidLength, n, err)
	}
	return &algoFFTPlan{plan: plan, n: n}, nil
}

func (p *algoFFTPlan) Len() int { return p.n }

func (p *algoFFTPlan) Forward(dst, src []complex128) []complex128 {
	if len(src) != p.n {
		panic("spectral: sequence length mismatch")
	}
	dst = prepareDst(dst, p.n)
	if err := p.plan.Forward(dst, src); err != nil {
		panic(fmt.Sprintf("spectral: forward transform: %v", err))
	}
	return dst
}

func (p *algoFFTPlan) Inverse(dst, src []complex128) []complex128 {
	if len(src) != p.n {
		panic("spectral: coefficients length mismatch")
	}
	dst = prepareDst(dst, p.n)
	// The library's inverse already divides by n.
	if err := p.plan.Inverse(dst, src); err != nil {
		panic(fmt.Sprintf("spectral: inverse transform: %v", err))
	}
	return dst
}
