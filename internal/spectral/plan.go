// Package spectral provides forward and inverse discrete Fourier transform
// plans for complex sequences.
//
// A Plan is bound to one transform length. Plans are not safe for concurrent
// use; callers that transform in parallel create one plan per goroutine.
package spectral

import (
	"errors"
	"fmt"
)

// ErrInvalidLength indicates a transform length that cannot be planned.
var ErrInvalidLength = errors.New("invalid transform length")

// Plan computes complex-to-complex transforms of a fixed length.
type Plan interface {
	// Len returns the transform length.
	Len() int

	// Forward computes the unnormalized forward transform of src into dst
	// and returns dst. A nil dst is allocated. len(src) must equal Len().
	Forward(dst, src []complex128) []complex128

	// Inverse computes the inverse transform of src into dst, normalized by
	// 1/Len() so that Inverse(Forward(x)) == x. A nil dst is allocated.
	Inverse(dst, src []complex128) []complex128
}

// Factory builds a Plan for transforms of length n.
type Factory func(n int) (Plan, error)

// Backend names accepted by ByName.
const (
	BackendGonum   = "gonum"
	BackendGoDSP   = "godsp"
	BackendAlgoFFT = "algofft"
)

// ByName returns the factory registered under name.
func ByName(name string) (Factory, error) {
	switch name {
	case BackendGonum, "":
		return NewGonum, nil
	case BackendGoDSP:
		return NewGoDSP, nil
	case BackendAlgoFFT:
		return NewAlgoFFT, nil
	default:
		return nil, fmt.Errorf("unknown spectral backend %q", name)
	}
}

func checkLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

// prepareDst returns dst, allocating it when nil.
// Panics on a length mismatch, matching the gonum plans.
func prepareDst(dst []complex128, n int) []complex128 {
	if dst == nil {
		return make([]complex128, n)
	}
	if len(dst) != n {
		panic("spectral: destination length mismatch")
	}
	return dst
}
