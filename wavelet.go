package wavelet

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-exafs-wavelet/internal/spectral"
	"go.uber.org/zap"
)

// Config holds Cauchy wavelet transform parameters.
type Config struct {
	// RMaxOut is the highest distance R of the output grid.
	// Must be greater than 1e-7.
	RMaxOut float64

	// KWeight is the exponent applied as chi * k^KWeight before the
	// transform. Zero disables weighting.
	KWeight float64

	// NFFT sets the spectral resolution. The input is padded or truncated to
	// NFFT/2 samples (rounded down) and transformed over 2*NFFT points. Must
	// be positive; powers of two are fastest.
	NFFT int

	// Workers is the number of goroutines computing scale rows.
	// 0 uses runtime.GOMAXPROCS(0); 1 computes rows sequentially.
	Workers int

	// FFT builds the spectral plans. Nil selects GonumFFT.
	FFT SpectralFactory

	// Logger receives debug output about derived grid parameters.
	// Nil disables logging.
	Logger *zap.Logger
}

// SpectralPlan computes forward and normalized inverse complex transforms
// of a fixed length.
type SpectralPlan = spectral.Plan

// SpectralFactory builds a SpectralPlan for a given transform length.
type SpectralFactory = spectral.Factory

// Available spectral backends.
var (
	// GonumFFT uses gonum.org/v1/gonum/dsp/fourier.
	GonumFFT SpectralFactory = spectral.NewGonum

	// GoDSPFFT uses github.com/mjibson/go-dsp/fft.
	GoDSPFFT SpectralFactory = spectral.NewGoDSP

	// AlgoFFT uses github.com/cwbudde/algo-fft. Power-of-two NFFT only.
	AlgoFFT SpectralFactory = spectral.NewAlgoFFT
)

// SpectralBackend returns the factory for a backend name: "gonum" (or
// empty), "godsp" or "algofft".
func SpectralBackend(name string) (SpectralFactory, error) {
	f, err := spectral.ByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return f, nil
}

// Common errors returned by the transform.
var (
	// ErrInvalidGrid indicates a wavenumber grid without a usable step.
	ErrInvalidGrid = errors.New("invalid wavenumber grid")

	// ErrLengthMismatch indicates chi and k have different lengths.
	ErrLengthMismatch = errors.New("chi and k length mismatch")

	// ErrDomain indicates the (weighted) signal contains NaN or Inf.
	ErrDomain = errors.New("signal outside numeric domain")

	// ErrInvalidConfig indicates invalid transform parameters.
	ErrInvalidConfig = errors.New("invalid wavelet configuration")
)

// DefaultConfig returns the standard parameters: RMaxOut 10, no weighting,
// NFFT 2048, one worker per CPU.
func DefaultConfig() *Config {
	return &Config{
		RMaxOut: DefaultRMaxOut,
		KWeight: DefaultKWeight,
		NFFT:    DefaultNFFT,
	}
}

// Validate checks if the configuration is valid.
// Grid-dependent checks (scale count, column count) happen in Transform.
func (c *Config) Validate() error {
	if c.NFFT <= 0 {
		return fmt.Errorf("%w: nfft must be positive, got %d", ErrInvalidConfig, c.NFFT)
	}

	// Written as a negation so NaN is rejected too.
	if !(c.RMaxOut > rMin) || math.IsInf(c.RMaxOut, 0) {
		return fmt.Errorf("%w: rmax_out must be finite and greater than %g, got %g", ErrInvalidConfig, rMin, c.RMaxOut)
	}

	if math.IsNaN(c.KWeight) || math.IsInf(c.KWeight, 0) {
		return fmt.Errorf("%w: kweight must be finite", ErrInvalidConfig)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Config) factory() SpectralFactory {
	if c.FFT == nil {
		return GonumFFT
	}
	return c.FFT
}
