// Package wavelet provides the continuous Cauchy wavelet transform of EXAFS
// spectra in pure Go.
//
// The transform follows Munoz, Argoul and Farges, "Continuous Cauchy wavelet
// transform analyses of EXAFS spectra: a qualitative approach", American
// Mineralogist 88, pp. 694-700 (2003). It maps chi(k), sampled on a uniform
// photo-electron wavenumber grid, onto a 2-D complex grid over distance R and
// wavenumber k, localizing each scattering shell jointly in both.
//
// # Quick Start
//
// For a one-shot transform with the standard parameters:
//
//	k := wavelet.WavenumberGrid(2.0, 0.05, 281)
//	result, err := wavelet.TransformDefault(k, chi)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, cols := result.Shape() // len(result.R) × len(k)
//
// With explicit parameters:
//
//	config := &wavelet.Config{
//	    RMaxOut: 6,
//	    KWeight: 2,
//	    NFFT:    2048,
//	    Workers: 4,
//	    FFT:     wavelet.GoDSPFFT,
//	}
//	result, err := wavelet.Transform(k, chi, config)
//
// # Algorithm
//
// The signal is optionally weighted by k^KWeight, padded or truncated to
// NFFT/2 samples and transformed once over 2*NFFT points. For each scale
// R[i] an analytic Cauchy filter of order nrpts is built in the log domain,
//
//	ln ψ̂(aω) = ln(2π) − ln(nrpts!) + nrpts·ln(aω) − aω,  a = nrpts/(2R),
//
// applied to the first NFFT bins of the spectrum and inverse transformed.
// The first len(k) samples form row i of the output. The filter peaks at
// ω = 2R, so a shell contributing sin(2kR₀) concentrates near R = R₀.
//
// The grid size follows from the quantized step kstep = round(1000·Δk)/1000:
//
//	nrpts = round((RMaxOut − 1e-7) / ((π/NFFT)/kstep))
//
// Exact zeros in the first scale value and in the dilated frequency axis are
// replaced by 1e-19.
//
// # Spectral Backends
//
// The forward and inverse transforms are injected through [SpectralFactory].
// [GonumFFT] (gonum.org/v1/gonum/dsp/fourier) is the default. [GoDSPFFT]
// (github.com/mjibson/go-dsp/fft) and [AlgoFFT] (github.com/cwbudde/algo-fft,
// power-of-two NFFT only) are also available. Custom backends must return
// plans whose Inverse is normalized by 1/n.
//
// # Thread Safety
//
// [Transform] is safe for concurrent use. Within one call, scale rows are
// computed by [Config.Workers] goroutines, each with its own spectral plan,
// writing to disjoint rows. Results are identical for any worker count.
//
// # Errors
//
// All inputs are validated before any spectral work. Errors wrap one of
// [ErrInvalidGrid], [ErrLengthMismatch], [ErrDomain] or [ErrInvalidConfig]
// and can be tested with errors.Is.
//
// # Attribution
//
// The algorithm derives from the MATLAB code by Munoz, Argoul and Farges
// (Univ. Marne la Vallee, 2000), later translated to Python for Larch by
// M. Newville.
package wavelet
