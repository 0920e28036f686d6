package wavelet

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/tphakala/go-exafs-wavelet/internal/simdops"
	"go.uber.org/zap"
)

// Transform computes the continuous Cauchy wavelet transform of chi(k).
//
// k must hold at least two samples on a uniform, increasing grid. chi must
// have the same length as k; a nil chi is treated as all zeros. The caller's
// slices are never modified.
//
// The result has one row per scale value R and one column per input sample.
// All validation happens before any spectral work, so an error always means
// no output was produced.
func Transform(k, chi []float64, config *Config) (*Result, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if chi != nil && len(chi) != len(k) {
		return nil, fmt.Errorf("%w: len(chi)=%d, len(k)=%d", ErrLengthMismatch, len(chi), len(k))
	}

	grid, err := newScaleGrid(k, config)
	if err != nil {
		return nil, err
	}

	signal, err := weightSignal(k, chi, config.KWeight)
	if err != nil {
		return nil, err
	}

	workers, err := newRowWorkers(grid, config)
	if err != nil {
		return nil, err
	}

	log := config.logger()
	log.Debug("cauchy wavelet grid",
		zap.Int("samples", len(k)),
		zap.Float64("kstep", grid.kstep),
		zap.Int("nfft", grid.nfft),
		zap.Int("nrpts", grid.nrpts),
		zap.Float64("rmax_out", config.RMaxOut),
		zap.Float64("kweight", config.KWeight),
		zap.Int("workers", len(workers)),
		zap.Bool("padded", len(k) < grid.workingLength()),
	)

	// One forward transform shared by every row.
	padded := padSignal(signal, grid.workingLength(), grid.transformLength())
	spectrum := workers[0].plan.Forward(nil, padded)[:grid.nfft]

	coeffs := allocateGrid(grid.nrpts, grid.nkout)
	computeRows(coeffs, grid, spectrum, workers)

	return &Result{
		Coeffs: coeffs,
		R:      grid.r,
		K:      append([]float64(nil), k...),
		KStep:  grid.kstep,
		NFFT:   grid.nfft,
	}, nil
}

// weightSignal returns a copy of chi multiplied by k^kweight.
// A nil chi yields zeros.
func weightSignal(k, chi []float64, kweight float64) ([]float64, error) {
	out := make([]float64, len(k))
	if chi == nil {
		return out, nil
	}

	for i, v := range chi {
		if kweight != 0 {
			v *= math.Pow(k[i], kweight)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %d (k=%g, kweight=%g) is %g", ErrDomain, i, k[i], kweight, v)
		}
		out[i] = v
	}

	return out, nil
}

// padSignal builds the forward transform input: the first min(len(x), nft)
// samples of x, zero-filled to size.
func padSignal(x []float64, nft, size int) []complex128 {
	out := make([]complex128, size)
	n := min(len(x), nft)
	for i := range n {
		out[i] = complex(x[i], 0)
	}
	return out
}

// allocateGrid returns rows×cols coefficients backed by one contiguous slice.
func allocateGrid(rows, cols int) [][]complex128 {
	data := make([]complex128, rows*cols)
	grid := make([][]complex128, rows)
	for i := range grid {
		grid[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return grid
}

// rowWorker owns a spectral plan and scratch buffers for computing rows.
type rowWorker struct {
	plan    SpectralPlan
	ops     *simdops.Ops
	aom     []float64    // dilated angular frequency
	filter  []complex128 // Cauchy filter, nfft bins
	product []complex128 // filtered spectrum, zero above nfft
	seq     []complex128 // inverse transform output
}

// newRowWorkers creates the worker pool. Plans are built up front so a
// backend failure surfaces before any row is computed.
func newRowWorkers(grid *scaleGrid, config *Config) ([]*rowWorker, error) {
	n := config.Workers
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	n = max(1, min(n, grid.nrpts))

	factory := config.factory()
	size := grid.transformLength()

	workers := make([]*rowWorker, n)
	for i := range workers {
		plan, err := factory(size)
		if err != nil {
			return nil, fmt.Errorf("%w: spectral plan of length %d: %w", ErrInvalidConfig, size, err)
		}
		if plan.Len() != size {
			return nil, fmt.Errorf("%w: spectral plan length %d, want %d", ErrInvalidConfig, plan.Len(), size)
		}
		workers[i] = &rowWorker{
			plan:    plan,
			ops:     simdops.Float64Ops(),
			aom:     make([]float64, grid.nfft),
			filter:  make([]complex128, grid.nfft),
			product: make([]complex128, size),
			seq:     make([]complex128, size),
		}
	}

	return workers, nil
}

// computeRows fills every row of coeffs. With more than one worker, rows are
// handed out over a channel; each row is written by exactly one goroutine.
func computeRows(coeffs [][]complex128, grid *scaleGrid, spectrum []complex128, workers []*rowWorker) {
	if len(workers) == 1 {
		for i := range coeffs {
			workers[0].computeRow(coeffs[i], grid, i, spectrum)
		}
		return
	}

	rows := make(chan int)
	var wg sync.WaitGroup

	for _, w := range workers {
		wg.Add(1)
		go func(w *rowWorker) {
			defer wg.Done()
			for i := range rows {
				w.computeRow(coeffs[i], grid, i, spectrum)
			}
		}(w)
	}

	for i := range coeffs {
		rows <- i
	}
	close(rows)
	wg.Wait()
}

// computeRow filters the shared spectrum with the Cauchy wavelet at scale
// index i and writes the first nkout inverse-transform samples to dst.
func (w *rowWorker) computeRow(dst []complex128, grid *scaleGrid, i int, spectrum []complex128) {
	w.ops.Dilate(w.aom, grid.omega, grid.dilation[i], clampEpsilon)
	simdops.CauchyFilter(w.filter, w.aom, grid.cauchySum, float64(grid.nrpts))
	w.ops.Apply(w.product[:grid.nfft], w.filter, spectrum)

	w.seq = w.plan.Inverse(w.seq, w.product)
	copy(dst, w.seq[:grid.nkout])
}
