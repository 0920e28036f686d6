// Command cauchy-wt computes the Cauchy wavelet transform of an EXAFS chi(k)
// spectrum stored as a whitespace-separated column file.
//
// Usage:
//
//	cauchy-wt chi.dat > wavelet.csv
//	cauchy-wt -rmax 6 -kweight 2 -output wavelet.csv chi.dat
//	cauchy-wt -kcol 0 -chicol 3 -complex run000001.dat
//	cauchy-wt -backend godsp -workers 4 -v chi.dat
//	cauchy-wt -backend algofft -nfft 4096 chi.dat
//
// The output is CSV with one row per distance R: the first column is R, the
// remaining columns are |W(R, k)| for each input k (or real and imaginary
// parts with -complex).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	wavelet "github.com/tphakala/go-exafs-wavelet"
	"github.com/tphakala/simd/cpu"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// Input parsing
	commentPrefix     = "#"
	scannerBufferSize = 64 * 1024
	maxLineLength     = 16 * 1024 * 1024

	// Output
	outputPrecision = 10 // Significant digits in CSV values

	// CLI defaults
	defaultKColumn   = 0
	defaultChiColumn = 1
	minRequiredArgs  = 1
	stdinPath        = "-"
)

type options struct {
	rmax       float64
	kweight    float64
	nfft       int
	workers    int
	backend    string
	kcol       int
	chicol     int
	output     string
	complexOut bool
	verbose    bool
	inputPath  string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, logger); err != nil {
		logger.Error("transform failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("cauchy-wt", flag.ContinueOnError)
	fs.Float64Var(&opts.rmax, "rmax", wavelet.DefaultRMaxOut, "Highest distance R of the output grid")
	fs.Float64Var(&opts.kweight, "kweight", wavelet.DefaultKWeight, "Weight chi by k^kweight before the transform")
	fs.IntVar(&opts.nfft, "nfft", wavelet.DefaultNFFT, "Spectral transform size (power of two recommended)")
	fs.IntVar(&opts.workers, "workers", 0, "Goroutines computing scale rows (0 = one per CPU)")
	fs.StringVar(&opts.backend, "backend", "gonum", "Spectral backend: gonum, godsp, algofft")
	fs.IntVar(&opts.kcol, "kcol", defaultKColumn, "Zero-based column holding k")
	fs.IntVar(&opts.chicol, "chicol", defaultChiColumn, "Zero-based column holding chi")
	fs.StringVar(&opts.output, "output", "", "Output CSV file (default stdout)")
	fs.BoolVar(&opts.complexOut, "complex", false, "Write real and imaginary parts instead of magnitude")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: cauchy-wt [options] input.dat\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nUse '-' to read from stdin.\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < minRequiredArgs {
		fs.Usage()
		return nil, fmt.Errorf("insufficient arguments")
	}
	opts.inputPath = fs.Arg(0)

	return opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func run(opts *options, logger *zap.Logger) (err error) {
	fft, err := wavelet.SpectralBackend(opts.backend)
	if err != nil {
		return err
	}

	logger.Debug("starting",
		zap.String("input", opts.inputPath),
		zap.String("backend", opts.backend),
		zap.String("simd", cpu.Info()),
	)

	rows, err := readInput(opts.inputPath)
	if err != nil {
		return err
	}
	k, chi, err := selectColumns(rows, opts.kcol, opts.chicol)
	if err != nil {
		return err
	}

	config := &wavelet.Config{
		RMaxOut: opts.rmax,
		KWeight: opts.kweight,
		NFFT:    opts.nfft,
		Workers: opts.workers,
		FFT:     fft,
		Logger:  logger,
	}

	start := time.Now()
	result, err := wavelet.Transform(k, chi, config)
	if err != nil {
		return err
	}
	nr, nk := result.Shape()
	logger.Info("transform complete",
		zap.Int("rows", nr),
		zap.Int("columns", nk),
		zap.Float64("kstep", result.KStep),
		zap.Float64("peak_r", result.PeakScale()),
		zap.Float64("mean_r", result.MeanScale()),
		zap.Duration("elapsed", time.Since(start)),
	)

	var out io.Writer = os.Stdout
	if opts.output != "" {
		f, createErr := os.Create(opts.output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() { err = multierr.Append(err, f.Close()) }()
		out = f
	}

	return writeCSV(out, result, opts.complexOut)
}

func readInput(path string) (rows [][]float64, err error) {
	if path == stdinPath {
		return readColumns(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	rows, err = readColumns(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
