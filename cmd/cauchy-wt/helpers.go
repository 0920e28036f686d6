package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/cmplx"
	"strconv"
	"strings"

	wavelet "github.com/tphakala/go-exafs-wavelet"
)

// errNoData indicates an input without any data rows.
var errNoData = errors.New("no data rows")

// readColumns parses a whitespace-separated numeric table. Lines starting
// with '#' and blank lines are skipped; runs of spaces or tabs separate
// columns. Every data row must have the same number of columns.
func readColumns(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	width := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scannerBufferSize), maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if width >= 0 && len(fields) != width {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineNo, width, len(fields))
		}
		width = len(fields)

		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", lineNo, i, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(rows) == 0 {
		return nil, errNoData
	}

	return rows, nil
}

// selectColumns extracts the k and chi columns from a parsed table.
func selectColumns(rows [][]float64, kcol, chicol int) (k, chi []float64, err error) {
	if len(rows) == 0 {
		return nil, nil, errNoData
	}
	width := len(rows[0])
	if kcol < 0 || kcol >= width {
		return nil, nil, fmt.Errorf("k column %d out of range (table has %d columns)", kcol, width)
	}
	if chicol < 0 || chicol >= width {
		return nil, nil, fmt.Errorf("chi column %d out of range (table has %d columns)", chicol, width)
	}

	k = make([]float64, len(rows))
	chi = make([]float64, len(rows))
	for i, row := range rows {
		k[i] = row[kcol]
		chi[i] = row[chicol]
	}
	return k, chi, nil
}

// writeCSV writes one row per scale R. In magnitude mode each row is
// R followed by |W(R, k_j)|; in complex mode real and imaginary parts
// alternate.
func writeCSV(w io.Writer, result *wavelet.Result, complexOut bool) error {
	cw := csv.NewWriter(w)

	header := []string{"r"}
	for _, kv := range result.K {
		label := formatFloat(kv)
		if complexOut {
			header = append(header, "re(k="+label+")", "im(k="+label+")")
		} else {
			header = append(header, "k="+label)
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, 0, len(header))
	for i, row := range result.Coeffs {
		record = append(record[:0], formatFloat(result.R[i]))
		for _, v := range row {
			if complexOut {
				record = append(record, formatFloat(real(v)), formatFloat(imag(v)))
			} else {
				record = append(record, formatFloat(cmplx.Abs(v)))
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', outputPrecision, 64)
}
