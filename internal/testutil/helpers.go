// Package testutil provides reusable test helper functions for wavelet transform tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	BackendTolerance   = 1e-9
	RoundTripTolerance = 1e-12
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertGridFinite verifies that every coefficient of a complex grid has
// finite real and imaginary parts.
func AssertGridFinite(t *testing.T, grid [][]complex128) bool {
	t.Helper()
	for i, row := range grid {
		for j, v := range row {
			if cmplx.IsNaN(v) || cmplx.IsInf(v) {
				return assert.Fail(t, "non-finite coefficient",
					"grid[%d][%d] = %v", i, j, v)
			}
		}
	}
	return true
}

// AssertGridZero verifies that every coefficient of a complex grid is exactly zero.
func AssertGridZero(t *testing.T, grid [][]complex128) bool {
	t.Helper()
	for i, row := range grid {
		for j, v := range row {
			if v != 0 {
				return assert.Fail(t, "non-zero coefficient",
					"grid[%d][%d] = %v", i, j, v)
			}
		}
	}
	return true
}

// AssertGridShape verifies the number of rows and that every row has cols entries.
func AssertGridShape(t *testing.T, grid [][]complex128, rows, cols int) bool {
	t.Helper()
	if !assert.Len(t, grid, rows, "row count") {
		return false
	}
	for i, row := range grid {
		if !assert.Len(t, row, cols, "row %d column count", i) {
			return false
		}
	}
	return true
}

// AssertGridInDelta verifies that two grids have equal shape and that each
// pair of coefficients differs by at most tolerance in modulus.
func AssertGridInDelta(t *testing.T, expected, actual [][]complex128, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "row count") {
		return false
	}
	for i := range expected {
		if !assert.Len(t, actual[i], len(expected[i]), "row %d column count", i) {
			return false
		}
		for j := range expected[i] {
			if d := cmplx.Abs(expected[i][j] - actual[i][j]); d > tolerance {
				return assert.Fail(t, "coefficient mismatch",
					"grid[%d][%d]: expected %v, got %v (|diff|=%e > %e)",
					i, j, expected[i][j], actual[i][j], d, tolerance)
			}
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// MaxAbs returns the largest coefficient modulus in a grid.
func MaxAbs(grid [][]complex128) float64 {
	var m float64
	for _, row := range grid {
		for _, v := range row {
			if a := cmplx.Abs(v); a > m {
				m = a
			}
		}
	}
	return m
}
