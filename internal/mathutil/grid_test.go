package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-exafs-wavelet/internal/testutil"
)

func TestQuantizeStep(t *testing.T) {
	tests := []struct {
		name     string
		step     float64
		expected float64
	}{
		{"Exact", 0.05, 0.05},
		{"Jitter above", 0.05000000001, 0.05},
		{"Jitter below", 0.0499999999, 0.05},
		{"Rounds to 3 decimals", 0.1234, 0.123},
		{"Below quantum", 0.0004, 0.0},
		{"Negative", -0.1, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, QuantizeStep(tt.step), 1e-15)
		})
	}
}

func TestLinspace(t *testing.T) {
	t.Run("Endpoints included", func(t *testing.T) {
		v := Linspace(0, 1, 5)
		assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, v)
	})

	t.Run("Single point", func(t *testing.T) {
		assert.Equal(t, []float64{2.5}, Linspace(2.5, 10, 1))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Linspace(0, 1, 0))
		assert.Empty(t, Linspace(0, 1, -3))
	})

	t.Run("Monotonic", func(t *testing.T) {
		v := Linspace(1e-7, 10, 326)
		testutil.AssertMonotonic(t, v)
		assert.InDelta(t, 1e-7, v[0], 1e-20)
		assert.Equal(t, 10.0, v[len(v)-1])
	})
}

func TestCauchyLogNorm(t *testing.T) {
	tests := []struct {
		name  string
		order int
	}{
		{"Order 1", 1},
		{"Order 2", 2},
		{"Order 10", 10},
		{"Order 41", 41},
		{"Order 326", 326},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lgamma, _ := math.Lgamma(float64(tt.order) + 1)
			expected := math.Log(2*math.Pi) - lgamma
			testutil.AssertRelativeError(t, expected, CauchyLogNorm(tt.order), 1e-12)
		})
	}

	t.Run("Zero order", func(t *testing.T) {
		assert.InDelta(t, math.Log(2*math.Pi), CauchyLogNorm(0), 1e-15)
	})
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 256, 2048, 1 << 20} {
		assert.True(t, IsPowerOfTwo(n), "n=%d", n)
	}
	for _, n := range []int{0, -2, 3, 6, 1000, 2047} {
		assert.False(t, IsPowerOfTwo(n), "n=%d", n)
	}
}
