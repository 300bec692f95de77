package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormalCDF(t *testing.T) {
	t.Run("centre is exactly one half", func(t *testing.T) {
		assert.Equal(t, 0.5, NormalCDF(0))
	})

	t.Run("matches exact CDF to 1e-6", func(t *testing.T) {
		for x := -6.0; x <= 6.0; x += 0.05 {
			want := distuv.UnitNormal.CDF(x)
			assert.InDelta(t, want, NormalCDF(x), 1e-6, "x=%v", x)
		}
	})

	t.Run("symmetric around zero", func(t *testing.T) {
		for _, x := range []float64{0.1, 0.5, 1, 1.96, 2.5, 4} {
			assert.InDelta(t, 1.0, NormalCDF(x)+NormalCDF(-x), 1e-12, "x=%v", x)
		}
	})

	t.Run("monotonic", func(t *testing.T) {
		prev := NormalCDF(-8)
		for x := -8.0; x <= 8.0; x += 0.01 {
			cur := NormalCDF(x)
			if cur < prev {
				t.Fatalf("NormalCDF decreased at x=%v: %v < %v", x, cur, prev)
			}
			prev = cur
		}
	})

	t.Run("well known values", func(t *testing.T) {
		assert.InDelta(t, 0.975, NormalCDF(1.959964), 1e-6)
		assert.InDelta(t, 0.8413447, NormalCDF(1), 1e-6)
		assert.InDelta(t, 0.0227501, NormalCDF(-2), 1e-6)
	})

	t.Run("NaN propagates", func(t *testing.T) {
		assert.True(t, math.IsNaN(NormalCDF(math.NaN())))
	})
}

func TestNormalQuantile(t *testing.T) {
	z, err := NormalQuantile(0.975)
	require.NoError(t, err)
	assert.InDelta(t, 1.959964, z, 1e-6)

	z, err = NormalQuantile(0.80)
	require.NoError(t, err)
	assert.InDelta(t, 0.841621, z, 1e-6)

	z, err = NormalQuantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, z, 1e-12)

	for _, p := range []float64{0, 1, -0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := NormalQuantile(p)
		assert.True(t, errors.Is(err, ErrInvalidInput), "p=%v", p)
	}
}

func TestNormalQuantile_InvertsCDF(t *testing.T) {
	for x := -4.0; x <= 4.0; x += 0.25 {
		z, err := NormalQuantile(NormalCDF(x))
		require.NoError(t, err)
		assert.InDelta(t, x, z, 1e-5, "x=%v", x)
	}
}
