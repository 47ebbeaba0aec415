package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		a := []float32{1, 0, 0, 0}
		b := []float32{0, 1, 0, 0}

		assert.Equal(t, float32(2), SquaredL2(a, b))
	})

	t.Run("Identical", func(t *testing.T) {
		a := []float32{0.25, 0.5, 0.75, 1}

		assert.Equal(t, float32(0), SquaredL2(a, a))
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := []float32{0.1, 0.2, 0.3, 0.4}
		b := []float32{0.9, 0.8, 0.7, 0.6}

		assert.Equal(t, SquaredL2(a, b), SquaredL2(b, a))
	})
}

func TestDot(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{4, 3, 2, 1}

	assert.Equal(t, float32(20), Dot(a, b))
}

func TestNormalizeL2(t *testing.T) {
	t.Run("InPlace", func(t *testing.T) {
		v := []float32{3, 4, 0, 0}

		ok := NormalizeL2InPlace(v)
		require.True(t, ok)
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		v := []float32{0, 0, 0, 0}

		assert.False(t, NormalizeL2InPlace(v))
	})

	t.Run("Copy", func(t *testing.T) {
		src := []float32{0, 0, 5, 0}

		dst, ok := NormalizeL2Copy(src)
		require.True(t, ok)
		assert.Equal(t, []float32{0, 0, 5, 0}, src)
		assert.InDelta(t, 1.0, dst[2], 1e-6)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := NormalizeL2Copy(nil)
		assert.False(t, ok)
	})
}
