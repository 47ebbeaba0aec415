package colorvec

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBA(t *testing.T) {
	cv := NewRGBA()

	t.Run("Convert", func(t *testing.T) {
		v := cv.Convert(color.RGBA{R: 255, G: 0, B: 0, A: 255})

		require.Len(t, v, Dim)
		assert.InDelta(t, 1.0, v[0], 1e-6)
		assert.Equal(t, float32(0), v[1])
		assert.Equal(t, float32(0), v[2])
		assert.InDelta(t, 1.0, v[3], 1e-6)
	})

	t.Run("Deterministic", func(t *testing.T) {
		c := color.RGBA{R: 12, G: 34, B: 56, A: 78}

		assert.Equal(t, cv.Convert(c), cv.Convert(c))
	})

	t.Run("ConvertBatch", func(t *testing.T) {
		colors := []color.Color{
			color.RGBA{R: 255, A: 255},
			color.RGBA{G: 255, A: 255},
			color.RGBA{B: 255, A: 255},
		}

		vectors := cv.ConvertBatch(colors)
		require.Len(t, vectors, len(colors))

		for i, c := range colors {
			assert.Equal(t, cv.Convert(c), vectors[i])
		}
	})

	t.Run("ConvertBatchEmpty", func(t *testing.T) {
		assert.Empty(t, cv.ConvertBatch(nil))
	})
}

func TestLab(t *testing.T) {
	cv := NewLab()

	t.Run("Convert", func(t *testing.T) {
		white := cv.Convert(color.RGBA{R: 255, G: 255, B: 255, A: 255})
		black := cv.Convert(color.RGBA{A: 255})

		require.Len(t, white, Dim)
		assert.InDelta(t, 1.0, white[0], 1e-3) // L* of white
		assert.InDelta(t, 0.0, black[0], 1e-3) // L* of black
	})

	t.Run("Transparent", func(t *testing.T) {
		v := cv.Convert(color.RGBA{})

		assert.Equal(t, []float32{0, 0, 0, 0}, v)
	})

	t.Run("BatchMatchesSingle", func(t *testing.T) {
		colors := []color.Color{
			color.RGBA{R: 200, G: 30, B: 90, A: 255},
			color.RGBA{R: 10, G: 220, B: 110, A: 255},
		}

		vectors := cv.ConvertBatch(colors)
		require.Len(t, vectors, len(colors))

		for i, c := range colors {
			assert.Equal(t, cv.Convert(c), vectors[i])
		}
	})
}
