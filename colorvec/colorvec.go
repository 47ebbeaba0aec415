package colorvec

import "image/color"

// Dim is the number of components in every converted vector.
const Dim = 4

// Converter turns colors into Dim-component float32 vectors.
//
// Implementations must be pure and deterministic: converting the same color
// twice yields the same vector, with no side effects. The resolver relies on
// this to memoize results safely.
type Converter interface {
	// Convert converts a single color.
	Convert(c color.Color) []float32

	// ConvertBatch converts colors in order, one vector per input color.
	ConvertBatch(colors []color.Color) [][]float32
}

// RGBA converts colors to normalized alpha-premultiplied RGBA vectors with
// each component in [0, 1]. It is the cheapest converter and matches plain
// channel-wise distance.
type RGBA struct{}

// NewRGBA creates a new RGBA converter.
func NewRGBA() *RGBA {
	return &RGBA{}
}

// Convert implements Converter.
func (cv *RGBA) Convert(c color.Color) []float32 {
	v := make([]float32, Dim)
	cv.convertInto(c, v)
	return v
}

// ConvertBatch implements Converter.
// Uses a single backing array for all vectors.
func (cv *RGBA) ConvertBatch(colors []color.Color) [][]float32 {
	data := make([]float32, len(colors)*Dim)
	vectors := make([][]float32, len(colors))

	for i, c := range colors {
		vec := data[i*Dim : (i+1)*Dim]
		cv.convertInto(c, vec)
		vectors[i] = vec
	}

	return vectors
}

func (cv *RGBA) convertInto(c color.Color, v []float32) {
	r, g, b, a := c.RGBA()
	v[0] = float32(r) / 0xffff
	v[1] = float32(g) / 0xffff
	v[2] = float32(b) / 0xffff
	v[3] = float32(a) / 0xffff
}
