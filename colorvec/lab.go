package colorvec

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab converts colors to CIE-L*a*b* vectors with the alpha channel appended
// as the fourth component. Distances in L*a*b* space track perceived color
// difference far better than raw RGB, at the cost of a more expensive
// conversion.
//
// L* is scaled to [0, 1]; a* and b* keep their native range (roughly
// [-1, 1] after colorful's scaling). Alpha is normalized to [0, 1] and kept
// in the vector so a transparent palette entry never matches an opaque query.
type Lab struct{}

// NewLab creates a new Lab converter.
func NewLab() *Lab {
	return &Lab{}
}

// Convert implements Converter.
func (cv *Lab) Convert(c color.Color) []float32 {
	v := make([]float32, Dim)
	cv.convertInto(c, v)
	return v
}

// ConvertBatch implements Converter.
// Uses a single backing array for all vectors.
func (cv *Lab) ConvertBatch(colors []color.Color) [][]float32 {
	data := make([]float32, len(colors)*Dim)
	vectors := make([][]float32, len(colors))

	for i, c := range colors {
		vec := data[i*Dim : (i+1)*Dim]
		cv.convertInto(c, vec)
		vectors[i] = vec
	}

	return vectors
}

func (cv *Lab) convertInto(c color.Color, v []float32) {
	_, _, _, a := c.RGBA()
	if a == 0 {
		// Fully transparent colors carry no chroma; colorful cannot
		// un-premultiply them. Map them all to the zero vector.
		return
	}

	cf, _ := colorful.MakeColor(c)
	l, labA, labB := cf.Lab()

	v[0] = float32(l)
	v[1] = float32(labA)
	v[2] = float32(labB)
	v[3] = float32(a) / 0xffff
}
