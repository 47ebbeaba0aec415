package quantize

import (
	"context"
	"image"
	"image/color"

	"github.com/hupe1980/palettize"
)

// ditherImage performs Floyd-Steinberg error diffusion. It is sequential by
// nature: each pixel's quantization error feeds the pixels right of and
// below it, so rows cannot be processed independently.
//
// Errors are carried in 16-bit channel space, pre-scaled by 16 so the
// 7/16, 3/16, 5/16, 1/16 weights stay in integer arithmetic.
func ditherImage(ctx context.Context, img image.Image, m *palettize.Mapper, dst *image.Paletted) error {
	bounds := img.Bounds()
	width := bounds.Dx()

	// Index x+1 so the x-1 and x+1 taps never go out of range.
	curErr := make([][3]int32, width+2)
	nextErr := make([][3]int32, width+2)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			i := x - bounds.Min.X + 1

			er := clamp16(int32(r) + curErr[i][0]/16)
			eg := clamp16(int32(g) + curErr[i][1]/16)
			eb := clamp16(int32(b) + curErr[i][2]/16)

			idx, match := m.Resolve(color.RGBA64{
				R: uint16(er),
				G: uint16(eg),
				B: uint16(eb),
				A: uint16(a),
			})
			dst.SetColorIndex(x, y, uint8(idx))

			pr, pg, pb, _ := match.RGBA()
			dr := er - int32(pr)
			dg := eg - int32(pg)
			db := eb - int32(pb)

			curErr[i+1][0] += dr * 7
			curErr[i+1][1] += dg * 7
			curErr[i+1][2] += db * 7

			nextErr[i-1][0] += dr * 3
			nextErr[i-1][1] += dg * 3
			nextErr[i-1][2] += db * 3

			nextErr[i][0] += dr * 5
			nextErr[i][1] += dg * 5
			nextErr[i][2] += db * 5

			nextErr[i+1][0] += dr
			nextErr[i+1][1] += dg
			nextErr[i+1][2] += db
		}

		curErr, nextErr = nextErr, curErr
		clear(nextErr)
	}

	return nil
}

func clamp16(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 0xffff {
		return 0xffff
	}
	return v
}
