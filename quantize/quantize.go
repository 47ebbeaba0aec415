package quantize

import (
	"context"
	"errors"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/palettize"
)

// ErrPaletteTooLarge is returned when the mapper's palette has more entries
// than a paletted image can index (256).
var ErrPaletteTooLarge = errors.New("palette exceeds 256 entries")

// Options contains configuration options for image quantization.
type Options struct {
	// Workers is the number of concurrent row workers.
	// Defaults to GOMAXPROCS. Ignored when Dither is set: error diffusion
	// is order-dependent and runs sequentially.
	Workers int

	// Dither enables Floyd-Steinberg error diffusion.
	Dither bool

	// Logger receives operational logs.
	Logger *palettize.Logger
}

// DefaultOptions contains the default configuration options for image
// quantization.
var DefaultOptions = Options{
	Workers: 0,
	Dither:  false,
}

// Image maps every pixel of img to its nearest palette entry and returns the
// resulting paletted image. All pixels resolve through m, so repeated colors
// cost one memo lookup each; rows are processed by parallel workers unless
// dithering is enabled.
func Image(ctx context.Context, img image.Image, m *palettize.Mapper, optFns ...func(o *Options)) (*image.Paletted, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = palettize.NoopLogger()
	}

	bounds := img.Bounds()

	if len(m.Palette()) > 256 {
		logger.LogQuantize(bounds.Dx(), bounds.Dy(), ErrPaletteTooLarge)
		return nil, ErrPaletteTooLarge
	}

	dst := image.NewPaletted(bounds, m.Palette())

	var err error
	if opts.Dither {
		err = ditherImage(ctx, img, m, dst)
	} else {
		err = quantizeParallel(ctx, img, m, dst, opts.Workers)
	}

	logger.LogQuantize(bounds.Dx(), bounds.Dy(), err)
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// quantizeParallel resolves rows concurrently. Workers write to disjoint
// pixel ranges of dst, so no synchronization beyond the mapper's memo is
// needed.
func quantizeParallel(ctx context.Context, img image.Image, m *palettize.Mapper, dst *image.Paletted, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bounds := img.Bounds()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				idx, _ := m.Resolve(img.At(x, y))
				dst.SetColorIndex(x, y, uint8(idx))
			}

			return nil
		})
	}

	return g.Wait()
}
