// Package palettize resolves arbitrary colors to their nearest entry in a
// fixed palette, as needed by color quantization and dithering.
//
// The central type is Mapper: it precomputes a vector per palette entry at
// construction, answers repeated queries from a sharded concurrent memo, and
// falls back to an exact linear scan with squared-Euclidean distance on a
// miss. Ties resolve to the lowest palette index and an exact match ends the
// scan immediately, so results are deterministic for any query order and any
// number of concurrent callers.
//
// # Quick Start
//
//	m, err := palettize.New(color.Palette{
//	    color.RGBA{R: 255, A: 255},
//	    color.RGBA{G: 255, A: 255},
//	    color.RGBA{B: 255, A: 255},
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	idx, nearest := m.Resolve(color.RGBA{R: 240, G: 20, A: 255})
//
// Conversion into vector space is pluggable via the colorvec package: the
// default is perceptual CIE-L*a*b*; colorvec.NewRGBA() selects plain
// normalized channels:
//
//	m, err := palettize.New(pal, func(o *palettize.Options) {
//	    o.Converter = colorvec.NewRGBA()
//	})
//
// The quantize package turns whole images into paletted images through a
// Mapper, with parallel workers and optional Floyd-Steinberg dithering.
//
// Mappers can be snapshotted with SaveToWriter/SaveToFile and restored with
// NewFromReader/NewFromFile, skipping palette reconversion on load.
package palettize
