// Package colorvec converts colors into fixed-dimension float32 vectors for
// distance-based palette matching.
//
// Two converters are provided: RGBA (normalized channel values, cheap) and
// Lab (CIE-L*a*b* via go-colorful, perceptually uniform). Both satisfy the
// Converter interface consumed by palettize.New; the batched form is used to
// precompute the palette's vectors once at construction, the single-item
// form per cache-missed query.
package colorvec
