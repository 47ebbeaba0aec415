// Package quantize converts images to paletted images through a
// palettize.Mapper.
//
// Plain quantization resolves rows with parallel workers; the mapper's memo
// is the shared state that makes this profitable, since photographic images
// repeat colors heavily. Floyd-Steinberg dithering is available for
// smoother gradients and runs sequentially.
package quantize
