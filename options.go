package palettize

import "github.com/hupe1980/palettize/colorvec"

// Options contains configuration options for a Mapper.
type Options struct {
	// Converter is the color-to-vector conversion used for the palette at
	// construction and for queried colors on memo misses. It must be pure
	// and deterministic.
	Converter colorvec.Converter

	// Logger receives operational logs (construction, snapshots). Never
	// called on the per-query hot path.
	Logger *Logger

	// Metrics receives operational metrics.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration options for a Mapper.
// The perceptual Lab converter is the default because palette matching is
// almost always judged by eye.
var DefaultOptions = Options{
	Converter: colorvec.NewLab(),
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return opts
}
