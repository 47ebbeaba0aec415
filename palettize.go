package palettize

import (
	"encoding/binary"
	"image/color"
	"slices"
	"time"

	"github.com/hupe1980/palettize/colorvec"
	"github.com/hupe1980/palettize/distance"
	"github.com/hupe1980/palettize/internal/cache"
	"github.com/hupe1980/palettize/internal/hash"
)

// Mapper resolves arbitrary colors to their nearest palette entry.
//
// A Mapper is built once per quantization session: construction converts
// every palette entry into its vector form in a single batch, and every
// subsequent Resolve either answers from the memo or performs one linear
// scan over the precomputed vectors. The palette and the vector cache are
// immutable after construction; the memo is the only mutable state and is
// safe for concurrent use, so a single Mapper can serve parallel pixel
// workers.
type Mapper struct {
	palette color.Palette // Read-only after construction
	vectors [][]float32   // One vector per palette entry, index-aligned
	conv    colorvec.Converter
	memo    *cache.Memo
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Mapper for the given palette.
// The palette must be non-empty; its order is part of the mapping contract
// (ties resolve to the lowest index) and is preserved exactly.
func New(palette color.Palette, optFns ...func(o *Options)) (*Mapper, error) {
	opts := applyOptions(optFns)

	if len(palette) == 0 {
		opts.Logger.LogBuild(0, ErrEmptyPalette)
		return nil, ErrEmptyPalette
	}
	if opts.Converter == nil {
		opts.Logger.LogBuild(len(palette), ErrNilConverter)
		return nil, ErrNilConverter
	}

	start := time.Now()

	// Copy the slice header so a caller reusing its palette slice cannot
	// reorder the mapping underneath us.
	pal := slices.Clone(palette)

	m := &Mapper{
		palette: pal,
		vectors: opts.Converter.ConvertBatch(pal),
		conv:    opts.Converter,
		memo:    cache.NewMemo(),
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}

	duration := time.Since(start)
	m.metrics.RecordBuild(len(pal), duration, nil)
	m.logger.LogBuild(len(pal), nil)

	return m, nil
}

// Palette returns the ordered palette this mapper was built from.
// Callers must treat the returned slice as read-only.
func (m *Mapper) Palette() color.Palette {
	return m.palette
}

// Resolve returns the palette index nearest to c under the converter's
// vector space, together with the palette entry at that index.
//
// Repeated queries for the same color are answered from the memo without a
// scan. On a miss the vectors are scanned in palette order keeping the
// smallest squared distance; a later entry at equal distance never replaces
// an earlier one, and an exact match (distance zero) ends the scan early.
// Safe for concurrent use.
func (m *Mapper) Resolve(c color.Color) (int, color.Color) {
	key := memoKey(c)

	if idx, ok := m.memo.Get(key); ok {
		m.metrics.RecordResolve(true)
		return idx, m.palette[idx]
	}

	q := m.conv.Convert(c)

	best := 0
	bestDist := distance.SquaredL2(q, m.vectors[0])
	for i := 1; i < len(m.vectors) && bestDist > 0; i++ {
		if d := distance.SquaredL2(q, m.vectors[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}

	// Racing writers for the same key always computed the same index, so
	// last-write-wins is safe; at worst the scan ran twice.
	m.memo.Set(key, best)
	m.metrics.RecordResolve(false)

	return best, m.palette[best]
}

// Equal reports whether both mappers were built from the same palette:
// same colors, same order. Memo contents are excluded, so two mappers that
// have resolved different queries still compare equal.
func (m *Mapper) Equal(other *Mapper) bool {
	if m == other {
		return true
	}
	if other == nil {
		return false
	}
	if len(m.palette) != len(other.palette) {
		return false
	}
	for i, c := range m.palette {
		if memoKey(c) != memoKey(other.palette[i]) {
			return false
		}
	}
	return true
}

// Hash returns a checksum of the palette content. It is derived from the
// palette's channel values, never from the identity of internal storage, so
// Equal mappers always hash identically.
func (m *Mapper) Hash() uint32 {
	h := hash.NewCRC32C()

	var buf [8]byte
	for _, c := range m.palette {
		binary.BigEndian.PutUint64(buf[:], memoKey(c))
		_, _ = h.Write(buf[:])
	}

	return h.Sum32()
}

// MemoLen returns the number of distinct colors resolved so far.
// The memo is never evicted; create a new Mapper to reclaim its memory.
func (m *Mapper) MemoLen() int {
	return m.memo.Len()
}

// MemoStats returns the memo hit/miss counters.
func (m *Mapper) MemoStats() (hits, misses int64) {
	return m.memo.Stats()
}

// memoKey packs the 16-bit RGBA channels of c into a single uint64.
// Two colors with identical channel values share a memo entry, which is
// exactly the granularity the converters observe.
func memoKey(c color.Color) uint64 {
	r, g, b, a := c.RGBA()
	return uint64(r)<<48 | uint64(g)<<32 | uint64(b)<<16 | uint64(a)
}
