package palettize

import (
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/palettize/colorvec"
	"github.com/hupe1980/palettize/internal/cache"
)

const (
	// snapshotMagic identifies palettize snapshot streams ("PALZ").
	snapshotMagic = 0x50414C5A

	snapshotVersion = 1
)

// snapshotPayload is the gob-encoded body of a snapshot.
// Colors holds the 16-bit RGBA channel values of each palette entry in
// palette order; Vectors is the matching precomputed vector cache.
type snapshotPayload struct {
	Colors  [][4]uint32
	Vectors [][]float32
}

// SaveToWriter writes the mapper's palette and vector cache to w as a
// zstd-compressed snapshot. The memo is deliberately not persisted: it is a
// pure cache and is rebuilt on demand after loading.
func (m *Mapper) SaveToWriter(w io.Writer) error {
	start := time.Now()
	err := m.saveToWriter(w)
	m.metrics.RecordSnapshotSave(time.Since(start), err)
	return err
}

func (m *Mapper) saveToWriter(w io.Writer) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], snapshotMagic)
	binary.BigEndian.PutUint32(hdr[4:], snapshotVersion)

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("palettize: failed to write snapshot header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("palettize: failed to create compressor: %w", err)
	}

	payload := snapshotPayload{
		Colors:  make([][4]uint32, len(m.palette)),
		Vectors: m.vectors,
	}
	for i, c := range m.palette {
		r, g, b, a := c.RGBA()
		payload.Colors[i] = [4]uint32{r, g, b, a}
	}

	if err := gob.NewEncoder(enc).Encode(payload); err != nil {
		_ = enc.Close()
		return fmt.Errorf("palettize: failed to encode snapshot: %w", err)
	}

	return enc.Close()
}

// SaveToFile saves the mapper to a file. See SaveToWriter.
func (m *Mapper) SaveToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		m.logger.LogSnapshotSave(filename, err)
		return err
	}

	if err := m.SaveToWriter(f); err != nil {
		_ = f.Close()
		m.logger.LogSnapshotSave(filename, err)
		return err
	}

	err = f.Close()
	m.logger.LogSnapshotSave(filename, err)
	return err
}

// NewFromReader restores a Mapper from a snapshot stream.
//
// The vector cache is taken from the snapshot, so the palette is not
// reconverted; the configured converter is still used for queried colors and
// must therefore be the same conversion the snapshot was built with, or
// resolved indices will be meaningless. The restored mapper starts with an
// empty memo.
func NewFromReader(r io.Reader, optFns ...func(o *Options)) (*Mapper, error) {
	opts := applyOptions(optFns)

	start := time.Now()
	m, err := newFromReader(r, opts)
	opts.Metrics.RecordSnapshotLoad(time.Since(start), err)

	return m, err
}

func newFromReader(r io.Reader, opts Options) (*Mapper, error) {
	if opts.Converter == nil {
		return nil, ErrNilConverter
	}

	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, &ErrInvalidSnapshot{Reason: "header too short", cause: err}
	}

	if magic := binary.BigEndian.Uint32(hdr[:4]); magic != snapshotMagic {
		return nil, &ErrInvalidSnapshot{Reason: fmt.Sprintf("bad magic number 0x%08x", magic)}
	}
	if version := binary.BigEndian.Uint32(hdr[4:]); version != snapshotVersion {
		return nil, &ErrInvalidSnapshot{Reason: fmt.Sprintf("unsupported version %d", version)}
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, &ErrInvalidSnapshot{Reason: "failed to create decompressor", cause: err}
	}
	defer dec.Close()

	var payload snapshotPayload
	if err := gob.NewDecoder(dec).Decode(&payload); err != nil {
		return nil, &ErrInvalidSnapshot{Reason: "failed to decode payload", cause: err}
	}

	if len(payload.Colors) == 0 {
		return nil, ErrEmptyPalette
	}
	if len(payload.Vectors) != len(payload.Colors) {
		return nil, &ErrInvalidSnapshot{
			Reason: fmt.Sprintf("vector count %d does not match palette size %d", len(payload.Vectors), len(payload.Colors)),
		}
	}
	for i, v := range payload.Vectors {
		if len(v) != colorvec.Dim {
			return nil, &ErrInvalidSnapshot{
				Reason: fmt.Sprintf("vector %d has %d components, want %d", i, len(v), colorvec.Dim),
			}
		}
	}

	palette := make(color.Palette, len(payload.Colors))
	for i, ch := range payload.Colors {
		palette[i] = color.RGBA64{
			R: uint16(ch[0]),
			G: uint16(ch[1]),
			B: uint16(ch[2]),
			A: uint16(ch[3]),
		}
	}

	return &Mapper{
		palette: palette,
		vectors: payload.Vectors,
		conv:    opts.Converter,
		memo:    cache.NewMemo(),
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}, nil
}

// NewFromFile restores a Mapper from a snapshot file. See NewFromReader.
func NewFromFile(filename string, optFns ...func(o *Options)) (*Mapper, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := NewFromReader(f, optFns...)
	if err != nil {
		applyOptions(optFns).Logger.LogSnapshotLoad(filename, 0, err)
		return nil, err
	}

	m.logger.LogSnapshotLoad(filename, len(m.palette), nil)
	return m, nil
}
