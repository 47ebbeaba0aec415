package palettize

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/palettize/testutil"
)

func TestSnapshotRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(3)
	pal := rng.Palette(32)
	queries := rng.Colors(100)

	orig, err := New(pal)
	require.NoError(t, err)

	// Populate the memo; it must not leak into the snapshot.
	for _, q := range queries {
		orig.Resolve(q)
	}

	var buf bytes.Buffer
	require.NoError(t, orig.SaveToWriter(&buf))

	loaded, err := NewFromReader(&buf)
	require.NoError(t, err)

	assert.True(t, orig.Equal(loaded))
	assert.Equal(t, orig.Hash(), loaded.Hash())
	assert.Equal(t, 0, loaded.MemoLen())

	for _, q := range queries {
		wantIdx, _ := orig.Resolve(q)
		gotIdx, _ := loaded.Resolve(q)
		require.Equal(t, wantIdx, gotIdx)
	}
}

func TestSnapshotFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "palette.snapshot")

	orig, err := New(testutil.NewRNG(5).Palette(16))
	require.NoError(t, err)
	require.NoError(t, orig.SaveToFile(filename))

	loaded, err := NewFromFile(filename)
	require.NoError(t, err)
	assert.True(t, orig.Equal(loaded))
}

func TestSnapshotInvalid(t *testing.T) {
	t.Run("BadMagic", func(t *testing.T) {
		_, err := NewFromReader(bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 1}))

		var snapErr *ErrInvalidSnapshot
		require.ErrorAs(t, err, &snapErr)
		assert.Contains(t, snapErr.Reason, "magic")
	})

	t.Run("BadVersion", func(t *testing.T) {
		_, err := NewFromReader(bytes.NewReader([]byte{0x50, 0x41, 0x4C, 0x5A, 0, 0, 0, 99}))

		var snapErr *ErrInvalidSnapshot
		require.ErrorAs(t, err, &snapErr)
		assert.Contains(t, snapErr.Reason, "version")
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := NewFromReader(bytes.NewReader([]byte{0x50}))

		var snapErr *ErrInvalidSnapshot
		assert.ErrorAs(t, err, &snapErr)
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		orig, err := New(testutil.NewRNG(9).Palette(8))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, orig.SaveToWriter(&buf))

		data := buf.Bytes()
		_, err = NewFromReader(bytes.NewReader(data[:len(data)/2]))

		var snapErr *ErrInvalidSnapshot
		assert.ErrorAs(t, err, &snapErr)
	})

	t.Run("NilConverter", func(t *testing.T) {
		_, err := NewFromReader(bytes.NewReader(nil), func(o *Options) {
			o.Converter = nil
		})
		assert.ErrorIs(t, err, ErrNilConverter)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.snapshot"))
		assert.Error(t, err)
	})
}
