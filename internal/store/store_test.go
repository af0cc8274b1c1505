package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatches.db")

	w, err := NewWriter(path, Metadata{Name: "test", Version: "1"})
	require.NoError(t, err)

	entry := Entry{
		Pattern:   "wood",
		Seed:      12345,
		Frame:     0,
		Width:     64,
		Height:    64,
		Scale:     4,
		Variation: 0.3,
		PNG:       []byte{0x89, 'P', 'N', 'G', 1, 2, 3},
	}
	require.NoError(t, w.Write(entry))
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Read("wood", 12345, 0)
	require.NoError(t, err)
	require.Equal(t, entry, got)

	meta, err := r.Metadata()
	require.NoError(t, err)
	require.Equal(t, "test", meta.Name)
	require.Equal(t, "1", meta.Version)
}

func TestReadMissingSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatches.db")
	w, err := NewWriter(path, Metadata{})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Read("stone", 1, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestWriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatches.db")
	w, err := NewWriter(path, Metadata{})
	require.NoError(t, err)

	first := Entry{Pattern: "water", Seed: 7, Frame: 2, Width: 8, Height: 8, Scale: 2, PNG: []byte{1}}
	second := first
	second.PNG = []byte{2}

	require.NoError(t, w.Write(first))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Write(second))
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Read("water", 7, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{2}, got.PNG)
}

func TestList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatches.db")
	w, err := NewWriter(path, Metadata{})
	require.NoError(t, err)

	for _, pattern := range []string{"stone", "laterite", "wood"} {
		require.NoError(t, w.Write(Entry{Pattern: pattern, Seed: 1, Width: 4, Height: 4, Scale: 1, PNG: []byte{0}}))
	}
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	entries, err := r.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "laterite", entries[0].Pattern)
	require.Equal(t, "stone", entries[1].Pattern)
	require.Equal(t, "wood", entries[2].Pattern)
}

func TestOpenReaderMissingSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	// Opening a nonexistent or schemaless file must fail rather than
	// returning a reader over nothing.
	_, err := OpenReader(path)
	require.Error(t, err)
}
