package wld_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	wld "github.com/p0lyh3dron/wldgo"
)

func sampleInfoHeader() *wld.InfoHeader {
	h := &wld.InfoHeader{
		Version:     279,
		WorldType:   1,
		Revisions:   4,
		Favorite:    0,
		NumSections: 3,
		Sections:    []int32{100, 200, 300},
		TileMask:    10,
		Uvs:         []byte{0b00000100, 0b00000000},
	}
	copy(h.Sig[:], []byte("relogic"))
	return h
}

func TestInfoHeaderRoundTrip(t *testing.T) {
	h := sampleInfoHeader()

	c := wld.NewWriteCursor()
	wld.WriteInfoHeader(c, h)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseInfoHeader(r)
	require.NoError(t, err)

	require.Equal(t, h.Version, got.Version)
	require.Equal(t, h.Sig, got.Sig)
	require.Equal(t, h.WorldType, got.WorldType)
	require.Equal(t, h.Revisions, got.Revisions)
	require.Equal(t, h.Favorite, got.Favorite)
	require.Equal(t, h.Sections, got.Sections)
	require.Equal(t, h.TileMask, got.TileMask)
	require.Equal(t, h.Uvs, got.Uvs)
	require.Equal(t, c.Len(), r.Pos())
}

func TestInfoHeaderUvsSizing(t *testing.T) {
	h := sampleInfoHeader()
	h.TileMask = 17 // ceil(17/8) == 3
	h.Uvs = []byte{0, 0, 0}

	c := wld.NewWriteCursor()
	wld.WriteInfoHeader(c, h)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseInfoHeader(r)
	require.NoError(t, err)
	require.Len(t, got.Uvs, 3)
}

func TestImportantBitLookup(t *testing.T) {
	h := sampleInfoHeader()
	h.Uvs = []byte{0b00000100}

	for id := int32(0); id < 8; id++ {
		want := id == 2
		require.Equal(t, want, h.Important(id), "id=%d", id)
	}
}

func TestImportantOutOfRangeIsFalse(t *testing.T) {
	h := sampleInfoHeader()
	h.Uvs = []byte{0xFF}
	require.False(t, h.Important(100))
	require.False(t, h.Important(-1))
}
