package wld_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	wld "github.com/p0lyh3dron/wldgo"
)

func baseHeader(version uint32) *wld.Header {
	return &wld.Header{
		Version: version,
		Name:    "Test World",
		Seed:    "12345",
		ID:      42,
		Width:   100,
		Height:  100,
	}
}

func TestHeaderRoundTripModernVersion(t *testing.T) {
	h := baseHeader(279)
	h.GameMode = 1
	h.Drunk = true
	h.Hardmode = true
	h.PlayerNames = []string{"Alice", "Bob"}
	h.KillCounts = []int32{1, 2, 3}
	h.MoondialActive = true

	c := wld.NewWriteCursor()
	wld.WriteHeader(c, h)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseHeader(r, h.Version)
	require.NoError(t, err)
	require.Equal(t, c.Len(), r.Pos(), "parse should consume exactly what write emitted")

	if diff := cmp.Diff(h, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("header round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderVersionGateOmitsLaterField(t *testing.T) {
	// v244 predates the v249 `remix` gate entirely.
	h := baseHeader(244)
	h.Remix = true // set on the in-memory struct; WriteHeader must not emit it

	c := wld.NewWriteCursor()
	wld.WriteHeader(c, h)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseHeader(r, 244)
	require.NoError(t, err)
	require.False(t, got.Remix, "remix must not round-trip on a version that predates it")
	require.Equal(t, c.Len(), r.Pos())
}

func TestHeaderZenithDerivedWhenAbsent(t *testing.T) {
	// v266 carries both drunk (>=222) and remix (>=249) but not zenith (>=267).
	h := baseHeader(266)
	h.Drunk = true
	h.Remix = true

	c := wld.NewWriteCursor()
	wld.WriteHeader(c, h)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseHeader(r, 266)
	require.NoError(t, err)
	require.True(t, got.Zenith, "zenith should be derived from drunk && remix when absent from the wire format")
}

func TestHeaderOldVersionGamemodeByte(t *testing.T) {
	// v150 is in [112, 209): gamemode is a single byte, not i32, and there
	// is no master-byte peek (that's only [208, 209)).
	h := baseHeader(150)
	h.GameMode = 1

	c := wld.NewWriteCursor()
	wld.WriteHeader(c, h)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseHeader(r, 150)
	require.NoError(t, err)
	require.Equal(t, int32(1), got.GameMode)
	require.Equal(t, c.Len(), r.Pos())
}

func TestHeaderGameModeHelpers(t *testing.T) {
	h := &wld.Header{GameMode: 0}
	require.False(t, h.IsExpert())
	h.GameMode = 1
	require.True(t, h.IsExpert())
	require.False(t, h.IsMaster())
	h.GameMode = 2
	require.True(t, h.IsExpert())
	require.True(t, h.IsMaster())
	h.GameMode = 3
	require.True(t, h.IsJourney())
}

func TestHeaderPreGuidVersionOmitsGuid(t *testing.T) {
	h := baseHeader(170) // < 181, no guid, < 179 no seed/generatorVer
	c := wld.NewWriteCursor()
	wld.WriteHeader(c, h)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseHeader(r, 170)
	require.NoError(t, err)
	require.Equal(t, [16]byte{}, got.Guid)
	require.Equal(t, "", got.Seed)
	require.Equal(t, c.Len(), r.Pos())
}
