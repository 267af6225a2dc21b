package wld_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	wld "github.com/p0lyh3dron/wldgo"
)

func TestChestsRoundTrip(t *testing.T) {
	chests := []wld.Chest{
		{X: 10, Y: 20, Name: "Iron Chest"},
	}
	chests[0].Items[0] = wld.Item{Stack: 5, ID: 1, Prefix: 0}
	chests[0].Items[39] = wld.Item{Stack: 1, ID: 99, Prefix: 2}

	c := wld.NewWriteCursor()
	wld.WriteChests(c, chests)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseChests(r)
	require.NoError(t, err)
	require.Equal(t, chests, got)
	require.Equal(t, c.Len(), r.Pos())
}

func TestChestsEmptySlotsSkipped(t *testing.T) {
	chests := []wld.Chest{{X: 1, Y: 1, Name: "Empty"}}

	c := wld.NewWriteCursor()
	wld.WriteChests(c, chests)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseChests(r)
	require.NoError(t, err)
	for _, item := range got[0].Items {
		require.Equal(t, int16(0), item.Stack)
	}
}

func TestSignsRoundTrip(t *testing.T) {
	signs := []wld.Sign{
		{Text: "Welcome", X: 1, Y: 2},
		{Text: "", X: 5, Y: 6},
	}

	c := wld.NewWriteCursor()
	wld.WriteSigns(c, signs)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseSigns(r)
	require.NoError(t, err)
	require.Equal(t, signs, got)
}

func TestNPCsRoundTripWithShimmerAndPets(t *testing.T) {
	shimmered := []int32{5, 9}
	npcs := []wld.NPC{
		{ID: 17, Name: "Guide", X: 100.5, Y: 200.5, Homeless: true, HomeX: 1, HomeY: 2, Variation: 0},
		{IsPet: true, ID: 3, X: 50, Y: 60},
	}

	c := wld.NewWriteCursor()
	wld.WriteNPCs(c, 279, shimmered, npcs)

	r := wld.NewReadCursor(c.Bytes())
	gotShimmered, gotNpcs, err := wld.ParseNPCs(r, 279)
	require.NoError(t, err)
	require.Equal(t, shimmered, gotShimmered)
	require.Equal(t, c.Len(), r.Pos())

	require.Len(t, gotNpcs, 2)
	if diff := cmp.Diff(npcs, gotNpcs, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("npc round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNPCsPreShimmerVersionOmitsTable(t *testing.T) {
	npcs := []wld.NPC{{ID: 1, Name: "Nurse", X: 1, Y: 1}}

	c := wld.NewWriteCursor()
	wld.WriteNPCs(c, 200, nil, npcs)

	r := wld.NewReadCursor(c.Bytes())
	shimmered, got, err := wld.ParseNPCs(r, 200)
	require.NoError(t, err)
	require.Nil(t, shimmered)
	require.Len(t, got, 1)
}

func TestTileEntitiesRoundTrip(t *testing.T) {
	ents := []wld.TileEntity{
		{Kind: 0, Inner: 5, X: 10, Y: 20},
		{Kind: 3, Inner: -1, X: -5, Y: 7},
	}

	c := wld.NewWriteCursor()
	wld.WriteTileEntities(c, ents)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseTileEntities(r)
	require.NoError(t, err)
	require.Equal(t, ents, got)
}

func TestPressurePlatesRoundTrip(t *testing.T) {
	plates := []wld.PressurePlate{{X: 12, Y: 34}, {X: -1, Y: -2}}

	c := wld.NewWriteCursor()
	wld.WritePressurePlates(c, 279, plates)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParsePressurePlates(r, 279)
	require.NoError(t, err)
	require.Equal(t, plates, got)
}

func TestTownElementsRoundTrip(t *testing.T) {
	elems := []wld.TownElement{{ID: 1, X: 2, Y: 3}}

	c := wld.NewWriteCursor()
	wld.WriteTownElements(c, elems)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseTownElements(r)
	require.NoError(t, err)
	require.Equal(t, elems, got)
}

func TestBestiaryRoundTrip(t *testing.T) {
	b := &wld.Bestiary{
		Kills:    []wld.Kill{{Name: "Zombie", Val: 10}},
		Trackers: []string{"Slime"},
		Chatters: []string{"Guide"},
	}

	c := wld.NewWriteCursor()
	wld.WriteBestiary(c, b)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseBestiary(r)
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestCreativePowersPreservedByteForByte(t *testing.T) {
	blob := []byte{0x01, 0x02, 0x03, 0x04}

	c := wld.NewWriteCursor()
	wld.WriteCreativePowers(c, blob)

	r := wld.NewReadCursor(c.Bytes())
	got, err := wld.ParseCreativePowers(r, c.Len())
	require.NoError(t, err)
	require.Equal(t, blob, got)
}

func TestCreativePowersOverrun(t *testing.T) {
	r := wld.NewReadCursor([]byte{0x01})
	r.Seek(1)
	_, err := wld.ParseCreativePowers(r, 0)
	require.Error(t, err)

	var ce *wld.CodecError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, wld.SectionOverrun, ce.Kind)
}
