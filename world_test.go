package wld_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	wld "github.com/p0lyh3dron/wldgo"
)

func TestNewAndWriteThenOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.wld")

	w, err := wld.New(20, 15, "Test World", "")
	require.NoError(t, err)
	require.NoError(t, w.Write(path))

	reopened, err := wld.Open(path, wld.WithAllowedVersions(279))
	require.NoError(t, err)

	require.Equal(t, "Test World", reopened.Header.Name)
	require.Equal(t, int32(20), reopened.Header.Width)
	require.Equal(t, int32(15), reopened.Header.Height)
	require.Equal(t, int32(20), reopened.Tiles.Width)
	require.Equal(t, int32(15), reopened.Tiles.Height)
}

func TestTileGridCompletenessAfterOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.wld")

	w, err := wld.New(7, 9, "Grid World", "42")
	require.NoError(t, err)
	require.NoError(t, w.Write(path))

	reopened, err := wld.Open(path, wld.WithAllowedVersions(279))
	require.NoError(t, err)

	count := 0
	for x := int32(0); x < reopened.Tiles.Width; x++ {
		for y := int32(0); y < reopened.Tiles.Height; y++ {
			_ = reopened.Tiles.At(x, y)
			count++
		}
	}
	require.Equal(t, 7*9, count)
}

func TestOpenWriteRoundTripIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.wld")
	second := filepath.Join(dir, "second.wld")

	w, err := wld.New(12, 8, "Copy World", "123")
	require.NoError(t, err)
	w.Chests = append(w.Chests, wld.Chest{X: 1, Y: 1, Name: "Box"})
	w.Signs = append(w.Signs, wld.Sign{Text: "Hi", X: 2, Y: 2})
	require.NoError(t, w.Write(first))

	reopened, err := wld.Open(first, wld.WithAllowedVersions(279))
	require.NoError(t, err)
	require.NoError(t, reopened.Write(second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, a, b, "an unmodified open-then-write cycle must not grow or alter the file")
}

func TestCreativePowersDoesNotAbsorbFooter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.wld")

	w, err := wld.New(4, 4, "Footer Check", "5")
	require.NoError(t, err)
	require.NoError(t, w.Write(path))

	reopened, err := wld.Open(path, wld.WithAllowedVersions(279))
	require.NoError(t, err)

	c, err := wld.OpenCursor(path)
	require.NoError(t, err)
	info, err := wld.ParseInfoHeader(c)
	require.NoError(t, err)

	require.Equal(t, int(info.Sections[10])-int(info.Sections[9]), len(reopened.CreativePowers),
		"CreativePowers must stop at sections[10], not absorb the trailing footer")
}

func TestWriteRecomputesSectionOffsets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.wld")

	w, err := wld.New(5, 5, "Offsets", "7")
	require.NoError(t, err)
	w.Chests = append(w.Chests, wld.Chest{X: 1, Y: 1, Name: "Box"})
	w.Signs = append(w.Signs, wld.Sign{Text: "Hi", X: 2, Y: 2})
	require.NoError(t, w.Write(path))

	c, err := wld.OpenCursor(path)
	require.NoError(t, err)
	info, err := wld.ParseInfoHeader(c)
	require.NoError(t, err)

	require.Equal(t, c.Pos(), int(info.Sections[0]))
	for i := 1; i < len(info.Sections); i++ {
		require.Greater(t, info.Sections[i], info.Sections[i-1], "section offsets must be strictly increasing")
	}
}

func TestMutationRoundTripsThroughWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.wld")

	w, err := wld.New(4, 4, "Mutated", "99")
	require.NoError(t, err)

	for x := int32(0); x < w.Tiles.Width; x++ {
		for y := int32(0); y < w.Tiles.Height; y++ {
			tile := w.Tiles.At(x, y)
			tile.Tile = 54
			tile.LiquidType = wld.LiquidLava
			tile.LiquidAmt = 200
			w.Tiles.Set(x, y, tile)
		}
	}

	require.NoError(t, w.Write(path))

	reopened, err := wld.Open(path, wld.WithAllowedVersions(279))
	require.NoError(t, err)

	for x := int32(0); x < reopened.Tiles.Width; x++ {
		for y := int32(0); y < reopened.Tiles.Height; y++ {
			tile := reopened.Tiles.At(x, y)
			require.Equal(t, int16(54), tile.Tile)
			require.Equal(t, wld.LiquidLava, tile.LiquidType)
			require.Equal(t, uint8(200), tile.LiquidAmt)
		}
	}
}

func TestOpenRejectsUnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.wld")

	w, err := wld.New(2, 2, "Unsupported", "1")
	require.NoError(t, err)
	w.Info.Version = 999
	w.Header.Version = 999
	require.NoError(t, w.Write(path))

	_, err = wld.Open(path)
	require.Error(t, err)

	var ce *wld.CodecError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, wld.UnsupportedVersion, ce.Kind)
}

func TestOpenWithAllowedVersionsExtendsAllowList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.wld")

	w, err := wld.New(2, 2, "Custom", "1")
	require.NoError(t, err)
	w.Info.Version = 1000
	w.Header.Version = 1000
	require.NoError(t, w.Write(path))

	_, err = wld.Open(path, wld.WithAllowedVersions(1000))
	require.NoError(t, err)
}

func TestNewWithGeneratorAppliesSeedModes(t *testing.T) {
	w, err := wld.New(4200, 1200, "Worthy World", "for the worthy",
		wld.WithGenerator(&wld.DefaultGenerator{}))
	require.NoError(t, err)
	require.True(t, w.Header.Ftw)
}

func TestNewWithGeneratorIsDeterministic(t *testing.T) {
	a, err := wld.New(4200, 1200, "Deterministic A", "a fixed seed",
		wld.WithGenerator(&wld.DefaultGenerator{}))
	require.NoError(t, err)
	b, err := wld.New(4200, 1200, "Deterministic B", "a fixed seed",
		wld.WithGenerator(&wld.DefaultGenerator{}))
	require.NoError(t, err)

	require.Equal(t, a.Header.CopperID, b.Header.CopperID)
	require.Equal(t, a.Header.IronID, b.Header.IronID)
	require.Equal(t, a.Header.SilverID, b.Header.SilverID)
	require.Equal(t, a.Header.GoldID, b.Header.GoldID)
	require.Equal(t, a.Header.ID, b.Header.ID)
	require.Equal(t, a.Header.TreeX, b.Header.TreeX)
	require.Equal(t, a.Header.CaveBackX, b.Header.CaveBackX)
}

func TestWorldCloseReturnsNoError(t *testing.T) {
	w, err := wld.New(2, 2, "Closeable", "1")
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
