package wld_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	wld "github.com/p0lyh3dron/wldgo"
)

func TestPaletteColorKnownAndFallback(t *testing.T) {
	require.Equal(t, uint32(0x976b4b), wld.PaletteColor(0))
	require.Equal(t, uint32(0x32cd32), wld.PaletteColor(2))
	require.Equal(t, wld.PaletteColor(0), wld.PaletteColor(12345), "unmapped ids fall back to dirt")
}
