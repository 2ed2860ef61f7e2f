package gifdecoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseHeader_Scenario2 is spec.md §8 scenario 2.
func TestParseHeader_Scenario2(t *testing.T) {
	h, err := parseHeader(newCursor([]byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}))
	require.NoError(t, err)
	assert.Equal(t, HeaderGIF89a, h)

	h, err = parseHeader(newCursor([]byte{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}))
	require.NoError(t, err)
	assert.Equal(t, HeaderGIF87a, h)

	_, err = parseHeader(newCursor([]byte{0x47, 0x49, 0x46, 0x38, 0x38, 0x61}))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	var magic *InvalidMagicError
	require.ErrorAs(t, pe.Kind, &magic)
}

// TestParseLSD_Scenario3 is spec.md §8 scenario 3.
func TestParseLSD_Scenario3(t *testing.T) {
	lsd, err := parseLSD(newCursor([]byte{0x0a, 0x00, 0x0a, 0x00, 0x91, 0x02, 0x03}))
	require.NoError(t, err)
	assert.Equal(t, &LogicalScreenDescriptor{
		Width: 10, Height: 10,
		GlobalColorTableFlag: true,
		ColorResolution:      1,
		SortFlag:              false,
		GlobalColorTableSize:  1,
		BackgroundColorIndex:  2,
		PixelAspectRatio:      3,
	}, lsd)
}

// TestParseLSD_P6 checks property P6: parsing then re-serializing the packed
// byte yields the original byte, across every packed-field combination.
func TestParseLSD_P6(t *testing.T) {
	for b := 0; b < 256; b++ {
		packed := parseLSDPacked(byte(b))
		var reserialized byte
		if packed.globalColorTableFlag {
			reserialized |= 0x80
		}
		reserialized |= (packed.colorResolution & 0x07) << 4
		if packed.sortFlag {
			reserialized |= 0x08
		}
		reserialized |= packed.globalColorTableSize & 0x07
		assert.Equal(t, byte(b), reserialized)
	}
}

// TestReadPalette_Scenario4 is spec.md §8 scenario 4.
func TestReadPalette_Scenario4(t *testing.T) {
	c := newCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00})
	pal, err := readPalette(c, colorTableLength(1))
	require.NoError(t, err)
	assert.Equal(t, Palette{
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 0, G: 0, B: 0},
	}, pal)
}

// TestParseGCE_Scenario5 is spec.md §8 scenario 5. The spec's multi-byte
// fields are little-endian (§4.4), so the delay bytes 00 09 combine to
// 0x0900, not 0x0009.
func TestParseGCE_Scenario5(t *testing.T) {
	c := newCursor([]byte{0x04, 0x00, 0x00, 0x09, 0x05, 0x00})
	ext, err := parseGCE(c, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, ExtensionKindGraphicControl, ext.Kind)
	gce := ext.GraphicControl
	assert.Equal(t, DisposalNone, gce.Disposal)
	assert.False(t, gce.UserInputFlag)
	assert.False(t, gce.TransparentFlag)
	assert.Equal(t, uint16(0x0900), gce.DelayTime)
	assert.Equal(t, uint8(5), gce.TransparentColorIndex)
}

func TestParseGCE_BadSize(t *testing.T) {
	c := newCursor([]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00})
	_, err := parseGCE(c, ParseOptions{})
	require.Error(t, err)
}

func TestParseGCE_ReservedDisposal(t *testing.T) {
	// disposal bits (b>>2)&0x07 == 5, a reserved value.
	packed := byte(5 << 2)
	c := newCursor([]byte{0x04, packed, 0x00, 0x00, 0x00, 0x00})
	ext, err := parseGCE(c, ParseOptions{Strict: false})
	require.NoError(t, err)
	assert.Equal(t, DisposalNone, ext.GraphicControl.Disposal)

	c = newCursor([]byte{0x04, packed, 0x00, 0x00, 0x00, 0x00})
	_, err = parseGCE(c, ParseOptions{Strict: true})
	require.Error(t, err)
	var invalid *InvalidDisposalMethodError
	require.ErrorAs(t, err, &invalid)
}

func TestCursor_Truncation(t *testing.T) {
	c := newCursor([]byte{0x01})
	_, err := c.u16le()
	require.ErrorIs(t, err, Truncated)

	c = newCursor(nil)
	_, err = c.u8()
	require.ErrorIs(t, err, Truncated)

	c = newCursor([]byte{0x01, 0x02})
	_, err = c.take(3)
	require.ErrorIs(t, err, Truncated)
}

func TestColorTableLength(t *testing.T) {
	assert.Equal(t, 2, colorTableLength(0))
	assert.Equal(t, 4, colorTableLength(1))
	assert.Equal(t, 256, colorTableLength(7))
}
