package gifdecoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singlePixelLZW builds a minimal Clear/index/EOI LZW stream for a 1x1 image
// with minCodeSize 2, wrapped as one length-prefixed sub-block.
func singlePixelLZW(t *testing.T, index uint8) []byte {
	t.Helper()
	w := uint8(3) // minCodeSize(2)+1
	bw := newTestBitWriter()
	bw.write(4, w)            // Clear
	bw.write(uint16(index), w) // singleton data
	bw.write(5, w)             // EOI
	payload := bw.bytes()
	require.LessOrEqual(t, len(payload), 255)

	out := []byte{byte(len(payload))}
	out = append(out, payload...)
	out = append(out, 0x00) // terminator
	return out
}

func minimalGIF(t *testing.T, index uint8) []byte {
	t.Helper()
	var b []byte
	b = append(b, []byte("GIF89a")...)
	b = append(b, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00) // LSD: 1x1, no GCT
	b = append(b, 0x2C)                                     // image separator
	b = append(b, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00)
	b = append(b, 0x02) // minCodeSize
	b = append(b, singlePixelLZW(t, index)...)
	b = append(b, 0x3B) // trailer
	return b
}

func TestDecode_MinimalSinglePixelGIF(t *testing.T) {
	g, err := Decode(minimalGIF(t, 0))
	require.NoError(t, err)
	assert.Equal(t, HeaderGIF89a, g.Header)
	assert.Equal(t, uint16(1), g.LogicalScreenDescriptor.Width)
	assert.Equal(t, uint16(1), g.LogicalScreenDescriptor.Height)
	require.Len(t, g.Frames, 1)
	assert.Equal(t, []byte{0}, g.Frames[0].Indices)
	assert.Nil(t, g.Frames[0].LocalPalette)
	assert.Nil(t, g.GlobalPalette)
}

func TestDecode_InvalidMagic(t *testing.T) {
	data := append([]byte("GIF88a"), 0x3B)
	_, err := Decode(data)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.Offset)
}

func TestDecode_UnexpectedTagByte(t *testing.T) {
	var b []byte
	b = append(b, []byte("GIF89a")...)
	b = append(b, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00)
	b = append(b, 0x99) // not 0x21/0x2C/0x3B
	_, err := Decode(b)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	var ube *UnexpectedByteError
	require.ErrorAs(t, pe.Kind, &ube)
}

func TestDecode_TruncatedHeader(t *testing.T) {
	_, err := Decode([]byte("GIF8"))
	require.Error(t, err)
	require.ErrorIs(t, err, Truncated)
}

func TestDecode_CommentAndApplicationExtensions(t *testing.T) {
	var b []byte
	b = append(b, []byte("GIF89a")...)
	b = append(b, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00)

	// Comment extension: "hi"
	b = append(b, 0x21, 0xFE, 0x02, 'h', 'i', 0x00)

	// Application extension: NETSCAPE2.0 loop forever (0).
	b = append(b, 0x21, 0xFF, 0x0B)
	b = append(b, []byte("NETSCAPE2.0")...)
	b = append(b, 0x03, 0x01, 0x00, 0x00, 0x00)

	// One frame.
	b = append(b, 0x2C)
	b = append(b, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00)
	b = append(b, 0x02)
	b = append(b, singlePixelLZW(t, 0)...)

	b = append(b, 0x3B)

	g, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, g.Comments, 1)
	assert.Equal(t, "hi", g.Comments[0])
	require.Len(t, g.ApplicationExtensions, 1)
	assert.Equal(t, "NETSCAPE", g.ApplicationExtensions[0].Identifier)
	assert.Equal(t, "2.0", g.ApplicationExtensions[0].AuthenticationCode)
	require.NotNil(t, g.LoopCount)
	assert.Equal(t, 0, *g.LoopCount)
	require.Len(t, g.Frames, 1)
	assert.Len(t, g.Frames[0].Extensions, 2)
}

func TestDecode_FrameWithGCE(t *testing.T) {
	var b []byte
	b = append(b, []byte("GIF89a")...)
	b = append(b, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00)
	b = append(b, 0x21, 0xF9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00) // transparent idx 0
	b = append(b, 0x2C)
	b = append(b, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00)
	b = append(b, 0x02)
	b = append(b, singlePixelLZW(t, 0)...)
	b = append(b, 0x3B)

	g, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, g.Frames, 1)
	require.NotNil(t, g.Frames[0].GraphicControl)
	assert.True(t, g.Frames[0].GraphicControl.TransparentFlag)
	assert.Equal(t, uint8(0), g.Frames[0].GraphicControl.TransparentColorIndex)
}
