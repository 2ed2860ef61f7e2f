package gifdecoder

// cursor is a forward-only byte reader over an immutable slice, the
// byte-field counterpart to bitReader. Every primitive here inverts one of
// the teacher's ByteArray write methods (WriteByte/WriteBytes/WriteUTFBytes,
// writeShort) into a bounds-checked read.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor { return &cursor{data: data} }

func (c *cursor) offset() int { return c.pos }

func (c *cursor) remaining() int { return len(c.data) - c.pos }

// u8 reads a single byte.
func (c *cursor) u8() (byte, error) {
	if c.remaining() < 1 {
		return 0, Truncated
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// u16le reads a little-endian 16-bit value (spec.md §6: "multi-byte
// integers are little-endian").
func (c *cursor) u16le() (uint16, error) {
	if c.remaining() < 2 {
		return 0, Truncated
	}
	v := uint16(c.data[c.pos]) | uint16(c.data[c.pos+1])<<8
	c.pos += 2
	return v, nil
}

// take returns the next n bytes without copying.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, Truncated
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// expectByte consumes one byte and requires it to equal want.
func (c *cursor) expectByte(want byte) error {
	pos := c.pos
	got, err := c.u8()
	if err != nil {
		return err
	}
	if got != want {
		return &UnexpectedByteError{Expected: want, Got: got, Pos: pos}
	}
	return nil
}

// expectTag consumes len(tag) bytes and requires them to match tag exactly.
func (c *cursor) expectTag(tag string) error {
	pos := c.pos
	got, err := c.take(len(tag))
	if err != nil {
		return err
	}
	if string(got) != tag {
		return newParseError(pos, &InvalidMagicError{Got: string(got)})
	}
	return nil
}

// Packed-field decomposition, spec.md §4.4: every packed byte is decomposed
// MSB-first into named sub-fields.

type lsdPackedFields struct {
	globalColorTableFlag bool
	colorResolution      uint8 // 3 bits, raw value (0..7)
	sortFlag             bool
	globalColorTableSize uint8 // 3 bits, raw exponent (table length = 2^(size+1))
}

// parseLSDPacked decomposes the Logical Screen Descriptor's packed byte:
// [GCT flag:1][color resolution:3][sort flag:1][GCT size:3].
func parseLSDPacked(b byte) lsdPackedFields {
	return lsdPackedFields{
		globalColorTableFlag: b&0x80 != 0,
		colorResolution:      (b >> 4) & 0x07,
		sortFlag:             b&0x08 != 0,
		globalColorTableSize: b & 0x07,
	}
}

type imageDescPackedFields struct {
	localColorTableFlag bool
	interlaceFlag       bool
	sortFlag            bool
	localColorTableSize uint8 // 3 bits, raw exponent
}

// parseImageDescPacked decomposes the Image Descriptor's packed byte:
// [LCT flag:1][interlace flag:1][sort flag:1][reserved:2][LCT size:3].
func parseImageDescPacked(b byte) imageDescPackedFields {
	return imageDescPackedFields{
		localColorTableFlag: b&0x80 != 0,
		interlaceFlag:       b&0x40 != 0,
		sortFlag:            b&0x20 != 0,
		localColorTableSize: b & 0x07,
	}
}

type gcePackedFields struct {
	disposalMethod uint8 // 3 bits
	userInputFlag  bool
	transparentFlag bool
}

// parseGCEPacked decomposes the Graphics Control Extension's packed byte:
// [reserved:3][disposal method:3][user input flag:1][transparent color flag:1].
func parseGCEPacked(b byte) gcePackedFields {
	return gcePackedFields{
		disposalMethod:  (b >> 2) & 0x07,
		userInputFlag:   b&0x02 != 0,
		transparentFlag: b&0x01 != 0,
	}
}

// colorTableLength returns the number of RGB triples a GCT/LCT with the
// given raw 3-bit size exponent holds: 2^(size+1).
func colorTableLength(sizeExp uint8) int {
	return 1 << (sizeExp + 1)
}

// readPalette reads n consecutive RGB triples.
func readPalette(c *cursor, n int) (Palette, error) {
	pal := make(Palette, n)
	for i := 0; i < n; i++ {
		rgb, err := c.take(3)
		if err != nil {
			return nil, err
		}
		pal[i] = Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	}
	return pal, nil
}
