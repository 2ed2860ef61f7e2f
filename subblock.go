package gifdecoder

// readDataBlocks implements spec.md §4.5: a data-block is one or more
// sub-blocks (a length byte L in 1..255 followed by L payload bytes)
// terminated by a zero-length sub-block. It returns the concatenation of
// every sub-block's payload, inverting the teacher's LZWEncoder charOut/
// flushChar pairing (which caps each written sub-block at 254 bytes and
// flushes a final length-prefixed packet per call).
func readDataBlocks(c *cursor) ([]byte, error) {
	var out []byte
	for {
		n, err := c.u8()
		if err != nil {
			return nil, Truncated
		}
		if n == 0 {
			return out, nil
		}
		chunk, err := c.take(int(n))
		if err != nil {
			return nil, Truncated
		}
		out = append(out, chunk...)
	}
}

// skipDataBlocks consumes a data-block sequence without retaining its bytes.
// The parser itself reads every extension payload with readDataBlocks and
// does not call it.
func skipDataBlocks(c *cursor) error {
	for {
		n, err := c.u8()
		if err != nil {
			return Truncated
		}
		if n == 0 {
			return nil
		}
		if _, err := c.take(int(n)); err != nil {
			return Truncated
		}
	}
}
