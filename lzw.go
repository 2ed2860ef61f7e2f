package gifdecoder

/*
lzw.go implements the GIF variable-width LZW decompressor, spec.md §4.3.

The state machine mirrors the shape of a classic GIF LZW codec — explicit
code width, a free-entry count that drives width growth, and a "clear the
table" branch — except run in reverse: where an encoder tracks a pending
prefix and looks its extension up in a hash table, a decoder resolves each
incoming code against the growing dictionary and appends the code's
resolved-plus-next-byte sequence instead.

Acknowledgement: the control-flow shape (explicit bit-width state, grow the
table on append, clear it on an explicit control code) follows the
classic LZW-for-GIF decompression algorithm as documented in the GIF89a
specification and reflected throughout the format's tooling.
*/

const maxDictSize = 1 << 12 // spec.md §5: dictionary capped at 4096 entries

// decompress implements spec.md §4.3: it drives a bitReader and a
// dictionary to turn a compressed byte buffer into the frame's index
// stream. minCodeSize must be in [2,8].
func decompress(data []byte, minCodeSize uint8) ([]byte, error) {
	if minCodeSize < 2 || minCodeSize > 8 {
		return nil, &MinCodeSizeInvalidError{MinCodeSize: minCodeSize}
	}

	dict := newDictionary(minCodeSize)
	w := minCodeSize + 1
	br := newBitReader(data)

	// Start: the stream must open with Clear.
	c, err := br.read(w)
	if err != nil {
		return nil, err
	}
	if int(c) != dict.clearCode() {
		return nil, &MissingClearError{}
	}

	var out []byte
	prev, err := readFirstData(br, dict, w, &out)
	if err != nil {
		return nil, err
	}

	for {
		c, err := br.read(w)
		if err != nil {
			return nil, err
		}
		code := int(c)

		switch {
		case code == dict.eoiCode():
			return out, nil

		case code == dict.clearCode():
			dict.reset()
			w = minCodeSize + 1
			prev, err = readFirstData(br, dict, w, &out)
			if err != nil {
				return nil, err
			}
			continue

		case code < dict.len():
			seq := dict.bytes(code)
			out = append(out, seq...)
			k := seq[0]
			if dict.len() < maxDictSize {
				dict.append(prev, k)
			}

		case code == dict.len():
			// KwKwK: the code names the entry about to be created.
			p := dict.bytes(prev)
			k := p[0]
			out = append(out, p...)
			out = append(out, k)
			if dict.len() < maxDictSize {
				dict.append(prev, k)
			}

		default:
			return nil, &CodeOutOfRangeError{Code: c, DictLen: dict.len()}
		}

		if dict.len() == 1<<w && w < 12 {
			w++
		}
		prev = code
	}
}

// readFirstData reads the code immediately following Start/Clear, requiring
// it to name a singleton entry in the initial alphabet (spec.md §4.3
// AwaitingFirstData state). It is invoked from both Start and the Clear
// branch of Running, per spec.md §9's reader re-entrancy note.
func readFirstData(br *bitReader, dict *dictionary, w uint8, out *[]byte) (int, error) {
	c, err := br.read(w)
	if err != nil {
		return 0, err
	}
	if !dict.isSingleton(int(c)) {
		return 0, &FirstDataNotEntryError{Code: c}
	}
	*out = append(*out, uint8(c))
	return int(c), nil
}
