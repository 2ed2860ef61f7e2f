package gifdecoder

// CodeKind discriminates the tagged Code union from spec.md §3.
type CodeKind uint8

const (
	// CodeKindEntry is an eight-bit color index, the leaf alphabet.
	CodeKindEntry CodeKind = iota
	// CodeKindClear signals a dictionary reset.
	CodeKindClear
	// CodeKindEOI signals stream termination.
	CodeKindEOI
)

// Code is the tagged value read off the bitstream before it is resolved
// against the dictionary: an Entry (leaf byte), Clear, or EndOfInformation.
// It is a closed sum type (spec.md §9) — dispatch on Kind, never on dynamic
// type, so there is exactly one concrete Go type for it.
type Code struct {
	Kind  CodeKind
	Entry uint8 // valid only when Kind == CodeKindEntry
}

// Classify implements spec.md §4.2's code classification: given a raw
// integer v and minimum code size m, decide whether v names a leaf entry,
// the Clear code, the EOI code, or is too big for the fixed initial
// alphabet. It serves diagnostics and tests (P1); the LZW engine does not
// call it and instead compares each code against the dictionary's Clear and
// EOI indices and its current length.
func Classify(v uint16, m uint8) (Code, error) {
	if m < 2 || m > 8 {
		return Code{}, &MinCodeSizeInvalidError{MinCodeSize: m}
	}
	clear := uint16(1) << m
	eoi := clear + 1
	switch {
	case v == clear:
		return Code{Kind: CodeKindClear}, nil
	case v == eoi:
		return Code{Kind: CodeKindEOI}, nil
	case v <= clear-1:
		return Code{Kind: CodeKindEntry, Entry: uint8(v)}, nil
	default:
		return Code{}, &CodeTooBigError{Value: v, MinCodeSize: m}
	}
}
