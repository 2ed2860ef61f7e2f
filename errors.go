package gifdecoder

import "fmt"

// Truncated is returned whenever a reader is asked for more bits or bytes
// than remain in the input.
var Truncated = &TruncatedError{}

// TruncatedError reports that a read ran past the end of the input.
type TruncatedError struct{}

func (e *TruncatedError) Error() string { return "gifdecoder: truncated stream" }

// InvalidMagicError reports a header that is not GIF87a/GIF89a.
type InvalidMagicError struct {
	Got string
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("gifdecoder: invalid magic %q, want GIF87a or GIF89a", e.Got)
}

// UnexpectedByteError reports a tag or magic byte mismatch.
type UnexpectedByteError struct {
	Expected byte
	Got      byte
	Pos      int
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("gifdecoder: at offset %d: expected byte 0x%02x, got 0x%02x", e.Pos, e.Expected, e.Got)
}

// MinCodeSizeInvalidError reports a minimum code size outside [2,8].
type MinCodeSizeInvalidError struct {
	MinCodeSize uint8
}

func (e *MinCodeSizeInvalidError) Error() string {
	return fmt.Sprintf("gifdecoder: minimum code size %d invalid, want 2..8", e.MinCodeSize)
}

// MissingClearError reports that the first LZW code was not Clear.
type MissingClearError struct{}

func (e *MissingClearError) Error() string { return "gifdecoder: lzw stream did not start with Clear" }

// FirstDataNotEntryError reports that the code following Start/Clear was not
// an initial-alphabet entry.
type FirstDataNotEntryError struct {
	Code uint16
}

func (e *FirstDataNotEntryError) Error() string {
	return fmt.Sprintf("gifdecoder: code %d after Clear is not an initial-alphabet entry", e.Code)
}

// CodeOutOfRangeError reports a code greater than the dictionary's length.
type CodeOutOfRangeError struct {
	Code    uint16
	DictLen int
}

func (e *CodeOutOfRangeError) Error() string {
	return fmt.Sprintf("gifdecoder: code %d out of range for dictionary of length %d", e.Code, e.DictLen)
}

// InvalidDisposalMethodError reports a reserved disposal method value (4-7).
type InvalidDisposalMethodError struct {
	Value int
}

func (e *InvalidDisposalMethodError) Error() string {
	return fmt.Sprintf("gifdecoder: disposal method %d is reserved", e.Value)
}

// UnsupportedExtensionError reports an unrecognized extension label.
type UnsupportedExtensionError struct {
	Label byte
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("gifdecoder: unsupported extension label 0x%02x", e.Label)
}

// CodeTooBigError is surfaced by Classify for diagnostic/test use (spec §4.2);
// during normal decompression, out-of-range runtime codes are reported as
// CodeOutOfRangeError instead, since the classifier's fixed-alphabet notion
// of "too big" does not apply once the dictionary has grown.
type CodeTooBigError struct {
	Value       uint16
	MinCodeSize uint8
}

func (e *CodeTooBigError) Error() string {
	return fmt.Sprintf("gifdecoder: code %d too big for minimum code size %d", e.Value, e.MinCodeSize)
}

// ParseError wraps any structural-parser failure with the byte offset of the
// record that failed, per spec.md §7 ("the parser reports the byte offset of
// the failing record").
type ParseError struct {
	Offset int
	Kind   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gifdecoder: parse error at offset %d: %v", e.Offset, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func newParseError(offset int, kind error) *ParseError {
	return &ParseError{Offset: offset, Kind: kind}
}
