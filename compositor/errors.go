package compositor

import "fmt"

// PaletteIndexOutOfRangeError reports a decoded pixel index with no matching
// palette entry, spec.md §7 — a compositor-only failure since the structural
// parser never looks at pixel values.
type PaletteIndexOutOfRangeError struct {
	Index         uint8
	PaletteLength int
}

func (e *PaletteIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("compositor: palette index %d out of range (palette length %d)", e.Index, e.PaletteLength)
}

// NoPaletteError reports a frame with neither a local nor a global color
// table to resolve indices against.
type NoPaletteError struct{}

func (e *NoPaletteError) Error() string { return "compositor: frame has no local or global palette" }

// ShortIndexStreamError reports a decoded index stream shorter than the
// frame's declared width*height.
type ShortIndexStreamError struct {
	Got, Want int
}

func (e *ShortIndexStreamError) Error() string {
	return fmt.Sprintf("compositor: index stream too short: got %d bytes, want %d", e.Got, e.Want)
}
