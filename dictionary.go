package gifdecoder

// dictEntry is a parent-pointer dictionary entry (spec.md §9 Design Notes,
// option (b)): rather than storing each entry's full byte sequence, we store
// enough to reconstruct it by walking parents and reversing. parent is -1
// for the initial singleton entries.
type dictEntry struct {
	parent int32
	last   uint8
	length int32
}

// dictionary is the growable LZW code table (spec.md §3). It never shrinks
// except via reset, and lives only for the duration of one LZW invocation.
type dictionary struct {
	minCodeSize uint8
	entries     []dictEntry
}

func newDictionary(m uint8) *dictionary {
	d := &dictionary{minCodeSize: m}
	d.reset()
	return d
}

// reset restores the dictionary to its post-Clear state: 2^m singletons
// followed by the reserved Clear and EOI slots.
func (d *dictionary) reset() {
	n := int(1) << d.minCodeSize
	d.entries = make([]dictEntry, 0, 1<<12)
	for i := 0; i < n; i++ {
		d.entries = append(d.entries, dictEntry{parent: -1, last: uint8(i), length: 1})
	}
	// Clear and EOI occupy slots n and n+1; they carry no byte sequence and
	// are never resolved through bytes(), only classified by index.
	d.entries = append(d.entries, dictEntry{parent: -1, last: 0, length: 0})
	d.entries = append(d.entries, dictEntry{parent: -1, last: 0, length: 0})
}

// clearCode and eoiCode return this dictionary's fixed reserved indices;
// they do not move across resets since minCodeSize never changes mid-stream.
func (d *dictionary) clearCode() int { return 1<<d.minCodeSize }
func (d *dictionary) eoiCode() int   { return 1<<d.minCodeSize + 1 }

func (d *dictionary) len() int { return len(d.entries) }

// isSingleton reports whether code names one of the initial 2^m leaf bytes.
func (d *dictionary) isSingleton(code int) bool {
	return code >= 0 && code < 1<<d.minCodeSize
}

// append adds a new entry whose sequence is dictionary[parent] followed by
// last, per spec.md §4.3 step 4/5.
func (d *dictionary) append(parent int, last uint8) {
	d.entries = append(d.entries, dictEntry{
		parent: int32(parent),
		last:   last,
		length: d.entries[parent].length + 1,
	})
}

// bytes reconstructs the byte sequence named by code by walking parent
// pointers and reversing, per spec.md §9 Design Notes option (b). A Clear or
// EOI slot yields an empty slice and an out-of-range index panics; callers
// must only invoke it on indices already validated as real entries.
func (d *dictionary) bytes(code int) []byte {
	e := d.entries[code]
	out := make([]byte, e.length)
	for i := e.length - 1; i >= 0; i-- {
		out[i] = e.last
		if e.parent < 0 {
			break
		}
		e = d.entries[e.parent]
	}
	return out
}

// firstByte returns the leading byte of the sequence named by code, without
// materializing the whole slice.
func (d *dictionary) firstByte(code int) uint8 {
	e := d.entries[code]
	for e.parent >= 0 {
		e = d.entries[e.parent]
	}
	return e.last
}
