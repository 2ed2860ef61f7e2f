package gifdecoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecompress_Scenario6 is spec.md §8 scenario 6, reused verbatim from
// original_source's decompress_valid_stream test.
func TestDecompress_Scenario6(t *testing.T) {
	compressed := []byte{
		0x8C, 0x2D, 0x99, 0x87, 0x2A, 0x1C, 0xDC, 0x33, 0xA0, 0x02, 0x75,
		0xEC, 0x95, 0xFA, 0xA8, 0xDE, 0x60, 0x8C, 0x04, 0x91, 0x4C, 0x01,
	}
	want := []byte{
		1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2,
		1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 0, 0, 0, 0, 2, 2, 2,
		1, 1, 1, 0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 0, 0, 0, 0, 1, 1, 1,
		2, 2, 2, 0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1,
	}
	require.Len(t, want, 100)

	got, err := decompress(compressed, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDecompress_P4 checks property P4: round-tripping a single-byte message
// through an encoding this decoder can actually read back: Clear, the
// singleton code, EOI.
func TestDecompress_P4(t *testing.T) {
	for m := uint8(2); m <= 8; m++ {
		for i := 0; i < (1 << m); i++ {
			w := m + 1
			bw := newTestBitWriter()
			bw.write(uint16(1<<m), w)   // Clear
			bw.write(uint16(i), w)      // singleton
			bw.write(uint16(1<<m+1), w) // EOI
			data := bw.bytes()

			got, err := decompress(data, m)
			require.NoError(t, err)
			assert.Equal(t, []byte{byte(i)}, got)
		}
	}
}

// TestDecompress_P5 checks property P5: a Clear fully resets decoder state,
// so decoding a few codes right after an embedded Clear produces exactly the
// output a fresh decode of just those codes would, regardless of how much
// dictionary growth happened before the Clear.
func TestDecompress_P5(t *testing.T) {
	m := uint8(2)
	w := m + 1
	clear := uint16(1 << m)
	eoi := clear + 1

	fresh := newTestBitWriter()
	fresh.write(clear, w)
	fresh.write(2, w)
	fresh.write(eoi, w)

	grownThenCleared := newTestBitWriter()
	grownThenCleared.write(clear, w)
	grownThenCleared.write(2, w)
	grownThenCleared.write(3, w) // grows the dictionary before the embedded Clear
	grownThenCleared.write(clear, w)
	grownThenCleared.write(2, w)
	grownThenCleared.write(eoi, w)

	freshOut, err := decompress(fresh.bytes(), m)
	require.NoError(t, err)

	grownOut, err := decompress(grownThenCleared.bytes(), m)
	require.NoError(t, err)

	assert.Equal(t, freshOut, grownOut[len(grownOut)-len(freshOut):])
}

func TestDecompress_MissingClear(t *testing.T) {
	m := uint8(2)
	bw := newTestBitWriter()
	bw.write(0, m+1) // not Clear
	_, err := decompress(bw.bytes(), m)
	require.Error(t, err)
	var missing *MissingClearError
	require.ErrorAs(t, err, &missing)
}

func TestDecompress_InvalidMinCodeSize(t *testing.T) {
	_, err := decompress(nil, 1)
	require.Error(t, err)
	var bad *MinCodeSizeInvalidError
	require.ErrorAs(t, err, &bad)

	_, err = decompress(nil, 9)
	require.Error(t, err)
	require.ErrorAs(t, err, &bad)
}

func TestDecompress_Truncated(t *testing.T) {
	m := uint8(2)
	bw := newTestBitWriter()
	bw.write(uint16(1<<m), m+1) // Clear, then nothing
	_, err := decompress(bw.bytes(), m)
	require.ErrorIs(t, err, Truncated)
}

// testBitWriter is a minimal LSB-first bit writer used only by tests to
// construct synthetic LZW streams, the mirror image of bitReader.
type testBitWriter struct {
	accum uint32
	nbits uint8
	out   []byte
}

func newTestBitWriter() *testBitWriter { return &testBitWriter{} }

func (w *testBitWriter) write(v uint16, n uint8) {
	w.accum |= uint32(v) << w.nbits
	w.nbits += n
	for w.nbits >= 8 {
		w.out = append(w.out, byte(w.accum))
		w.accum >>= 8
		w.nbits -= 8
	}
}

func (w *testBitWriter) bytes() []byte {
	if w.nbits > 0 {
		w.out = append(w.out, byte(w.accum))
		w.accum = 0
		w.nbits = 0
	}
	return w.out
}
