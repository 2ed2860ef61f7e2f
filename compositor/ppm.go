package compositor

import (
	"fmt"
	"image"
	"io"

	"github.com/pkg/errors"
)

// EncodePPM writes img as a binary (P6) netpbm pixmap: a 3-line ASCII header
// followed by raw 8-bit RGB triples in row-major order. No library in the
// retrieval pack encodes netpbm, so this follows the format's own terse
// fixed layout directly.
func EncodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return errors.Wrap(err, "writing ppm header")
	}

	row := make([]byte, 0, width*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row = row[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			row = append(row, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
		if _, err := w.Write(row); err != nil {
			return errors.Wrapf(err, "writing ppm row %d", y)
		}
	}
	return nil
}
