// Package compositor turns a decoded gifdecoder.GIFFile into a sequence of
// fully-resolved RGBA canvases, the way a GIF viewer replays an animation:
// each frame is drawn onto a shared canvas according to its disposal method,
// palette, and transparency, in the order spec.md §6 documents as the
// decoder's external consumer.
package compositor

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	gifdecoder "github.com/Diesel-Hadez/gif-me-hd"
	"github.com/Diesel-Hadez/gif-me-hd/internal/gifxlog"
)

// Composite renders every frame of g onto the logical screen canvas,
// honoring disposal methods and transparency, and returns one *image.NRGBA
// snapshot per frame in stream order.
func Composite(g *gifdecoder.GIFFile) ([]*image.NRGBA, error) {
	lsd := g.LogicalScreenDescriptor
	bounds := image.Rect(0, 0, int(lsd.Width), int(lsd.Height))
	canvas := image.NewNRGBA(bounds)
	fillBackground(canvas, g)

	out := make([]*image.NRGBA, 0, len(g.Frames))

	var (
		snapshot     *image.NRGBA // pre-draw canvas, for RestorePrevious
		snapshotRect image.Rectangle
		prevDisposal gifdecoder.DisposalMethod
		prevRect     image.Rectangle
		havePrev     bool
	)

	for i, frame := range g.Frames {
		if havePrev {
			switch prevDisposal {
			case gifdecoder.DisposalRestoreBackground:
				fillRect(canvas, prevRect, backgroundColor(g))
			case gifdecoder.DisposalRestorePrevious:
				if snapshot != nil {
					draw.Draw(canvas, snapshotRect, snapshot, snapshotRect.Min, draw.Src)
				}
			case gifdecoder.DisposalNone, gifdecoder.DisposalKeep:
				// leave canvas as-is
			}
		}

		rect := frameRect(frame.Descriptor)
		disposal := gifdecoder.DisposalNone
		if frame.GraphicControl != nil {
			disposal = frame.GraphicControl.Disposal
		}

		if disposal == gifdecoder.DisposalRestorePrevious {
			snapshot = cloneCanvas(canvas)
			snapshotRect = rect
		}

		if err := drawFrame(canvas, g, &frame, rect); err != nil {
			return nil, errors.Wrapf(err, "compositing frame %d", i)
		}

		gifxlog.Debug.Debugf("frame %d: rect=%v disposal=%d interlace=%v", i, rect, disposal, frame.Descriptor.InterlaceFlag)

		out = append(out, cloneCanvas(canvas))

		prevDisposal = disposal
		prevRect = rect
		havePrev = true
	}

	return out, nil
}

func frameRect(d gifdecoder.ImageDescriptor) image.Rectangle {
	return image.Rect(int(d.Left), int(d.Top), int(d.Left)+int(d.Width), int(d.Top)+int(d.Height))
}

func backgroundColor(g *gifdecoder.GIFFile) color.NRGBA {
	if g.GlobalPalette == nil {
		return color.NRGBA{}
	}
	c := g.GlobalPalette.At(g.LogicalScreenDescriptor.BackgroundColorIndex)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func fillBackground(canvas *image.NRGBA, g *gifdecoder.GIFFile) {
	fillRect(canvas, canvas.Bounds(), backgroundColor(g))
}

func fillRect(canvas *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	rect = rect.Intersect(canvas.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			canvas.SetNRGBA(x, y, c)
		}
	}
}

func cloneCanvas(canvas *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(canvas.Bounds())
	draw.Draw(out, canvas.Bounds(), canvas, canvas.Bounds().Min, draw.Src)
	return out
}

// drawFrame resolves frame's index stream against its active palette and
// paints non-transparent pixels into canvas at rect, applying GIF89a's
// 4-pass interlace row order when Descriptor.InterlaceFlag is set.
func drawFrame(canvas *image.NRGBA, g *gifdecoder.GIFFile, frame *gifdecoder.Frame, rect image.Rectangle) error {
	pal := frame.LocalPalette
	if pal == nil {
		pal = g.GlobalPalette
	}
	if pal == nil {
		return &NoPaletteError{}
	}

	width := int(frame.Descriptor.Width)
	height := int(frame.Descriptor.Height)
	if len(frame.Indices) < width*height {
		return &ShortIndexStreamError{Got: len(frame.Indices), Want: width * height}
	}

	var transparentIdx int = -1
	if frame.GraphicControl != nil && frame.GraphicControl.TransparentFlag {
		transparentIdx = int(frame.GraphicControl.TransparentColorIndex)
	}

	rows := rowOrder(height, frame.Descriptor.InterlaceFlag)

	for streamRow, y := range rows {
		rowStart := streamRow * width
		for x := 0; x < width; x++ {
			idx := frame.Indices[rowStart+x]
			if int(idx) == transparentIdx {
				continue
			}
			if int(idx) >= len(pal) {
				return &PaletteIndexOutOfRangeError{Index: idx, PaletteLength: len(pal)}
			}
			c := pal.At(idx)
			canvas.SetNRGBA(rect.Min.X+x, rect.Min.Y+y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return nil
}

// rowOrder returns, for each row as it appears in the decoded index stream,
// the destination row within the frame. Non-interlaced streams are
// identity-mapped; interlaced streams follow the GIF89a 4-pass order: every
// 8th row from 0, every 8th from 4, every 4th from 2, every 2nd from 1.
func rowOrder(height int, interlaced bool) []int {
	order := make([]int, 0, height)
	if !interlaced {
		for y := 0; y < height; y++ {
			order = append(order, y)
		}
		return order
	}
	passes := [][2]int{{0, 8}, {4, 8}, {2, 4}, {1, 2}}
	for _, p := range passes {
		for y := p[0]; y < height; y += p[1] {
			order = append(order, y)
		}
	}
	return order
}
