package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	gifdecoder "github.com/Diesel-Hadez/gif-me-hd"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Print a structural summary of a GIF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0], os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(path string, out *os.File) error {
	c := loadConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	g, err := gifdecoder.DecodeWithOptions(data, gifdecoder.ParseOptions{Strict: c.Strict})
	if err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}

	lsd := g.LogicalScreenDescriptor
	fmt.Fprintf(out, "%s: %s, %dx%d, %d frame(s)\n", path, g.Header, lsd.Width, lsd.Height, len(g.Frames))
	if g.GlobalPalette != nil {
		fmt.Fprintf(out, "  global color table: %d colors\n", len(g.GlobalPalette))
	}
	if g.LoopCount != nil {
		fmt.Fprintf(out, "  loop count: %d\n", *g.LoopCount)
	}
	for _, cm := range g.Comments {
		fmt.Fprintf(out, "  comment: %q\n", cm)
	}

	n := len(g.Frames)
	if c.MaxFrames > 0 && c.MaxFrames < n {
		n = c.MaxFrames
	}
	for i := 0; i < n; i++ {
		f := g.Frames[i]
		d := f.Descriptor
		disposal := "none"
		delay := 0
		if f.GraphicControl != nil {
			disposal = disposalName(f.GraphicControl.Disposal)
			delay = int(f.GraphicControl.DelayTime)
		}
		fmt.Fprintf(out, "  frame %d: %dx%d at (%d,%d) interlaced=%v local_palette=%v disposal=%s delay=%dms\n",
			i, d.Width, d.Height, d.Left, d.Top, d.InterlaceFlag, f.LocalPalette != nil, disposal, delay*10)
	}
	return nil
}

func disposalName(d gifdecoder.DisposalMethod) string {
	switch d {
	case gifdecoder.DisposalNone:
		return "none"
	case gifdecoder.DisposalKeep:
		return "keep"
	case gifdecoder.DisposalRestoreBackground:
		return "restore-background"
	case gifdecoder.DisposalRestorePrevious:
		return "restore-previous"
	default:
		return "unknown"
	}
}
