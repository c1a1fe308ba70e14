package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/poxel"
)

var flagHullOut string

var hullCmd = &cobra.Command{
	Use:   "hull <image>",
	Short: "Print the convex hull of an image mask",
	Long: `Thresholds the image's alpha channel, computes the convex hull of the
set pixels and prints its vertices in pixel coordinates. With --out the hull
is rasterized over the mask and written as a PNG.`,
	Args: cobra.ExactArgs(1),
	RunE: runHull,
}

func init() {
	hullCmd.Flags().StringVarP(&flagHullOut, "out", "o", "", "Write a PNG of the mask and its hull")
}

func runHull(cmd *cobra.Command, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}
	bits := poxel.NewBitsetFromImage(img, flagThreshold)
	mask, err := poxel.NewMaskFromImage(bits, poxel.Identity())
	if err != nil {
		return err
	}

	hull := mask.Hull()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%dx%d, %d pixels set\n", bits.Width(), bits.Height(), bits.Count())
	fmt.Fprintf(out, "hull: %v, %d vertices\n", hull.Kind(), hull.Len())
	for i := range hull.Len() {
		p := hull.At(i)
		fmt.Fprintf(out, "  %g %g\n", p.X, p.Y)
	}

	if flagHullOut == "" {
		return nil
	}
	return writeHullPNG(flagHullOut, bits, hull)
}

// writeHullPNG draws the hull in gray and the set pixels in black.
func writeHullPNG(path string, bits *poxel.Bitset, hull poxel.ConvexPolygon) error {
	w, h := bits.Width(), bits.Height()
	area := poxel.RasterizePolygon(hull, w, h)

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.Gray{Y: 255}
			switch {
			case bits.IsSet(x, y):
				c.Y = 0
			case area.IsSet(x, y):
				c.Y = 160
			}
			dst.SetGray(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
