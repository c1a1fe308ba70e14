package poxel

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// coverageThreshold is the minimum 8-bit coverage for a rasterized pixel to
// be set: the pixel center rule, approximated by half coverage.
const coverageThreshold = 128

// RasterizePolygon scan-converts p into a width x height image in p's own
// coordinate space (pixel (x, y) covers [x, x+1] x [y, y+1]). A pixel is set
// when at least half of it is covered. Empty, Point and Line polygons have
// no area and produce an image with no set pixels.
//
// Combine with NewMaskFromImage to turn vector shapes into image-backed
// masks; the mask's hull is then derived from the pixels, not from p.
func RasterizePolygon(p ConvexPolygon, width, height int) *Bitset {
	out := NewBitset(width, height)
	if p.kind != KindPolygon || width <= 0 || height <= 0 {
		return out
	}

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	r.MoveTo(float32(p.pts[0].X), float32(p.pts[0].Y))
	for _, v := range p.pts[1:] {
		r.LineTo(float32(v.X), float32(v.Y))
	}
	r.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < height; y++ {
		row := alpha.Pix[y*alpha.Stride : y*alpha.Stride+width]
		for x, a := range row {
			if a >= coverageThreshold {
				out.Set(x, y, true)
			}
		}
	}
	return out
}
