package poxel

import (
	"fmt"
	"math"

	"github.com/gogpu/poxel/internal/clip"
)

// Pixel sampling policy.
//
// Pixel (i, j) of an image is the closed square [i, i+1] x [j, j+1] of its
// pixel space; a point on a pixel edge or corner belongs to every pixel
// that touches it.
//
// The driver is the image whose pixels are smaller in world space. Its set
// pixels inside the bounding box of the hull intersection are sampled at
// k x k sub-pixel centers, where k is large enough that a lattice with the
// driver's sample spacing hits every pixel of the other image (capped by
// the detector's maxSubsamples). Each sample is mapped through world space
// into the other image and tested there.
//
// Regions without area (a point or a segment) and the edges of polygon
// regions are walked directly, at a world-space step of half the smallest
// pixel altitude, testing both images at every sample.

// sampler runs the pixel-perfect stage for one query.
type sampler struct {
	driver *probe // always image-backed
	other  *probe // image-backed, or hull-only in mixed mode
	k      int
	step   float64
}

func newSampler(a, b probe, maxSubsamples int) *sampler {
	driver, other := &a, &b
	switch {
	case !a.hasImage():
		driver, other = &b, &a
	case b.hasImage() && pixelArea(b.toWorld) < pixelArea(a.toWorld):
		driver, other = &b, &a
	}

	k := 1
	step := pixelAltitude(driver.toWorld)
	if other.hasImage() {
		alt := pixelAltitude(other.toWorld)
		if alt > 0 {
			k = int(math.Ceil(min(pixelDiagonal(driver.toWorld)/alt, float64(maxSubsamples))))
		}
		step = min(step, alt)
	}
	k = min(max(k, 1), max(maxSubsamples, 1))
	if !(step > 0) || math.IsInf(step, 0) {
		step = 1
	}

	return &sampler{driver: driver, other: other, k: k, step: step / 2}
}

// collide reports whether some sample in region is set in both operands.
func (s *sampler) collide(region ConvexPolygon) bool {
	switch region.Kind() {
	case KindEmpty:
		return false
	case KindPoint:
		return s.hitBoth(region.pts[0])
	case KindLine:
		return s.walkSegment(region.pts[0], region.pts[1])
	case KindPolygon:
		return s.walkArea(region) || s.walkBoundary(region)
	default:
		panic(fmt.Sprintf("poxel: unknown polygon kind %v", region.Kind()))
	}
}

// walkArea samples the driver's set pixels that overlap region's bounding
// box in driver pixel space.
func (s *sampler) walkArea(region ConvexPolygon) bool {
	img := s.driver.mask.image
	box, _ := BoundsOf(s.driver.toPixel.TransformPoints(region.pts))

	// Pixel i overlaps [lo, hi] iff i <= hi and i+1 >= lo.
	x0, x1, okX := pixelSpan(box.Min.X, box.Max.X, img.Width())
	y0, y1, okY := pixelSpan(box.Min.Y, box.Max.Y, img.Height())
	if !okX || !okY {
		return false
	}

	k := float64(s.k)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !img.IsSet(x, y) {
				continue
			}
			for sy := range s.k {
				v := float64(y) + (float64(sy)+0.5)/k
				for sx := range s.k {
					u := float64(x) + (float64(sx)+0.5)/k
					w := s.driver.toWorld.TransformPoint(Point{X: u, Y: v})
					if s.other.hit(w, false) {
						return true
					}
				}
			}
		}
	}
	return false
}

// walkBoundary samples every edge of a polygon region.
func (s *sampler) walkBoundary(region ConvexPolygon) bool {
	n := len(region.pts)
	for i := range n {
		if s.walkSegment(region.pts[i], region.pts[(i+1)%n]) {
			return true
		}
	}
	return false
}

// walkSegment samples the closed segment a-b in world space, endpoints
// included. Only the part over the driver image is walked.
func (s *sampler) walkSegment(a, b Point) bool {
	img := s.driver.mask.image
	box := clip.Box{Max: clip.Pt(float64(img.Width()), float64(img.Height()))}
	t0, t1, ok := clip.ClipSegment(box,
		toClip(s.driver.toPixel.TransformPoint(a)),
		toClip(s.driver.toPixel.TransformPoint(b)),
	)
	if !ok {
		return false
	}
	// Interpolate from the original ends; unclipped ends stay exact.
	a0, b0 := a, b
	if t0 > 0 {
		a = a0.Lerp(b0, t0)
	}
	if t1 < 1 {
		b = a0.Lerp(b0, t1)
	}

	n := int(math.Ceil(b.Sub(a).Length() / s.step))
	n = max(n, 1)
	for i := 0; i <= n; i++ {
		if s.hitBoth(a.Lerp(b, float64(i)/float64(n))) {
			return true
		}
	}
	return false
}

// hitBoth tests a world point that lies on the hull intersection.
func (s *sampler) hitBoth(w Point) bool {
	return s.driver.hit(w, true) && s.other.hit(w, true)
}

// hit tests a world point against one operand. onRegion tells a hull-only
// operand that the point is already known to lie in the hull intersection.
func (p *probe) hit(w Point, onRegion bool) bool {
	if !p.hasImage() {
		return onRegion || p.hull.Contains(w)
	}
	return isSetClosed(p.mask.image, p.toPixel.TransformPoint(w))
}

// isSetClosed reports whether any pixel whose closed square contains the
// pixel-space point q is set.
func isSetClosed(img BinaryImage, q Point) bool {
	fx, fy := math.Floor(q.X), math.Floor(q.Y)
	// Out of range (or NaN): no pixel can contain q.
	if !(fx >= -1 && fx <= float64(img.Width()) && fy >= -1 && fy <= float64(img.Height())) {
		return false
	}

	x, y := int(fx), int(fy)
	xs, ys := []int{x}, []int{y}
	if q.X == fx {
		xs = append(xs, x-1)
	}
	if q.Y == fy {
		ys = append(ys, y-1)
	}
	for _, py := range ys {
		for _, px := range xs {
			if img.IsSet(px, py) {
				return true
			}
		}
	}
	return false
}

// pixelSpan returns the indices of the pixels in [0, n) whose closed
// extent [i, i+1] overlaps [lo, hi]. ok is false when there are none.
func pixelSpan(lo, hi float64, n int) (first, last int, ok bool) {
	lo = math.Ceil(lo) - 1
	hi = math.Floor(hi)
	lo = max(lo, 0)
	hi = min(hi, float64(n-1))
	if !(lo <= hi) {
		return 0, 0, false
	}
	return int(lo), int(hi), true
}

// pixelArea returns the world-space area of one pixel.
func pixelArea(m Matrix) float64 {
	return math.Abs(m.Determinant())
}

// pixelDiagonal returns the longer diagonal of one pixel in world space.
func pixelDiagonal(m Matrix) float64 {
	c1 := Point{X: m.A, Y: m.D}
	c2 := Point{X: m.B, Y: m.E}
	return max(c1.Add(c2).Length(), c1.Sub(c2).Length())
}

// pixelAltitude returns the smallest width of one pixel in world space:
// the parallelogram's area over its longest side.
func pixelAltitude(m Matrix) float64 {
	c1 := Point{X: m.A, Y: m.D}
	c2 := Point{X: m.B, Y: m.E}
	side := max(c1.Length(), c2.Length())
	if side == 0 {
		return 0
	}
	return pixelArea(m) / side
}
