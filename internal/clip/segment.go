package clip

// OnSegment reports whether p lies on the closed segment a-b.
// A degenerate segment (a == b) contains only a.
func OnSegment(p, a, b Point) bool {
	if Orient(a, b, p) != 0 {
		return false
	}
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// Segments intersects the closed segments a0-a1 and b0-b1.
//
// It returns n = 0 when they are disjoint, n = 1 with the single shared
// point in p0, or n = 2 when the segments overlap along p0-p1. Endpoints of
// an overlap are always copied from the inputs, never recomputed. Both
// segments must be non-degenerate.
func Segments(a0, a1, b0, b1 Point) (p0, p1 Point, n int) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.Cross(db)
	ab := b0.Sub(a0)

	if denom != 0 {
		// Exact shared endpoints first so touching segments keep exact coordinates.
		for _, p := range [...]Point{a0, a1} {
			if OnSegment(p, b0, b1) {
				return p, Point{}, 1
			}
		}
		for _, p := range [...]Point{b0, b1} {
			if OnSegment(p, a0, a1) {
				return p, Point{}, 1
			}
		}

		t := ab.Cross(db) / denom
		u := ab.Cross(da) / denom
		if t < 0 || t > 1 || u < 0 || u > 1 {
			return Point{}, Point{}, 0
		}
		return a0.Lerp(a1, t), Point{}, 1
	}

	// Parallel.
	if ab.Cross(da) != 0 {
		return Point{}, Point{}, 0
	}

	// Colinear: project everything on da and intersect the parameter ranges.
	type param struct {
		t float64
		p Point
	}
	lenSq := da.Dot(da)
	a := [2]param{{0, a0}, {1, a1}}
	b := [2]param{{ab.Dot(da) / lenSq, b0}, {b1.Sub(a0).Dot(da) / lenSq, b1}}
	if b[0].t > b[1].t {
		b[0], b[1] = b[1], b[0]
	}

	lo := a[0]
	if b[0].t > lo.t {
		lo = b[0]
	}
	hi := a[1]
	if b[1].t < hi.t {
		hi = b[1]
	}

	switch {
	case lo.t > hi.t:
		return Point{}, Point{}, 0
	case lo.t == hi.t:
		return lo.p, Point{}, 1
	default:
		return lo.p, hi.p, 2
	}
}

// Segment clips the closed segment a-b against the closed convex CCW
// polygon and returns the surviving piece, with the same n convention as
// Segments.
func Segment(a, b Point, poly []Point) (p0, p1 Point, n int) {
	pts := ConvexPolygon([]Point{a, b}, poly)
	if len(pts) == 0 {
		return Point{}, Point{}, 0
	}
	// The survivors are colinear with a-b; keep the two extremes along it.
	d := b.Sub(a)
	lo, hi := pts[0], pts[0]
	loT, hiT := pts[0].Sub(a).Dot(d), pts[0].Sub(a).Dot(d)
	for _, p := range pts[1:] {
		t := p.Sub(a).Dot(d)
		if t < loT {
			lo, loT = p, t
		}
		if t > hiT {
			hi, hiT = p, t
		}
	}
	if loT == hiT {
		return lo, Point{}, 1
	}
	return lo, hi, 2
}
