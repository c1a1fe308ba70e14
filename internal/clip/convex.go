package clip

// Inside reports whether p lies in the closed convex region spanned by the
// counter-clockwise point list poly: a point, a segment, or a polygon with
// at least three vertices. For a polygon, p must lie in the closed
// half-plane to the left of every edge.
func Inside(poly []Point, p Point) bool {
	switch len(poly) {
	case 0:
		return false
	case 1:
		return poly[0] == p
	case 2:
		return OnSegment(p, poly[0], poly[1])
	}
	n := len(poly)
	for i := range n {
		if Orient(poly[i], poly[(i+1)%n], p) < 0 {
			return false
		}
	}
	return true
}

// ConvexPolygon returns the points that span the intersection of two
// convex counter-clockwise point lists (each a point, a segment or a
// polygon): the vertices of either operand that lie inside the other, and
// the points where their edges meet.
//
// Vertices and touching points are copied from the inputs, never
// recomputed, so a shared vertex or an edge through a vertex survives
// exactly. Only proper crossings of two edges are interpolated. The result
// is empty iff the regions are disjoint; it may contain duplicates and
// interior points, so callers take its convex hull.
func ConvexPolygon(subject, clipper []Point) []Point {
	var out []Point
	for _, p := range subject {
		if Inside(clipper, p) {
			out = append(out, p)
		}
	}
	for _, p := range clipper {
		if Inside(subject, p) {
			out = append(out, p)
		}
	}

	for _, s := range edges(subject) {
		for _, c := range edges(clipper) {
			p0, p1, n := Segments(s[0], s[1], c[0], c[1])
			switch n {
			case 1:
				out = append(out, p0)
			case 2:
				out = append(out, p0, p1)
			}
		}
	}
	return out
}

// edges returns the closed boundary of a point list as segments.
func edges(pts []Point) [][2]Point {
	switch len(pts) {
	case 0, 1:
		return nil
	case 2:
		return [][2]Point{{pts[0], pts[1]}}
	}
	out := make([][2]Point, len(pts))
	for i := range pts {
		out[i] = [2]Point{pts[i], pts[(i+1)%len(pts)]}
	}
	return out
}
