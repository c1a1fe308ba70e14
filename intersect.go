package poxel

import (
	"fmt"

	"github.com/gogpu/poxel/internal/clip"
)

// Intersect returns the exact intersection of two convex regions, in its
// minimal form. Every combination of variants is supported, and degenerate
// results (a shared vertex, a shared edge, one region inside the other)
// come back as Point, Line or Polygon as appropriate. Intersect is total
// and commutative as a set operation.
func Intersect(a, b ConvexPolygon) ConvexPolygon {
	if a.kind == KindEmpty || b.kind == KindEmpty {
		return EmptyPolygon()
	}
	// Order the operands so that a.kind <= b.kind; the cases below only
	// need to handle the upper triangle. Equal kinds are ordered too, so
	// both argument orders run the same arithmetic.
	if b.less(a) {
		a, b = b, a
	}

	switch a.kind {
	case KindPoint:
		if b.Contains(a.pts[0]) {
			return a
		}
		return EmptyPolygon()
	case KindLine:
		switch b.kind {
		case KindLine:
			p0, p1, n := clip.Segments(
				toClip(a.pts[0]), toClip(a.pts[1]),
				toClip(b.pts[0]), toClip(b.pts[1]),
			)
			return fromClipResult(p0, p1, n)
		case KindPolygon:
			p0, p1, n := clip.Segment(toClip(a.pts[0]), toClip(a.pts[1]), toClipAll(b.pts))
			return fromClipResult(p0, p1, n)
		default:
			panic(fmt.Sprintf("poxel: unexpected operand kind %v", b.kind))
		}
	case KindPolygon:
		return intersectPolygons(a, b)
	default:
		panic(fmt.Sprintf("poxel: unexpected operand kind %v", a.kind))
	}
}

// Intersects reports whether the two regions share at least one point.
func Intersects(a, b ConvexPolygon) bool {
	return !Intersect(a, b).IsEmpty()
}

// intersectPolygons returns the hull of the vertices of each polygon that
// lie in the closed half-planes of the other, plus the points where their
// edges meet. Containment is resolved first so the common cases return an
// operand unchanged.
//
// Vertices and touching points come straight from the inputs; only proper
// edge crossings are computed. A vertex lying on the other polygon's edge
// therefore survives exactly, and a touching contact collapses to a Point
// or Line rather than a sliver Polygon.
func intersectPolygons(a, b ConvexPolygon) ConvexPolygon {
	if containsAll(b, a.pts) {
		return a
	}
	if containsAll(a, b.pts) {
		return b
	}
	pts := clip.ConvexPolygon(toClipAll(a.pts), toClipAll(b.pts))
	if len(pts) == 0 {
		return EmptyPolygon()
	}
	return ConvexHull(fromClipAll(pts))
}

func containsAll(p ConvexPolygon, pts []Point) bool {
	for _, q := range pts {
		if !p.Contains(q) {
			return false
		}
	}
	return true
}

func fromClipResult(p0, p1 clip.Point, n int) ConvexPolygon {
	switch n {
	case 0:
		return EmptyPolygon()
	case 1:
		return PointPolygon(Point(p0))
	default:
		return LinePolygon(Point(p0), Point(p1))
	}
}

func toClip(p Point) clip.Point { return clip.Point(p) }

func toClipAll(pts []Point) []clip.Point {
	out := make([]clip.Point, len(pts))
	for i, p := range pts {
		out[i] = clip.Point(p)
	}
	return out
}

func fromClipAll(pts []clip.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point(p)
	}
	return out
}
