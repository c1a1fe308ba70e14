package poxel

import (
	"fmt"
	"strings"

	"github.com/gogpu/poxel/internal/clip"
)

// Kind identifies which variant of ConvexPolygon a value holds.
type Kind uint8

const (
	// KindEmpty is the polygon with no points.
	KindEmpty Kind = iota
	// KindPoint is a single point.
	KindPoint
	// KindLine is a segment between two distinct points.
	KindLine
	// KindPolygon is a strictly convex counter-clockwise polygon
	// with at least three vertices.
	KindPolygon
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindPoint:
		return "Point"
	case KindLine:
		return "Line"
	case KindPolygon:
		return "Polygon"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ConvexPolygon is a closed convex region of the plane, stored in its
// minimal form: Empty, a Point, a Line (two distinct endpoints) or a
// Polygon (three or more vertices, counter-clockwise, strictly convex, no
// duplicate or colinear vertices).
//
// The variant always matches the represented point set, so a segment is
// never stored as a flat polygon. Values are immutable and safe to share
// between goroutines. The zero value is the empty polygon.
type ConvexPolygon struct {
	kind Kind
	pts  []Point
}

// EmptyPolygon returns the empty polygon.
func EmptyPolygon() ConvexPolygon {
	return ConvexPolygon{}
}

// PointPolygon returns the polygon containing only p.
func PointPolygon(p Point) ConvexPolygon {
	return ConvexPolygon{kind: KindPoint, pts: []Point{p}}
}

// LinePolygon returns the segment a-b, or a Point if a == b.
func LinePolygon(a, b Point) ConvexPolygon {
	if a.Equal(b) {
		return PointPolygon(a)
	}
	return ConvexPolygon{kind: KindLine, pts: []Point{a, b}}
}

// NewConvexPolygon returns the convex hull of pts. It never fails:
// any input, including duplicates, colinear points or clockwise order,
// is re-classified into the minimal variant.
func NewConvexPolygon(pts ...Point) ConvexPolygon {
	return ConvexHull(pts)
}

// fromCCW wraps vertices that are already a valid strictly convex
// counter-clockwise polygon. Only for internal callers that guarantee it.
func fromCCW(pts []Point) ConvexPolygon {
	switch len(pts) {
	case 0:
		return EmptyPolygon()
	case 1:
		return PointPolygon(pts[0])
	case 2:
		return LinePolygon(pts[0], pts[1])
	default:
		return ConvexPolygon{kind: KindPolygon, pts: pts}
	}
}

// Kind returns the variant of the polygon.
func (p ConvexPolygon) Kind() Kind { return p.kind }

// IsEmpty reports whether the polygon contains no points.
func (p ConvexPolygon) IsEmpty() bool { return p.kind == KindEmpty }

// Len returns the number of vertices (0 for Empty, 1 for Point, 2 for Line).
func (p ConvexPolygon) Len() int { return len(p.pts) }

// At returns the i-th vertex.
func (p ConvexPolygon) At(i int) Point { return p.pts[i] }

// Points returns a copy of the vertices in counter-clockwise order.
func (p ConvexPolygon) Points() []Point {
	return append([]Point(nil), p.pts...)
}

// Bounds returns the axis-aligned bounding box.
// ok is false for the empty polygon.
func (p ConvexPolygon) Bounds() (Rect, bool) {
	return BoundsOf(p.pts)
}

// Centroid returns the average of the vertices. It lies inside every
// non-empty polygon. ok is false for the empty polygon.
func (p ConvexPolygon) Centroid() (c Point, ok bool) {
	if len(p.pts) == 0 {
		return Point{}, false
	}
	for _, v := range p.pts {
		c = c.Add(v)
	}
	return c.Mul(1 / float64(len(p.pts))), true
}

// Contains reports whether q lies in the closed region.
func (p ConvexPolygon) Contains(q Point) bool {
	switch p.kind {
	case KindEmpty:
		return false
	case KindPoint:
		return p.pts[0].Equal(q)
	case KindLine:
		return clip.OnSegment(toClip(q), toClip(p.pts[0]), toClip(p.pts[1]))
	case KindPolygon:
		n := len(p.pts)
		for i := range n {
			if orient(p.pts[i], p.pts[(i+1)%n], q) < 0 {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("poxel: unknown polygon kind %v", p.kind))
	}
}

// Translate returns the polygon moved by the vector d.
func (p ConvexPolygon) Translate(d Point) ConvexPolygon {
	if p.kind == KindEmpty {
		return p
	}
	out := make([]Point, len(p.pts))
	for i, v := range p.pts {
		out[i] = v.Add(d)
	}
	return ConvexPolygon{kind: p.kind, pts: out}
}

// Transform applies m to every vertex.
//
// Affine maps preserve convexity. A positive determinant keeps the
// counter-clockwise order; a negative determinant (reflection) reverses the
// vertex order so the result is still counter-clockwise. A singular map
// collapses the region, so the minimal variant is re-derived.
func (p ConvexPolygon) Transform(m Matrix) ConvexPolygon {
	switch p.kind {
	case KindEmpty:
		return p
	case KindPoint:
		return PointPolygon(m.TransformPoint(p.pts[0]))
	case KindLine:
		return LinePolygon(m.TransformPoint(p.pts[0]), m.TransformPoint(p.pts[1]))
	case KindPolygon:
		det := m.Determinant()
		out := m.TransformPoints(p.pts)
		switch {
		case det > 0:
			return ConvexPolygon{kind: KindPolygon, pts: out}
		case det < 0:
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
			return ConvexPolygon{kind: KindPolygon, pts: out}
		default:
			return ConvexHull(out)
		}
	default:
		panic(fmt.Sprintf("poxel: unknown polygon kind %v", p.kind))
	}
}

// Equal reports whether p and q represent the same point set:
// same variant and same vertices, regardless of which vertex the
// listing starts at.
func (p ConvexPolygon) Equal(q ConvexPolygon) bool {
	if p.kind != q.kind || len(p.pts) != len(q.pts) {
		return false
	}
	switch p.kind {
	case KindEmpty:
		return true
	case KindPoint:
		return p.pts[0].Equal(q.pts[0])
	case KindLine:
		return (p.pts[0].Equal(q.pts[0]) && p.pts[1].Equal(q.pts[1])) ||
			(p.pts[0].Equal(q.pts[1]) && p.pts[1].Equal(q.pts[0]))
	case KindPolygon:
		n := len(p.pts)
		for off := range n {
			if !p.pts[0].Equal(q.pts[off]) {
				continue
			}
			match := true
			for i := 1; i < n; i++ {
				if !p.pts[i].Equal(q.pts[(i+off)%n]) {
					match = false
					break
				}
			}
			if match {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("poxel: unknown polygon kind %v", p.kind))
	}
}

// String implements fmt.Stringer.
func (p ConvexPolygon) String() string {
	var sb strings.Builder
	sb.WriteString(p.kind.String())
	sb.WriteByte('(')
	for i, v := range p.pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// less orders polygons by kind, then vertex count, then vertices.
func (p ConvexPolygon) less(q ConvexPolygon) bool {
	if p.kind != q.kind {
		return p.kind < q.kind
	}
	if len(p.pts) != len(q.pts) {
		return len(p.pts) < len(q.pts)
	}
	for i := range p.pts {
		if !p.pts[i].Equal(q.pts[i]) {
			return p.pts[i].Less(q.pts[i])
		}
	}
	return false
}
