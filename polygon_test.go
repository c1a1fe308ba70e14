package poxel

import (
	"math"
	"testing"
)

func TestLinePolygonCollapses(t *testing.T) {
	if got := LinePolygon(Pt(1, 1), Pt(1, 1)); got.Kind() != KindPoint {
		t.Errorf("LinePolygon(p, p).Kind() = %v, want Point", got.Kind())
	}
	if got := LinePolygon(Pt(0, 0), Pt(1, 1)); got.Kind() != KindLine {
		t.Errorf("LinePolygon(a, b).Kind() = %v, want Line", got.Kind())
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var p ConvexPolygon
	if !p.IsEmpty() || p.Len() != 0 {
		t.Errorf("zero ConvexPolygon = %v, want Empty", p)
	}
	if _, ok := p.Bounds(); ok {
		t.Error("Empty.Bounds() ok = true, want false")
	}
	if !p.Equal(EmptyPolygon()) {
		t.Error("zero value != EmptyPolygon()")
	}
}

func TestContains(t *testing.T) {
	sq := unitSquare()
	line := LinePolygon(Pt(0, 0), Pt(2, 2))
	pt := PointPolygon(Pt(1, 1))

	tests := []struct {
		name string
		p    ConvexPolygon
		q    Point
		want bool
	}{
		{"square interior", sq, Pt(0.5, 0.5), true},
		{"square edge", sq, Pt(1, 0.5), true},
		{"square vertex", sq, Pt(0, 0), true},
		{"square outside", sq, Pt(1.01, 0.5), false},
		{"line middle", line, Pt(1, 1), true},
		{"line end", line, Pt(2, 2), true},
		{"line extension", line, Pt(3, 3), false},
		{"line off", line, Pt(1, 0), false},
		{"point same", pt, Pt(1, 1), true},
		{"point other", pt, Pt(1, 1.0001), false},
		{"empty", EmptyPolygon(), Pt(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Contains(tt.q); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := NewConvexPolygon(Pt(0, 0), Pt(2, 0), Pt(1, 2))
	rotated := ConvexPolygon{kind: KindPolygon, pts: []Point{a.pts[1], a.pts[2], a.pts[0]}}

	tests := []struct {
		name string
		p, q ConvexPolygon
		want bool
	}{
		{"same", a, a, true},
		{"different start vertex", a, rotated, true},
		{"line either direction", LinePolygon(Pt(0, 0), Pt(1, 0)), LinePolygon(Pt(1, 0), Pt(0, 0)), true},
		{"different kind", a, LinePolygon(Pt(0, 0), Pt(2, 0)), false},
		{"different vertex", a, NewConvexPolygon(Pt(0, 0), Pt(2, 0), Pt(1, 3)), false},
		{"points", PointPolygon(Pt(1, 2)), PointPolygon(Pt(1, 2)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Equal(tt.q); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestTransformKeepsCounterClockwise(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"rotate", Rotate(0.8)},
		{"scale", Scale(3, 0.25)},
		{"shear", Shear(0.5, 0.1)},
		{"reflect x", Scale(-1, 1)},
		{"reflect y", Translate(4, 4).Multiply(Scale(2, -1))},
	}
	p := NewConvexPolygon(Pt(0, 0), Pt(3, 0), Pt(4, 2), Pt(1, 3))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Transform(tt.m)
			if got.Kind() != KindPolygon || got.Len() != p.Len() {
				t.Fatalf("Transform() = %v, want a %d-gon", got, p.Len())
			}
			if area := signedArea(got.pts); area <= 0 {
				t.Errorf("signed area = %v, want > 0 (counter-clockwise)", area)
			}
			// Same point set as re-hulling the transformed vertices.
			want := ConvexHull(tt.m.TransformPoints(p.pts))
			if !got.Equal(want) {
				t.Errorf("Transform() = %v, want %v", got, want)
			}
		})
	}
}

func TestTransformSingularReclassifies(t *testing.T) {
	got := unitSquare().Transform(Scale(1, 0))
	want := LinePolygon(Pt(0, 0), Pt(1, 0))
	if !got.Equal(want) {
		t.Errorf("Transform(flatten) = %v, want %v", got, want)
	}

	got = unitSquare().Transform(Matrix{})
	if got.Kind() != KindPoint {
		t.Errorf("Transform(zero).Kind() = %v, want Point", got.Kind())
	}
}

func TestTranslateAndBounds(t *testing.T) {
	p := unitSquare().Translate(Pt(2, 3))
	r, ok := p.Bounds()
	if !ok || r != NewRect(Pt(2, 3), Pt(3, 4)) {
		t.Errorf("Bounds() = %v, %v", r, ok)
	}
	c, ok := p.Centroid()
	if !ok || !nearPoint(c, Pt(2.5, 3.5)) {
		t.Errorf("Centroid() = %v, want (2.5, 3.5)", c)
	}
	if !p.Contains(c) {
		t.Error("polygon does not contain its centroid")
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	p := unitSquare()
	pts := p.Points()
	pts[0] = Pt(math.Inf(1), 0)
	if p.At(0).X == math.Inf(1) {
		t.Error("Points() exposed the internal slice")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindEmpty, "Empty"},
		{KindPoint, "Point"},
		{KindLine, "Line"},
		{KindPolygon, "Polygon"},
		{Kind(9), "Kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

// signedArea returns the shoelace area; positive for counter-clockwise
// order in the package's coordinate convention.
func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		a += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	return a / 2
}
