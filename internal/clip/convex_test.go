package clip

import (
	"math"
	"testing"
)

func assertPointNear(t *testing.T, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

// unitSquare is counter-clockwise in y-down coordinates
// (positive signed area).
var unitSquare = []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}

func hasPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		sign    int
	}{
		{"left turn", Pt(0, 0), Pt(1, 0), Pt(1, 1), 1},
		{"right turn", Pt(0, 0), Pt(1, 0), Pt(1, -1), -1},
		{"colinear", Pt(0, 0), Pt(1, 0), Pt(5, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orient(tt.a, tt.b, tt.c)
			var sign int
			switch {
			case got > 0:
				sign = 1
			case got < 0:
				sign = -1
			}
			if sign != tt.sign {
				t.Errorf("Orient() = %v, want sign %d", got, tt.sign)
			}
		})
	}
}

func TestInside(t *testing.T) {
	tests := []struct {
		name string
		poly []Point
		p    Point
		want bool
	}{
		{"empty", nil, Pt(0, 0), false},
		{"point hit", []Point{Pt(1, 2)}, Pt(1, 2), true},
		{"point miss", []Point{Pt(1, 2)}, Pt(1, 3), false},
		{"segment interior", []Point{Pt(0, 0), Pt(2, 2)}, Pt(1, 1), true},
		{"segment beyond", []Point{Pt(0, 0), Pt(2, 2)}, Pt(3, 3), false},
		{"square interior", unitSquare, Pt(0.5, 0.5), true},
		{"square edge", unitSquare, Pt(1, 0.5), true},
		{"square corner", unitSquare, Pt(0, 1), true},
		{"square outside", unitSquare, Pt(1.5, 0.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inside(tt.poly, tt.p); got != tt.want {
				t.Errorf("Inside(%v, %v) = %v, want %v", tt.poly, tt.p, got, tt.want)
			}
		})
	}
}

func TestConvexPolygon(t *testing.T) {
	shifted := []Point{Pt(0.5, 0.5), Pt(1.5, 0.5), Pt(1.5, 1.5), Pt(0.5, 1.5)}

	got := ConvexPolygon(unitSquare, shifted)
	for _, want := range []Point{Pt(0.5, 0.5), Pt(1, 0.5), Pt(1, 1), Pt(0.5, 1)} {
		if !hasPoint(got, want) {
			t.Errorf("missing corner %v in %v", want, got)
		}
	}
	for _, p := range got {
		if p.X < 0.5 || p.X > 1 || p.Y < 0.5 || p.Y > 1 {
			t.Errorf("point %v outside [0.5,1]^2", p)
		}
	}

	far := []Point{Pt(5, 5), Pt(6, 5), Pt(6, 6), Pt(5, 6)}
	if got := ConvexPolygon(unitSquare, far); len(got) != 0 {
		t.Errorf("disjoint squares: got %v, want nothing", got)
	}
}

func TestConvexPolygon_TouchingVertex(t *testing.T) {
	// The vertex (3, 4) of a lies on the edge (1,2)-(4,5) of b, and the
	// regions share nothing else.
	a := []Point{Pt(1, 1), Pt(5, 1), Pt(4, 3), Pt(3, 4)}
	b := []Point{Pt(0, 2), Pt(4, 5), Pt(1, 2)}
	if Orient(b[0], b[1], b[2]) < 0 {
		b[1], b[2] = b[2], b[1]
	}

	for _, tt := range []struct {
		name     string
		sub, clp []Point
	}{
		{"a clipped by b", a, b},
		{"b clipped by a", b, a},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvexPolygon(tt.sub, tt.clp)
			if len(got) == 0 {
				t.Fatal("touching regions reported disjoint")
			}
			for _, p := range got {
				if p != Pt(3, 4) {
					t.Errorf("got %v, want only (3, 4)", got)
					break
				}
			}
		})
	}
}

func TestConvexPolygon_DegenerateSubject(t *testing.T) {
	// A single point inside survives as itself.
	got := ConvexPolygon([]Point{Pt(0.25, 0.75)}, unitSquare)
	if len(got) == 0 {
		t.Fatal("inside point was clipped away")
	}
	for _, p := range got {
		if p != Pt(0.25, 0.75) {
			t.Errorf("got %v, want (0.25, 0.75) only", got)
		}
	}

	// A point outside is removed.
	if got := ConvexPolygon([]Point{Pt(2, 2)}, unitSquare); len(got) != 0 {
		t.Errorf("outside point: got %v, want nothing", got)
	}

	// A segment along the top edge keeps the exact corners.
	got = ConvexPolygon([]Point{Pt(-1, 0), Pt(2, 0)}, unitSquare)
	for _, want := range []Point{Pt(0, 0), Pt(1, 0)} {
		if !hasPoint(got, want) {
			t.Errorf("missing %v in %v", want, got)
		}
	}
}
