package poxel

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= epsilon }

func nearPoint(p, q Point) bool { return near(p.X, q.X) && near(p.Y, q.Y) }

// unitSquare returns the square [0,1]^2.
func unitSquare() ConvexPolygon {
	return NewConvexPolygon(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
}

func square(x0, y0, x1, y1 float64) ConvexPolygon {
	return NewConvexPolygon(Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1))
}

func mustHullMask(t testing.TB, p ConvexPolygon) *Mask {
	t.Helper()
	m, err := NewHullMask(p)
	if err != nil {
		t.Fatalf("NewHullMask(%v) error = %v", p, err)
	}
	return m
}

// mustImageMask builds an image-backed mask from rows drawn with '#' for
// set pixels, e.g. "#..#".
func mustImageMask(t testing.TB, rows ...string) *Mask {
	t.Helper()
	m, err := NewMaskFromImage(mustBitset(t, rows...), Identity())
	if err != nil {
		t.Fatalf("NewMaskFromImage() error = %v", err)
	}
	return m
}

func mustBitset(t testing.TB, rows ...string) *Bitset {
	t.Helper()
	bools := make([][]bool, len(rows))
	for y, row := range rows {
		bools[y] = make([]bool, len(row))
		for x, c := range row {
			bools[y][x] = c == '#'
		}
	}
	b, err := NewBitsetFromRows(bools)
	if err != nil {
		t.Fatalf("NewBitsetFromRows() error = %v", err)
	}
	return b
}
