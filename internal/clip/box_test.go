package clip

import (
	"math"
	"testing"
)

func TestClipSegment_FullyInside(t *testing.T) {
	b := Box{Max: Pt(100, 100)}

	t0, t1, ok := ClipSegment(b, Pt(10, 10), Pt(90, 90))

	if !ok {
		t.Fatal("expected segment to survive")
	}
	if t0 != 0 || t1 != 1 {
		t.Errorf("got [%v, %v], want exactly [0, 1]", t0, t1)
	}
}

func TestClipSegment_FullyOutside(t *testing.T) {
	b := Box{Max: Pt(100, 100)}

	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"left", Pt(-50, 50), Pt(-10, 50)},
		{"right", Pt(110, 50), Pt(150, 50)},
		{"top", Pt(50, -50), Pt(50, -10)},
		{"bottom", Pt(50, 110), Pt(50, 150)},
		{"diagonal outside", Pt(-10, -10), Pt(-5, -5)},
		{"misses corner", Pt(-10, 5), Pt(5, -10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := ClipSegment(b, tt.p0, tt.p1); ok {
				t.Errorf("ClipSegment(%v, %v) survived, want rejected", tt.p0, tt.p1)
			}
		})
	}
}

func TestClipSegment_Crossing(t *testing.T) {
	b := Box{Max: Pt(100, 100)}

	tests := []struct {
		name           string
		p0, p1         Point
		wantT0, wantT1 float64
	}{
		{"from left", Pt(-50, 50), Pt(50, 50), 0.5, 1},
		{"to right", Pt(50, 50), Pt(150, 50), 0, 0.5},
		{"from top", Pt(50, -100), Pt(50, 100), 0.5, 1},
		{"to bottom", Pt(50, 0), Pt(50, 200), 0, 0.5},
		{"both sides", Pt(-100, 50), Pt(200, 50), 1.0 / 3, 2.0 / 3},
		{"diagonal", Pt(-50, -50), Pt(150, 150), 0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok := ClipSegment(b, tt.p0, tt.p1)
			if !ok {
				t.Fatal("expected segment to survive")
			}
			if math.Abs(t0-tt.wantT0) > 1e-12 || math.Abs(t1-tt.wantT1) > 1e-12 {
				t.Errorf("got [%v, %v], want [%v, %v]", t0, t1, tt.wantT0, tt.wantT1)
			}
		})
	}
}

func TestClipSegment_Boundary(t *testing.T) {
	b := Box{Max: Pt(100, 100)}

	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"on left edge", Pt(0, 20), Pt(0, 80)},
		{"on top edge", Pt(20, 0), Pt(80, 0)},
		{"corner to corner", Pt(0, 0), Pt(100, 100)},
		{"touches corner", Pt(100, 100), Pt(150, 150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := ClipSegment(b, tt.p0, tt.p1); !ok {
				t.Errorf("ClipSegment(%v, %v) rejected, want kept", tt.p0, tt.p1)
			}
		})
	}
}

func TestBox_Contains(t *testing.T) {
	b := Box{Min: Pt(1, 1), Max: Pt(3, 2)}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(2, 1.5), true},
		{Pt(1, 1), true},
		{Pt(3, 2), true},
		{Pt(0.999, 1.5), false},
		{Pt(2, 2.001), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Box.Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
