package poxel

import "testing"

func TestRasterizePolygonSquare(t *testing.T) {
	got := RasterizePolygon(square(1, 1, 3, 4), 5, 5)

	for y := range 5 {
		for x := range 5 {
			want := x >= 1 && x < 3 && y >= 1 && y < 4
			if got.IsSet(x, y) != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got.IsSet(x, y), want)
			}
		}
	}
}

func TestRasterizePolygonTriangle(t *testing.T) {
	// Right triangle covering the lower-left half of a 4x4 image.
	got := RasterizePolygon(NewConvexPolygon(Pt(0, 0), Pt(0, 4), Pt(4, 4)), 4, 4)

	// Pixels fully below the diagonal are set, pixels fully above are not.
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 3, true},
		{1, 3, true},
		{0, 2, true},
		{3, 0, false},
		{2, 0, false},
		{3, 1, false},
	}
	for _, tt := range tests {
		if got.IsSet(tt.x, tt.y) != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, !tt.want, tt.want)
		}
	}
}

func TestRasterizePolygonDegenerate(t *testing.T) {
	tests := []struct {
		name string
		p    ConvexPolygon
	}{
		{"empty", EmptyPolygon()},
		{"point", PointPolygon(Pt(1, 1))},
		{"line", LinePolygon(Pt(0, 0), Pt(3, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := RasterizePolygon(tt.p, 4, 4).Count(); n != 0 {
				t.Errorf("Count() = %d, want 0", n)
			}
		})
	}
}

func TestRasterizeRoundTripsThroughMask(t *testing.T) {
	img := RasterizePolygon(square(2, 2, 6, 5), 8, 8)
	m, err := NewMaskFromImage(img, Identity())
	if err != nil {
		t.Fatalf("NewMaskFromImage() error = %v", err)
	}
	if want := square(2, 2, 6, 5); !m.Hull().Equal(want) {
		t.Errorf("Hull() = %v, want %v", m.Hull(), want)
	}
}
