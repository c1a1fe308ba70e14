package clip

// Box is a closed axis-aligned rectangle.
type Box struct {
	Min, Max Point
}

// Outcode constants for Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

// outcode computes the Cohen-Sutherland outcode for a point.
// Points on the boundary are inside.
func (b Box) outcode(p Point) int {
	code := outcodeInside

	if p.X < b.Min.X {
		code |= outcodeLeft
	} else if p.X > b.Max.X {
		code |= outcodeRight
	}

	if p.Y < b.Min.Y {
		code |= outcodeTop
	} else if p.Y > b.Max.Y {
		code |= outcodeBottom
	}

	return code
}

// Contains reports whether p lies in the closed box.
func (b Box) Contains(p Point) bool {
	return b.outcode(p) == outcodeInside
}

// ClipSegment clips the segment p0-p1 to the box using the Cohen-Sutherland
// algorithm and returns the surviving parameter range [t0, t1], where t=0
// is p0 and t=1 is p1. ok is false if no part of the segment lies in the
// box. A segment entirely inside returns exactly 0 and 1.
func ClipSegment(b Box, p0, p1 Point) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	code0 := b.outcode(p0)
	code1 := b.outcode(p1)
	d := p1.Sub(p0)

	// Each pass moves one end onto a boundary line; rounding can leave a
	// corner point a hair outside, so the passes are bounded.
	for range 8 {
		if (code0 | code1) == 0 {
			// Both inside - trivially accept
			return t0, t1, true
		}
		if (code0 & code1) != 0 {
			// Both outside same region - trivially reject
			return 0, 0, false
		}

		// One end outside, move it onto the boundary
		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var t float64
		var p Point
		switch {
		case (codeOut & outcodeTop) != 0:
			t = (b.Min.Y - p0.Y) / d.Y
			p = p0.Lerp(p1, t)
			p.Y = b.Min.Y
		case (codeOut & outcodeBottom) != 0:
			t = (b.Max.Y - p0.Y) / d.Y
			p = p0.Lerp(p1, t)
			p.Y = b.Max.Y
		case (codeOut & outcodeRight) != 0:
			t = (b.Max.X - p0.X) / d.X
			p = p0.Lerp(p1, t)
			p.X = b.Max.X
		case (codeOut & outcodeLeft) != 0:
			t = (b.Min.X - p0.X) / d.X
			p = p0.Lerp(p1, t)
			p.X = b.Min.X
		}

		if codeOut == code0 {
			t0 = max(t0, t)
			code0 = b.outcode(p)
		} else {
			t1 = min(t1, t)
			code1 = b.outcode(p)
		}
	}
	return t0, t1, t0 <= t1
}
