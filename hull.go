package poxel

import "slices"

// ConvexHull returns the convex hull of pts as a ConvexPolygon.
//
// Any input is accepted: no points gives Empty, one distinct point gives a
// Point, colinear points give the Line between the two extreme points, and
// everything else gives a counter-clockwise Polygon with no duplicate or
// colinear vertices. pts is not modified.
//
// Andrew's monotone chain, O(n log n).
func ConvexHull(pts []Point) ConvexPolygon {
	if len(pts) == 0 {
		return EmptyPolygon()
	}

	sorted := slices.Clone(pts)
	slices.SortFunc(sorted, comparePoints)
	sorted = slices.CompactFunc(sorted, Point.Equal)

	switch len(sorted) {
	case 1:
		return PointPolygon(sorted[0])
	case 2:
		return LinePolygon(sorted[0], sorted[1])
	}

	// Lower chain left to right, then upper chain right to left.
	// Only strict left turns survive, so colinear points are dropped.
	hull := make([]Point, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// The last point repeats the first.
	hull = hull[:len(hull)-1]

	if len(hull) < 3 {
		// All input points were colinear: the chains met at the extremes.
		return LinePolygon(sorted[0], sorted[len(sorted)-1])
	}
	return fromCCW(slices.Clip(hull))
}

// comparePoints orders points lexicographically for slices.SortFunc.
func comparePoints(a, b Point) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
