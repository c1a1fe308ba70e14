// Package poxel provides narrow-phase, pixel-perfect collision detection
// for 2D objects under affine transformation.
//
// # Overview
//
// Every object is described by a Mask in its own local coordinate space and
// placed in the world by a Matrix (translation, rotation, anisotropic
// scale, shear). A Mask is either a bare convex polygon, or a convex polygon
// paired with a binary image whose footprint the polygon over-approximates.
// The polygon lets most queries finish without touching a single pixel.
//
// # Quick Start
//
//	import "github.com/gogpu/poxel"
//
//	img := poxel.NewBitsetFromImage(sprite, 128)
//	ship, err := poxel.NewMaskFromImage(img, poxel.Identity())
//	if err != nil {
//		return err
//	}
//	rock, _ := poxel.NewHullMask(poxel.NewConvexPolygon(
//		poxel.Pt(0, 0), poxel.Pt(10, 0), poxel.Pt(5, 8),
//	))
//
//	hit, err := poxel.Collide(
//		ship, poxel.ObjectTransform(poxel.Pt(8, 8), poxel.Pt(100, 40), 0.3, 1, 1),
//		rock, poxel.Translate(104, 44),
//	)
//
// # Geometry
//
// ConvexPolygon is a closed sum type over Empty, Point, Line and Polygon,
// always stored in its minimal form. ConvexHull builds one from any point
// set and Intersect computes the exact intersection of two, including all
// degenerate cases (touching vertices, shared edges, containment).
// Geometric correctness is the target; robustness against floating-point
// rounding is not guaranteed.
//
// # Collision
//
// Collide prunes with transformed bounding boxes, then with the
// intersection of the transformed hulls. Hull-only masks collide when their
// hulls intersect. When both masks carry images, the images are sampled
// over the hull intersection through the inverse transforms; see Detector
// for the sampling policy and its options.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers the closed square [x, x+1] x [y, y+1]
//
// "Counter-clockwise" refers to a positive signed area in these
// coordinates.
//
// # Concurrency
//
// Masks, images and Detectors are read-only during queries and may be
// shared between goroutines. Collide itself is synchronous; CollideAll runs
// independent pairs in parallel.
package poxel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
