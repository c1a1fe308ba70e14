package poxel

import "fmt"

// Mask is the collision shape of an object in its local coordinate space.
//
// A hull-only mask is exactly its convex hull. An image-backed mask pairs a
// binary image with a hull that over-approximates the image's footprint;
// the image transform maps the image's pixel space into local space. The
// over-approximation is the caller's responsibility when the hull is
// supplied explicitly (NewImageMask) and is guaranteed when the hull is
// derived from the pixels (NewMaskFromImage).
//
// Masks are immutable and may be shared across goroutines and reused for
// any number of queries.
type Mask struct {
	hull           ConvexPolygon
	image          BinaryImage
	imageTransform Matrix
	imageInverse   Matrix
	bounds         Rect
}

// NewHullMask creates a mask that is exactly the given convex region.
// Returns ErrEmptyMask for an empty hull.
func NewHullMask(hull ConvexPolygon) (*Mask, error) {
	bounds, ok := hull.Bounds()
	if !ok {
		return nil, ErrEmptyMask
	}
	return &Mask{
		hull:           hull,
		imageTransform: Identity(),
		imageInverse:   Identity(),
		bounds:         bounds,
	}, nil
}

// NewImageMask creates an image-backed mask from a precomputed hull.
//
// hull is in local space and must contain the footprint of every set pixel
// of img after mapping through imageTransform; this is not verified.
// imageTransform must be invertible.
func NewImageMask(hull ConvexPolygon, img BinaryImage, imageTransform Matrix) (*Mask, error) {
	if img == nil {
		return nil, fmt.Errorf("poxel: image mask without image: %w", ErrEmptyMask)
	}
	bounds, ok := hull.Bounds()
	if !ok {
		return nil, ErrEmptyMask
	}
	inv, err := imageTransform.Invert()
	if err != nil {
		return nil, fmt.Errorf("poxel: image transform: %w", err)
	}
	return &Mask{
		hull:           hull,
		image:          img,
		imageTransform: imageTransform,
		imageInverse:   inv,
		bounds:         bounds,
	}, nil
}

// NewMaskFromImage creates an image-backed mask whose hull is the convex
// hull of the corners of every set pixel, mapped through imageTransform.
// Returns ErrEmptyMask when no pixel is set.
func NewMaskFromImage(img BinaryImage, imageTransform Matrix) (*Mask, error) {
	if img == nil {
		return nil, fmt.Errorf("poxel: image mask without image: %w", ErrEmptyMask)
	}
	corners := footprintCorners(img)
	if len(corners) == 0 {
		return nil, fmt.Errorf("poxel: %dx%d image has no set pixels: %w", img.Width(), img.Height(), ErrEmptyMask)
	}
	hull := ConvexHull(corners).Transform(imageTransform)
	return NewImageMask(hull, img, imageTransform)
}

// Hull returns the mask's convex hull in local space.
func (m *Mask) Hull() ConvexPolygon { return m.hull }

// Image returns the binary image, or nil for a hull-only mask.
func (m *Mask) Image() BinaryImage { return m.image }

// HasImage reports whether the mask is image-backed.
func (m *Mask) HasImage() bool { return m.image != nil }

// ImageTransform returns the map from image pixel space to local space.
// It is the identity for hull-only masks.
func (m *Mask) ImageTransform() Matrix { return m.imageTransform }

// Bounds returns the local axis-aligned bounding box of the hull.
func (m *Mask) Bounds() Rect { return m.bounds }

// TransformedHull returns the hull placed in world space by t.
// The image is never resampled; pixel queries are answered by mapping
// sample points back through the inverse transforms.
func (m *Mask) TransformedHull(t Matrix) ConvexPolygon {
	return m.hull.Transform(t)
}

// TransformedBounds returns an axis-aligned box containing the mask
// placed in world space by t. It is cheaper and looser than the bounds of
// TransformedHull.
func (m *Mask) TransformedBounds(t Matrix) Rect {
	return m.bounds.Transform(t)
}

// less gives a total order over (mask, transform) operands so that a
// query can be evaluated in the same order whichever way it was asked.
func (m *Mask) less(t Matrix, o *Mask, ot Matrix) bool {
	if t != ot {
		return t.less(ot)
	}
	if m.hull.less(o.hull) || o.hull.less(m.hull) {
		return m.hull.less(o.hull)
	}
	if m.HasImage() != o.HasImage() {
		return !m.HasImage()
	}
	if m.imageTransform != o.imageTransform {
		return m.imageTransform.less(o.imageTransform)
	}
	if m.HasImage() {
		if m.image.Width() != o.image.Width() {
			return m.image.Width() < o.image.Width()
		}
		return m.image.Height() < o.image.Height()
	}
	return false
}
