package poxel

import "errors"

var (
	// ErrSingularMatrix is returned by Matrix.Invert when the matrix has no inverse.
	ErrSingularMatrix = errors.New("poxel: matrix is not invertible")

	// ErrSingularTransform is returned by Collide when an object transform
	// cannot be inverted. Pixel back-mapping needs a valid inverse, so such
	// queries fail instead of reporting "no collision".
	ErrSingularTransform = errors.New("poxel: singular object transform")

	// ErrEmptyMask is returned when a mask would cover no points at all.
	ErrEmptyMask = errors.New("poxel: mask is empty")

	// ErrEmptyImage is returned when binary image rows contain no pixels.
	ErrEmptyImage = errors.New("poxel: image has no pixels")

	// ErrRaggedRows is returned when binary image rows differ in length.
	ErrRaggedRows = errors.New("poxel: image rows have different lengths")
)
