package poxel

import "log/slog"

// DetectorOption configures a Detector during creation.
// Use functional options to customize collision behavior.
//
// Example:
//
//	// Default detector
//	d := poxel.NewDetector()
//
//	// Denser sampling for heavily scaled-down objects
//	d := poxel.NewDetector(poxel.WithMaxSubsamples(8))
type DetectorOption func(*detectorOptions)

// detectorOptions holds optional configuration for Detector creation.
type detectorOptions struct {
	maxSubsamples  int
	mixedPixelTest bool
	logger         *slog.Logger
}

// DefaultMaxSubsamples is the default cap on per-axis subdivision of a
// driver pixel during pixel-perfect sampling.
const DefaultMaxSubsamples = 4

// defaultDetectorOptions returns the default detector options.
func defaultDetectorOptions() detectorOptions {
	return detectorOptions{
		maxSubsamples: DefaultMaxSubsamples,
		logger:        nil, // Falls back to the package logger at query time
	}
}

// WithMaxSubsamples caps how finely each pixel of the finer image is
// subdivided (per axis) when the other image's pixels are smaller in some
// direction. Values below 1 are treated as 1.
//
// Higher values reduce missed pixels for objects that are scaled down
// strongly, at quadratic cost.
func WithMaxSubsamples(n int) DetectorOption {
	return func(o *detectorOptions) {
		o.maxSubsamples = max(n, 1)
	}
}

// WithMixedPixelTest changes how an image-backed mask is tested against a
// hull-only mask. By default any overlap of the hulls is a collision. When
// enabled, the image is sampled inside the hull-only mask's region and a
// collision needs at least one set pixel there.
func WithMixedPixelTest(enabled bool) DetectorOption {
	return func(o *detectorOptions) {
		o.mixedPixelTest = enabled
	}
}

// WithLogger sets a logger for this detector only. Without it the detector
// logs through the package logger (see SetLogger).
func WithLogger(l *slog.Logger) DetectorOption {
	return func(o *detectorOptions) {
		o.logger = l
	}
}
