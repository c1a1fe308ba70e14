package poxel

import (
	"fmt"
	"log/slog"
)

// Detector answers pairwise narrow-phase collision queries.
//
// A Detector is immutable after construction and safe for concurrent use.
// Queries run synchronously on the calling goroutine.
type Detector struct {
	opts detectorOptions
}

// NewDetector creates a Detector with the given options.
func NewDetector(opts ...DetectorOption) *Detector {
	o := defaultDetectorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Detector{opts: o}
}

var defaultDetector = NewDetector()

// Collide reports whether mask a placed by ta and mask b placed by tb
// collide, using a Detector with default options.
//
// See Detector.Collide for details.
func Collide(a *Mask, ta Matrix, b *Mask, tb Matrix) (bool, error) {
	return defaultDetector.Collide(a, ta, b, tb)
}

// Collide reports whether mask a placed in world space by ta and mask b
// placed by tb collide.
//
// The query is pruned in stages: the transformed local bounding boxes, then
// the intersection of the transformed hulls. If either mask is hull-only, a
// non-empty hull intersection is a collision. If both masks carry images,
// the images are sampled over the hull intersection and a collision needs a
// point that is set in both.
//
// Collide is pure and symmetric: Collide(a, ta, b, tb) and
// Collide(b, tb, a, ta) perform the same computation. It returns an error
// wrapping ErrSingularTransform (and ErrSingularMatrix) when a transform
// cannot be inverted.
func (d *Detector) Collide(a *Mask, ta Matrix, b *Mask, tb Matrix) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("poxel: collide with nil mask: %w", ErrEmptyMask)
	}

	pa, err := newProbe(a, ta)
	if err != nil {
		return false, fmt.Errorf("poxel: first object: %w", err)
	}
	pb, err := newProbe(b, tb)
	if err != nil {
		return false, fmt.Errorf("poxel: second object: %w", err)
	}
	if b.less(tb, a, ta) {
		pa, pb = pb, pa
	}

	log := d.logger()

	if !pa.mask.TransformedBounds(pa.world).Intersects(pb.mask.TransformedBounds(pb.world)) {
		log.Debug("poxel: bounding boxes disjoint")
		return false, nil
	}

	pa.hull = pa.mask.TransformedHull(pa.world)
	pb.hull = pb.mask.TransformedHull(pb.world)
	region := Intersect(pa.hull, pb.hull)
	if region.IsEmpty() {
		log.Debug("poxel: hulls disjoint")
		return false, nil
	}

	switch {
	case pa.hasImage() && pb.hasImage():
	case (pa.hasImage() || pb.hasImage()) && d.opts.mixedPixelTest:
	default:
		log.Debug("poxel: hull overlap", "region", region.Kind())
		return true, nil
	}

	s := newSampler(pa, pb, d.opts.maxSubsamples)
	log.Debug("poxel: pixel test",
		"region", region.Kind(),
		"subsamples", s.k,
		"step", s.step,
	)
	return s.collide(region), nil
}

// logger returns the detector's logger or the package logger.
func (d *Detector) logger() *slog.Logger {
	if d.opts.logger != nil {
		return d.opts.logger
	}
	return Logger()
}

// probe is one operand of a query resolved into world space.
type probe struct {
	mask  *Mask
	world Matrix // local -> world

	// Image-backed masks only.
	toWorld Matrix // pixel -> world
	toPixel Matrix // world -> pixel

	hull ConvexPolygon // hull in world space, filled in after pruning
}

func newProbe(m *Mask, t Matrix) (probe, error) {
	if _, err := t.Invert(); err != nil {
		return probe{}, fmt.Errorf("%w: %w", ErrSingularTransform, err)
	}
	p := probe{mask: m, world: t}
	if m.HasImage() {
		p.toWorld = t.Multiply(m.imageTransform)
		inv, err := p.toWorld.Invert()
		if err != nil {
			return probe{}, fmt.Errorf("%w: %w", ErrSingularTransform, err)
		}
		p.toPixel = inv
	}
	return p, nil
}

func (p *probe) hasImage() bool { return p.mask.HasImage() }
