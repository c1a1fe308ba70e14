// Package scene loads YAML descriptions of collision objects for the
// pxcoll command.
//
// A scene lists objects, each with either an image (whose alpha channel
// becomes a binary mask) or an explicit convex polygon, plus its placement:
//
//	objects:
//	  - name: ship
//	    image: ship.png
//	    threshold: 128
//	    origin: [8, 8]
//	    position: [100, 40]
//	    angle: 0.5
//	    scale: [1, 1]
//	  - name: rock
//	    polygon: [[0, 0], [10, 0], [5, 8]]
//	    position: [104, 44]
package scene

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/poxel"
)

// DefaultThreshold is the alpha threshold used when an image object does
// not set one.
const DefaultThreshold = 128

// ErrInvalid is returned for scenes that decode but cannot be built.
var ErrInvalid = errors.New("scene: invalid scene")

// Scene is a decoded scene file.
type Scene struct {
	Objects []Object `yaml:"objects"`
}

// Object is one collision object.
type Object struct {
	Name      string       `yaml:"name"`
	Image     string       `yaml:"image,omitempty"`
	Polygon   [][2]float64 `yaml:"polygon,omitempty"`
	Threshold uint8        `yaml:"threshold,omitempty"` // 0 = DefaultThreshold
	Origin    [2]float64   `yaml:"origin"`
	Position  [2]float64   `yaml:"position"`
	Angle     float64      `yaml:"angle"`           // radians
	Scale     *[2]float64  `yaml:"scale,omitempty"` // nil = [1, 1]
}

// ImageLoader decodes the image stored at path.
type ImageLoader func(path string) (image.Image, error)

// Load reads and validates a scene file. Relative image paths are resolved
// against the directory of the scene file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range s.Objects {
		if img := s.Objects[i].Image; img != "" && !filepath.IsAbs(img) {
			s.Objects[i].Image = filepath.Join(dir, img)
		}
	}
	return s, nil
}

// Parse decodes and validates a scene. Unknown keys are rejected.
func Parse(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every object can be turned into a mask.
func (s *Scene) Validate() error {
	seen := make(map[string]bool, len(s.Objects))
	for i, o := range s.Objects {
		if o.Name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalid, i)
		}
		if seen[o.Name] {
			return fmt.Errorf("%w: duplicate object name %q", ErrInvalid, o.Name)
		}
		seen[o.Name] = true

		switch {
		case o.Image != "" && len(o.Polygon) > 0:
			return fmt.Errorf("%w: object %q sets both image and polygon", ErrInvalid, o.Name)
		case o.Image == "" && len(o.Polygon) == 0:
			return fmt.Errorf("%w: object %q needs an image or a polygon", ErrInvalid, o.Name)
		}

		sx, sy := o.scale()
		if sx == 0 || sy == 0 {
			return fmt.Errorf("%w: object %q has zero scale", ErrInvalid, o.Name)
		}
	}
	return nil
}

// Transform returns the object's placement in world space.
func (o Object) Transform() poxel.Matrix {
	sx, sy := o.scale()
	return poxel.ObjectTransform(
		poxel.Pt(o.Origin[0], o.Origin[1]),
		poxel.Pt(o.Position[0], o.Position[1]),
		o.Angle, sx, sy,
	)
}

// Mask builds the object's collision mask. load is only called for image
// objects.
func (o Object) Mask(load ImageLoader) (*poxel.Mask, error) {
	if o.Image == "" {
		pts := make([]poxel.Point, len(o.Polygon))
		for i, p := range o.Polygon {
			pts[i] = poxel.Pt(p[0], p[1])
		}
		m, err := poxel.NewHullMask(poxel.NewConvexPolygon(pts...))
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", o.Name, err)
		}
		return m, nil
	}

	img, err := load(o.Image)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", o.Name, err)
	}
	threshold := o.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	m, err := poxel.NewMaskFromImage(poxel.NewBitsetFromImage(img, threshold), poxel.Identity())
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", o.Name, err)
	}
	return m, nil
}

func (o Object) scale() (x, y float64) {
	if o.Scale == nil {
		return 1, 1
	}
	return o.Scale[0], o.Scale[1]
}
