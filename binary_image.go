package poxel

import (
	"fmt"
	"image"
	"math/bits"
	"slices"
)

// BinaryImage is a read-only width x height grid of on/off pixels.
//
// Pixel (x, y) covers the unit square [x, x+1] x [y, y+1] of the image's
// pixel space. IsSet must report false for coordinates outside the image
// instead of failing. Implementations must be safe for concurrent reads;
// the collision detector never mutates an image.
type BinaryImage interface {
	Width() int
	Height() int
	IsSet(x, y int) bool
}

// Bitset is a BinaryImage backed by packed 64-bit words, one bit per pixel,
// rows padded to a whole number of words.
type Bitset struct {
	width  int
	height int
	stride int // words per row
	words  []uint64
}

// NewBitset creates a new image with all pixels unset.
func NewBitset(width, height int) *Bitset {
	width = max(width, 0)
	height = max(height, 0)
	stride := (width + 63) / 64
	return &Bitset{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// NewBitsetFromRows creates an image from rows of booleans, row 0 first.
// All rows must have the same non-zero length.
func NewBitsetFromRows(rows [][]bool) (*Bitset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("poxel: row %d has %d pixels, want %d: %w", y, len(row), width, ErrRaggedRows)
		}
	}

	b := NewBitset(width, len(rows))
	for y, row := range rows {
		for x, on := range row {
			if on {
				b.Set(x, y, true)
			}
		}
	}
	return b, nil
}

// NewBitsetFromImage creates an image from img's alpha channel.
// A pixel is set when its 8-bit alpha is at least threshold;
// a threshold of 0 is treated as 1 so fully transparent pixels stay unset.
func NewBitsetFromImage(img image.Image, threshold uint8) *Bitset {
	threshold = max(threshold, 1)
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := NewBitset(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			if uint8(a>>8) >= threshold {
				b.Set(x, y, true)
			}
		}
	}
	return b
}

// Width returns the image width.
func (b *Bitset) Width() int { return b.width }

// Height returns the image height.
func (b *Bitset) Height() int { return b.height }

// IsSet reports whether pixel (x, y) is on.
// Returns false for coordinates outside the image bounds.
func (b *Bitset) IsSet(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.words[y*b.stride+x/64]&(1<<(uint(x)%64)) != 0
}

// Set turns pixel (x, y) on or off.
// Coordinates outside the image bounds are ignored.
//
// Set is meant for building an image; an image shared with collision
// queries must not be modified.
func (b *Bitset) Set(x, y int, on bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.stride + x/64
	bit := uint64(1) << (uint(x) % 64)
	if on {
		b.words[i] |= bit
	} else {
		b.words[i] &^= bit
	}
}

// Count returns the number of set pixels.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Clone creates a copy of the image.
func (b *Bitset) Clone() *Bitset {
	c := *b
	c.words = slices.Clone(b.words)
	return &c
}

// Run is a horizontal span of set pixels [Start, End) within one row.
type Run struct {
	Start, End int
}

// RunLength is a BinaryImage stored as sorted, non-overlapping runs per
// row. It suits large images with long solid spans.
type RunLength struct {
	width  int
	height int
	rows   [][]Run
}

// NewRunLength encodes any BinaryImage as runs.
func NewRunLength(src BinaryImage) *RunLength {
	w, h := src.Width(), src.Height()
	r := &RunLength{width: w, height: h, rows: make([][]Run, h)}
	for y := 0; y < h; y++ {
		var row []Run
		start := -1
		for x := 0; x <= w; x++ {
			on := x < w && src.IsSet(x, y)
			switch {
			case on && start < 0:
				start = x
			case !on && start >= 0:
				row = append(row, Run{Start: start, End: x})
				start = -1
			}
		}
		r.rows[y] = row
	}
	return r
}

// Width returns the image width.
func (r *RunLength) Width() int { return r.width }

// Height returns the image height.
func (r *RunLength) Height() int { return r.height }

// IsSet reports whether pixel (x, y) is on.
// Returns false for coordinates outside the image bounds.
func (r *RunLength) IsSet(x, y int) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	row := r.rows[y]
	// First run that ends after x.
	i, _ := slices.BinarySearchFunc(row, x, func(run Run, x int) int {
		if run.End <= x {
			return -1
		}
		return 1
	})
	return i < len(row) && row[i].Start <= x
}

// Runs returns the runs of row y. The slice must not be modified.
func (r *RunLength) Runs(y int) []Run {
	if y < 0 || y >= r.height {
		return nil
	}
	return r.rows[y]
}

// footprintCorners returns pixel corners whose convex hull equals the hull
// of the image's set pixels. Only the leftmost and rightmost set pixel of
// each row can contribute, so interior pixels are skipped.
func footprintCorners(img BinaryImage) []Point {
	var pts []Point
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		first, last := -1, -1
		for x := 0; x < w; x++ {
			if img.IsSet(x, y) {
				if first < 0 {
					first = x
				}
				last = x
			}
		}
		if first < 0 {
			continue
		}
		fy := float64(y)
		pts = append(pts,
			Point{X: float64(first), Y: fy},
			Point{X: float64(first), Y: fy + 1},
			Point{X: float64(last + 1), Y: fy},
			Point{X: float64(last + 1), Y: fy + 1},
		)
	}
	return pts
}
