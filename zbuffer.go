package gosie4d

import "math"

// DepthBuffer is an optional per-pixel depth store for crude hidden
// surface tests on wireframes. It is reset to +Inf at the start of each
// frame and only ever written during that frame's draw pass.
type DepthBuffer struct {
	width  int
	height int
	depth  []float64
}

func NewDepthBuffer(width, height int) *DepthBuffer {
	b := &DepthBuffer{
		width:  width,
		height: height,
		depth:  make([]float64, width*height),
	}
	b.Reset()
	return b
}

func (b *DepthBuffer) Width() int  { return b.width }
func (b *DepthBuffer) Height() int { return b.height }

// Reset fills the buffer with +Inf.
func (b *DepthBuffer) Reset() {
	for i := range b.depth {
		b.depth[i] = math.Inf(1)
	}
}

// At returns the stored depth, or +Inf for out-of-bounds pixels.
func (b *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return math.Inf(1)
	}
	return b.depth[y*b.width+x]
}

// TestAndSet reports whether depth is closer than the stored value at
// (x, y) and records it if so. Out-of-bounds pixels always pass without
// being recorded.
func (b *DepthBuffer) TestAndSet(x, y int, depth float64) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return true
	}
	i := y*b.width + x
	if depth < b.depth[i] {
		b.depth[i] = depth
		return true
	}
	return false
}

// MarkLine walks the rasterized pixel span of a segment, linearly
// interpolating depth between the endpoints, and reports whether any
// pixel of the span passed the depth test. All passing pixels are
// written. This is a line-rasterization approximation, good enough for
// wireframes but not for filled faces.
func (b *DepthBuffer) MarkLine(x1, y1, x2, y2 int, d1, d2 float64) bool {
	steps := max(max(abs(x2-x1), abs(y2-y1)), 1)
	visible := false
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + int(math.Round(t*float64(x2-x1)))
		y := y1 + int(math.Round(t*float64(y2-y1)))
		if x < 0 || x >= b.width || y < 0 || y >= b.height {
			continue
		}
		d := d1 + t*(d2-d1)
		idx := y*b.width + x
		if d < b.depth[idx] {
			b.depth[idx] = d
			visible = true
		}
	}
	return visible
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
