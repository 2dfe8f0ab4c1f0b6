package gosie4d

import "math"

const (
	// wClipMargin keeps clipped endpoints clear of the projection
	// singularity at W = projection distance.
	wClipMargin = 0.05

	// viewportPad widens the screen-space clip rectangle so edges do
	// not visibly pop at the exact window border.
	viewportPad = 100.0
)

// ClipWNear clips a view-space segment against the W near boundary at
// maxW. An endpoint at or past the boundary is pulled back onto it by
// linear interpolation along the segment. Returns ok=false when both
// endpoints are past the boundary and the edge must be discarded.
func ClipWNear(a, b Vector4, maxW float64) (Vector4, Vector4, bool) {
	if a.W >= maxW && b.W >= maxW {
		return a, b, false
	}
	if a.W >= maxW {
		t := (maxW - a.W) / (b.W - a.W)
		a = a.Lerp(b, t)
	} else if b.W >= maxW {
		t := (maxW - b.W) / (a.W - b.W)
		b = b.Lerp(a, t)
	}
	return a, b, true
}

// Cohen-Sutherland outcodes.
const (
	outcodeLeft = 1 << iota
	outcodeRight
	outcodeBottom
	outcodeTop
)

func computeOutcode(x, y, minX, maxX, minY, maxY float64) int {
	code := 0
	if x < minX {
		code |= outcodeLeft
	} else if x > maxX {
		code |= outcodeRight
	}
	if y < minY {
		code |= outcodeBottom
	} else if y > maxY {
		code |= outcodeTop
	}
	return code
}

// ClipToViewport clips a screen-space segment against the padded
// viewport rectangle using Cohen-Sutherland outcodes. A segment fully
// outside one boundary is rejected (ok=false); a partially outside
// segment is truncated to the boundary intersection. Non-finite input
// coordinates are rejected outright.
func ClipToViewport(x1, y1, x2, y2 float64, screenWidth, screenHeight int) (float64, float64, float64, float64, bool) {
	if math.IsNaN(x1) || math.IsNaN(y1) || math.IsNaN(x2) || math.IsNaN(y2) ||
		math.IsInf(x1, 0) || math.IsInf(y1, 0) || math.IsInf(x2, 0) || math.IsInf(y2, 0) {
		return 0, 0, 0, 0, false
	}

	minX := -viewportPad
	maxX := float64(screenWidth) + viewportPad
	minY := -viewportPad
	maxY := float64(screenHeight) + viewportPad

	code1 := computeOutcode(x1, y1, minX, maxX, minY, maxY)
	code2 := computeOutcode(x2, y2, minX, maxX, minY, maxY)

	for {
		if code1|code2 == 0 {
			return x1, y1, x2, y2, true
		}
		if code1&code2 != 0 {
			return 0, 0, 0, 0, false
		}

		code := code1
		if code == 0 {
			code = code2
		}

		var x, y float64
		switch {
		case code&outcodeTop != 0:
			x = x1 + (x2-x1)*(maxY-y1)/(y2-y1)
			y = maxY
		case code&outcodeBottom != 0:
			x = x1 + (x2-x1)*(minY-y1)/(y2-y1)
			y = minY
		case code&outcodeRight != 0:
			y = y1 + (y2-y1)*(maxX-x1)/(x2-x1)
			x = maxX
		default:
			y = y1 + (y2-y1)*(minX-x1)/(x2-x1)
			x = minX
		}

		if code == code1 {
			x1, y1 = x, y
			code1 = computeOutcode(x1, y1, minX, maxX, minY, maxY)
		} else {
			x2, y2 = x, y
			code2 = computeOutcode(x2, y2, minX, maxX, minY, maxY)
		}
	}
}
