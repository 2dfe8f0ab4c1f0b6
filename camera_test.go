package gosie4d

import (
	"math"
	"testing"
)

func TestWShrinkMonotonicAndSymmetric(t *testing.T) {
	c := NewCamera(800, 600)

	prev := math.Inf(1)
	for _, w := range []float64{0, 1, 5, 50} {
		x, _, _ := c.ProjectTo3D(NewVector4(1, 0, 0, w))
		if x >= prev {
			t.Errorf("|w|=%v: projected x %v did not shrink below %v", w, x, prev)
		}
		prev = x

		xNeg, _, _ := c.ProjectTo3D(NewVector4(1, 0, 0, -w))
		if !almostEqual(x, xNeg) {
			t.Errorf("w=%v: +w and -w project differently (%v vs %v)", w, x, xNeg)
		}
	}
}

func TestProjectAnalyticHypercubeVertex(t *testing.T) {
	// Vertex (0.5, 0.5, 0.5, 0.5) of a size-1 tesseract under the
	// default camera: w_scale = 1/1.15, screen = (465.22, 234.78)
	// before rounding.
	c := NewCamera(800, 600)

	s := NewTesseract(1)
	var vertex Vector4
	found := false
	for _, v := range s.BaseVertices() {
		if vectorsAlmostEqual(v, NewVector4(0.5, 0.5, 0.5, 0.5), 1e-12) {
			vertex = v
			found = true
		}
	}
	if !found {
		t.Fatal("tesseract has no vertex (0.5, 0.5, 0.5, 0.5)")
	}

	view := c.WorldToView(vertex)
	pt, _ := c.Project(view)
	if pt.X != 465 || pt.Y != 235 {
		t.Errorf("projected to (%d, %d), want (465, 235)", pt.X, pt.Y)
	}
}

func TestProjectBatchMatchesSingle(t *testing.T) {
	c := NewCamera(800, 600)
	verts := []Vector4{
		NewVector4(0.5, 0.5, 5.5, 0.5),
		NewVector4(-1, 2, 3, -4),
		NewVector4(0, 0, 0, 0),
		NewVector4(1.7, -0.3, 8, 12),
	}

	points, depths := c.ProjectBatch(verts, nil, nil)
	if len(points) != len(verts) || len(depths) != len(verts) {
		t.Fatalf("batch sizes: %d points, %d depths, want %d", len(points), len(depths), len(verts))
	}
	for i, v := range verts {
		pt, d := c.Project(v)
		if points[i] != pt {
			t.Errorf("vertex %d: batch %+v, single %+v", i, points[i], pt)
		}
		if !almostEqual(depths[i], d) {
			t.Errorf("vertex %d: batch depth %v, single %v", i, depths[i], d)
		}
	}
}

func TestProjectBatchReusesSlices(t *testing.T) {
	c := NewCamera(800, 600)
	verts := []Vector4{NewVector4(1, 1, 1, 1), NewVector4(2, 2, 2, 2)}

	points := make([]ScreenPoint, 0, 8)
	depths := make([]float64, 0, 8)
	p2, d2 := c.ProjectBatch(verts, points, depths)
	if cap(p2) != 8 || cap(d2) != 8 {
		t.Error("batch reallocated slices that had capacity")
	}
}

func TestStereoDepthDivideClamped(t *testing.T) {
	c := NewCamera(800, 600)
	c.StereoPerspective = true

	// In range, plain divide: 5/(5-depth).
	if got := c.depthScale(1); !almostEqual(got, 5.0/4.0) {
		t.Errorf("near depth: got %v, want %v", got, 5.0/4.0)
	}
	if got := c.depthScale(-1); !almostEqual(got, 5.0/6.0) {
		t.Errorf("far depth: got %v, want %v", got, 5.0/6.0)
	}
	// The factor clamps at 10 near the projection plane and stays
	// there for depths beyond it.
	if got := c.depthScale(4.99); !almostEqual(got, 10.0) {
		t.Errorf("near clamp: got %v, want 10", got)
	}
	if got := c.depthScale(7); !almostEqual(got, 10.0) {
		t.Errorf("past the plane: got %v, want 10", got)
	}
	// And at 0.1 for very distant geometry.
	if got := c.depthScale(-1000); !almostEqual(got, 0.1) {
		t.Errorf("far clamp: got %v, want 0.1", got)
	}

	c.StereoPerspective = false
	if got := c.depthScale(1); got != 1 {
		t.Errorf("baseline path: got %v, want 1", got)
	}
}

func TestDepthCenteredOnProjectionPlane(t *testing.T) {
	// With the default camera at z=-5 and projection distance 5, the
	// depth of a w=0 world point equals its world z.
	c := NewCamera(800, 600)
	for _, z := range []float64{-2, 0, 1.5} {
		view := c.WorldToView(NewVector4(0, 0, z, 0))
		_, d := c.Project(view)
		if !almostEqual(d, z) {
			t.Errorf("world z=%v: depth %v, want %v", z, d, z)
		}
	}
}

func TestOrbitKeepsDistanceAndClampsPitch(t *testing.T) {
	c := NewCamera(800, 600)
	want := c.Position.DistanceTo(c.Target)

	c.Orbit(0.5, 0.3)
	if got := c.Position.DistanceTo(c.Target); !almostEqual(got, want) {
		t.Errorf("orbit changed distance: got %v, want %v", got, want)
	}

	// Hammer the pitch; it must stay short of the poles.
	for i := 0; i < 100; i++ {
		c.Orbit(0, 1)
	}
	if c.orbitPitch > math.Pi/2-0.05 {
		t.Errorf("pitch %v reached the pole", c.orbitPitch)
	}
}

func TestZoomHasMinimumDistance(t *testing.T) {
	c := NewCamera(800, 600)
	for i := 0; i < 50; i++ {
		c.Zoom(0.5)
	}
	if got := c.Position.DistanceTo(c.Target); got < 0.5-1e-9 {
		t.Errorf("zoomed to %v, want >= 0.5", got)
	}
}

func TestMoveWOnlyTouchesW(t *testing.T) {
	c := NewCamera(800, 600)
	before := c.Position
	c.MoveW(2.5)
	if c.Position.X != before.X || c.Position.Y != before.Y || c.Position.Z != before.Z {
		t.Error("MoveW changed a non-W component")
	}
	if !almostEqual(c.Position.W, before.W+2.5) {
		t.Errorf("W: got %v, want %v", c.Position.W, before.W+2.5)
	}
}
