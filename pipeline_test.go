package gosie4d

import (
	"image/color"
	"math"
	"testing"
)

func newTestPipeline() (*Pipeline, *recordingCanvas) {
	canvas := &recordingCanvas{}
	return NewPipeline(NewCamera(800, 600), canvas), canvas
}

// verticalEdgeShape builds one vertical screen edge per (x, z) pair,
// with w=0 so the projection is a pure scale and offset.
func verticalEdgeShape(coords [][2]float64) *Shape4D {
	var verts []Vector4
	var edges [][2]int
	for i, c := range coords {
		verts = append(verts,
			NewVector4(c[0], 0, c[1], 0),
			NewVector4(c[0], 0.1, c[1], 0))
		edges = append(edges, [2]int{2 * i, 2*i + 1})
	}
	return NewShape4D("bars", verts, edges, nil)
}

func TestEdgesDrawnFarToNearStable(t *testing.T) {
	p, canvas := newTestPipeline()

	// Depths -2, -4, -2, -3 (depth equals world z under the default
	// camera). The two depth -2 edges tie, so their original order must
	// hold: 0, 2, 3, 1.
	shape := verticalEdgeShape([][2]float64{
		{0.0, -2}, {0.2, -4}, {0.4, -2}, {0.6, -3},
	})
	p.RenderObject(shape, DefaultStyle())

	if len(canvas.lines) != 4 {
		t.Fatalf("drew %d lines, want 4", len(canvas.lines))
	}
	// Screen x identifies the edge: x*150 + 400.
	wantX := []float32{400, 460, 490, 430}
	for i, want := range wantX {
		if canvas.lines[i].x1 != want {
			t.Errorf("draw %d at x=%v, want %v", i, canvas.lines[i].x1, want)
		}
	}
}

func TestSignedArea(t *testing.T) {
	xs := []float32{0, 1, 1}
	ys := []float32{0, 0, 1}
	if got := signedArea(xs, ys); !almostEqual(got, 0.5) {
		t.Errorf("ccw triangle: got %v, want 0.5", got)
	}

	xs = []float32{1, 1, 0}
	ys = []float32{1, 0, 0}
	if got := signedArea(xs, ys); !almostEqual(got, -0.5) {
		t.Errorf("cw triangle: got %v, want -0.5", got)
	}

	if got := signedArea([]float32{0, 1, 2}, []float32{0, 0, 0}); got != 0 {
		t.Errorf("degenerate triangle: got %v, want 0", got)
	}
}

func TestSolidBackfaceCulling(t *testing.T) {
	verts := []Vector4{
		NewVector4(0, 0, 0, 0),
		NewVector4(0.5, 0, 0, 0),
		NewVector4(0.5, -0.5, 0, 0),
	}
	style := DefaultStyle()
	style.Mode = Solid

	front := NewShape4D("front", verts, nil, [][]int{{0, 1, 2}})
	p, canvas := newTestPipeline()
	p.RenderObject(front, style)
	if len(canvas.fills) != 1 {
		t.Errorf("front face: %d fills, want 1", len(canvas.fills))
	}

	back := NewShape4D("back", verts, nil, [][]int{{2, 1, 0}})
	p, canvas = newTestPipeline()
	p.RenderObject(back, style)
	if len(canvas.fills) != 0 {
		t.Errorf("back face: %d fills, want 0", len(canvas.fills))
	}

	style.BackfaceCulling = false
	p, canvas = newTestPipeline()
	p.RenderObject(back, style)
	if len(canvas.fills) != 1 {
		t.Errorf("culling off: %d fills, want 1", len(canvas.fills))
	}
}

func TestSolidFacesDrawnBackToFront(t *testing.T) {
	// Two front-facing triangles at different depths; the far one must
	// be filled first.
	verts := []Vector4{
		NewVector4(0, 0, -2, 0), NewVector4(0.5, 0, -2, 0), NewVector4(0.5, -0.5, -2, 0),
		NewVector4(1, 0, -4, 0), NewVector4(1.5, 0, -4, 0), NewVector4(1.5, -0.5, -4, 0),
	}
	shape := NewShape4D("pair", verts, nil, [][]int{{0, 1, 2}, {3, 4, 5}})

	style := DefaultStyle()
	style.Mode = Solid
	style.Lighting = false

	p, canvas := newTestPipeline()
	p.RenderObject(shape, style)
	if len(canvas.fills) != 2 {
		t.Fatalf("%d fills, want 2", len(canvas.fills))
	}
	// The z=-2 triangle (screen x=400, depth -2 > -4) is the far one
	// and must be filled first.
	if canvas.fills[0].xs[0] != 400 {
		t.Errorf("first fill at x=%v, want the far face at 400", canvas.fills[0].xs[0])
	}
}

func TestSolidDepthLightingDimsFarFaces(t *testing.T) {
	style := DefaultStyle()
	style.Mode = Solid
	style.BackfaceCulling = false

	render := func(z float64) color.RGBA {
		verts := []Vector4{
			NewVector4(0, 0, z, 0),
			NewVector4(0.5, 0, z, 0),
			NewVector4(0.5, -0.5, z, 0),
		}
		shape := NewShape4D("lit", verts, nil, [][]int{{0, 1, 2}})
		p, canvas := newTestPipeline()
		p.RenderObject(shape, style)
		if len(canvas.fills) != 1 {
			t.Fatalf("%d fills, want 1", len(canvas.fills))
		}
		return canvas.fills[0].clr
	}

	near := render(-1.9)
	far := render(1.9)
	if near.R <= far.R || near.G <= far.G {
		t.Errorf("near face %+v not brighter than far face %+v", near, far)
	}
}

func TestSolidWithoutFacesFallsBackToWireframe(t *testing.T) {
	style := DefaultStyle()
	style.Mode = Solid

	shape := verticalEdgeShape([][2]float64{{0, -2}})
	p, canvas := newTestPipeline()
	p.RenderObject(shape, style)
	if len(canvas.fills) != 0 {
		t.Error("fallback still filled polygons")
	}
	if len(canvas.lines) != 1 {
		t.Errorf("fallback drew %d lines, want 1", len(canvas.lines))
	}
}

func TestHiddenLineDimsFarHalf(t *testing.T) {
	style := DefaultStyle()
	style.Mode = HiddenLine
	style.Color = color.RGBA{R: 90, G: 180, B: 240, A: 255}
	style.LineWidth = 2

	shape := verticalEdgeShape([][2]float64{{0, -2}, {0.4, -4}})
	p, canvas := newTestPipeline()
	p.RenderObject(shape, style)
	if len(canvas.lines) != 2 {
		t.Fatalf("%d lines, want 2", len(canvas.lines))
	}

	// Far edge (depth -2, median -3) comes out first and dimmed.
	far := canvas.lines[0]
	near := canvas.lines[1]
	if far.clr.R != 30 || far.clr.G != 60 || far.clr.B != 80 {
		t.Errorf("far edge color %+v, want (30,60,80)", far.clr)
	}
	if far.width != 1 {
		t.Errorf("far edge width %v, want 1", far.width)
	}
	if near.clr.R != 90 || near.width != 2 {
		t.Errorf("near edge %+v width %v, want full color and width 2", near.clr, near.width)
	}
}

func TestDepthColoredInterpolates(t *testing.T) {
	style := DefaultStyle()
	style.Mode = DepthColored
	style.NearColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	style.FarColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	style.DepthRange = [2]float64{-2, 2}

	// Depths -1.9 (near) and 1.9 (far).
	shape := verticalEdgeShape([][2]float64{{0, -1.9}, {0.4, 1.9}})
	p, canvas := newTestPipeline()
	p.RenderObject(shape, style)
	if len(canvas.lines) != 2 {
		t.Fatalf("%d lines, want 2", len(canvas.lines))
	}
	far := canvas.lines[0]
	near := canvas.lines[1]
	if near.clr.R <= far.clr.R {
		t.Errorf("near edge %+v not brighter than far %+v", near.clr, far.clr)
	}
	if near.width <= far.width {
		t.Errorf("near width %v not above far width %v", near.width, far.width)
	}
}

func TestDepthColoredVariesOnDefaultScene(t *testing.T) {
	// A cataloged shape under the default camera must land inside the
	// default DepthRange, not saturate to a flat far color.
	style := DefaultStyle()
	style.Mode = DepthColored

	p, canvas := newTestPipeline()
	p.RenderObject(NewTesseract(2), style)
	if len(canvas.lines) != 32 {
		t.Fatalf("%d lines, want 32", len(canvas.lines))
	}

	distinct := map[color.RGBA]bool{}
	for _, l := range canvas.lines {
		distinct[l.clr] = true
	}
	if len(distinct) < 2 {
		t.Errorf("all 32 edges share one color %+v, want depth variation", canvas.lines[0].clr)
	}
	for _, l := range canvas.lines {
		if l.clr == withAlpha(style.FarColor, style.Alpha) {
			t.Errorf("edge drawn at the saturated far color %+v", l.clr)
			break
		}
	}
}

func TestPointsSkipOffscreenAndShrink(t *testing.T) {
	style := DefaultStyle()
	style.Mode = Points
	style.PointSize = 6

	verts := []Vector4{
		NewVector4(0, 0, -1.5, 0),  // near
		NewVector4(0.4, 0, 1.5, 0), // far
		NewVector4(100, 0, 0, 0),   // off screen
	}
	shape := NewShape4D("dots", verts, nil, nil)
	p, canvas := newTestPipeline()
	p.RenderObject(shape, style)

	if len(canvas.points) != 2 {
		t.Fatalf("%d points, want 2 (offscreen vertex skipped)", len(canvas.points))
	}
	far := canvas.points[0]
	near := canvas.points[1]
	if near.size <= far.size {
		t.Errorf("near point size %v not above far %v", near.size, far.size)
	}
}

func TestInvalidEdgeIndicesSkipped(t *testing.T) {
	verts := []Vector4{NewVector4(0, 0, -2, 0), NewVector4(0.5, 0, -2, 0)}
	edges := [][2]int{{0, 1}, {0, 99}, {-1, 1}}
	shape := NewShape4D("broken", verts, edges, nil)

	p, canvas := newTestPipeline()
	stats := func() RenderStats {
		p.BeginFrame()
		p.Queue(shape, DefaultStyle())
		return p.RenderFrame()
	}()

	if len(canvas.lines) != 1 {
		t.Errorf("drew %d lines, want 1 (bad indices skipped)", len(canvas.lines))
	}
	if stats.EdgesRendered != 1 {
		t.Errorf("stats counted %d edges, want 1", stats.EdgesRendered)
	}
}

func TestNaNVertexDiscardsEdge(t *testing.T) {
	verts := []Vector4{
		NewVector4(math.NaN(), 0, -2, 0),
		NewVector4(0.5, 0, -2, 0),
	}
	shape := NewShape4D("nan", verts, [][2]int{{0, 1}}, nil)

	p, canvas := newTestPipeline()
	p.RenderObject(shape, DefaultStyle())
	if len(canvas.lines) != 0 {
		t.Errorf("drew %d lines from a NaN vertex, want 0", len(canvas.lines))
	}
	if p.stats.CulledEdges != 1 {
		t.Errorf("culled %d edges, want 1", p.stats.CulledEdges)
	}
}

func TestEdgeBeyondWBoundaryDiscarded(t *testing.T) {
	// Both endpoints past W = 4.95 in view space.
	verts := []Vector4{
		NewVector4(0, 0, -5, 4.96),
		NewVector4(0.5, 0, -5, 6),
	}
	shape := NewShape4D("farw", verts, [][2]int{{0, 1}}, nil)

	p, canvas := newTestPipeline()
	p.RenderObject(shape, DefaultStyle())
	if len(canvas.lines) != 0 {
		t.Errorf("drew %d lines past the W boundary, want 0", len(canvas.lines))
	}
}

func TestOpaqueObjectsRenderBeforeTransparent(t *testing.T) {
	p, canvas := newTestPipeline()

	glass := DefaultStyle()
	glass.Alpha = 120
	solid := DefaultStyle()

	a := verticalEdgeShape([][2]float64{{0, -2}})
	b := verticalEdgeShape([][2]float64{{0.4, -2}})

	p.BeginFrame()
	p.Queue(a, glass)
	p.Queue(b, solid)
	p.RenderFrame()

	if len(canvas.lines) != 2 {
		t.Fatalf("%d lines, want 2", len(canvas.lines))
	}
	// The opaque shape (x=460) must come first despite queue order.
	if canvas.lines[0].x1 != 460 {
		t.Errorf("first draw at x=%v, want opaque shape at 460", canvas.lines[0].x1)
	}
	if canvas.lines[1].clr.A != 120 {
		t.Errorf("transparent edge alpha %d, want 120", canvas.lines[1].clr.A)
	}
}

func TestDepthBufferBlocksOccludedRedraw(t *testing.T) {
	p, canvas := newTestPipeline()
	p.SetDepthBuffer(NewDepthBuffer(800, 600))

	shape := verticalEdgeShape([][2]float64{{0, -2}})
	p.BeginFrame()
	p.Queue(shape, DefaultStyle())
	p.RenderFrame()
	if len(canvas.lines) != 1 {
		t.Fatalf("first pass drew %d lines, want 1", len(canvas.lines))
	}

	// Same geometry again without resetting the frame: every pixel
	// fails the strict depth test.
	p.RenderObject(shape, DefaultStyle())
	if len(canvas.lines) != 1 {
		t.Errorf("occluded redraw added %d lines", len(canvas.lines)-1)
	}
}

func TestMedianOf(t *testing.T) {
	if got := medianOf([]float64{3, 1, 2}); !almostEqual(got, 2) {
		t.Errorf("odd count: got %v, want 2", got)
	}
	if got := medianOf([]float64{4, 1, 3, 2}); !almostEqual(got, 2.5) {
		t.Errorf("even count: got %v, want 2.5", got)
	}
	if got := medianOf(nil); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
}

func TestRenderStats(t *testing.T) {
	p, _ := newTestPipeline()
	p.BeginFrame()
	p.Queue(NewTesseract(2), DefaultStyle())
	stats := p.RenderFrame()

	if stats.ObjectsRendered != 1 {
		t.Errorf("objects: %d, want 1", stats.ObjectsRendered)
	}
	if stats.VerticesProcessed != 16 {
		t.Errorf("vertices: %d, want 16", stats.VerticesProcessed)
	}
	if stats.EdgesRendered != 32 {
		t.Errorf("edges: %d, want 32", stats.EdgesRendered)
	}
}
