package gosie4d

import (
	"image/color"
	"math"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// RenderStats summarizes one frame's render pass.
type RenderStats struct {
	VerticesProcessed int
	EdgesRendered     int
	FacesRendered     int
	ObjectsRendered   int
	CulledEdges       int
	RenderTime        time.Duration
}

type queuedObject struct {
	obj   Renderable4D
	style RenderStyle
}

// Pipeline turns queued (shape, style) pairs into draw calls on a
// Canvas: project through the camera, clip, depth-sort, draw far to
// near. The queue is rebuilt every frame.
type Pipeline struct {
	camera *Camera
	canvas Canvas

	DefaultStyle RenderStyle

	stats RenderStats
	queue []queuedObject

	// Optional per-pixel depth testing for wireframe modes.
	depthBuffer *DepthBuffer

	// Per-frame scratch, reused across objects.
	viewVerts []Vector4
	points    []ScreenPoint
	depths    []float64
}

func NewPipeline(camera *Camera, canvas Canvas) *Pipeline {
	return &Pipeline{
		camera:       camera,
		canvas:       canvas,
		DefaultStyle: DefaultStyle(),
	}
}

func (p *Pipeline) Camera() *Camera { return p.camera }

// SetCanvas swaps the draw target. The ebiten screen image changes
// every Draw call, so the game loop calls this each frame.
func (p *Pipeline) SetCanvas(c Canvas) { p.canvas = c }

// SetDepthBuffer attaches (or with nil detaches) a depth buffer. When
// attached, wireframe edges are depth-tested along their pixel spans.
func (p *Pipeline) SetDepthBuffer(b *DepthBuffer) { p.depthBuffer = b }

// BeginFrame clears the queue, the stats and the depth buffer.
func (p *Pipeline) BeginFrame() {
	p.stats = RenderStats{}
	p.queue = p.queue[:0]
	if p.depthBuffer != nil {
		p.depthBuffer.Reset()
	}
}

// Queue adds an object to the frame's render queue.
func (p *Pipeline) Queue(obj Renderable4D, style RenderStyle) {
	p.queue = append(p.queue, queuedObject{obj: obj, style: style})
}

// QueueDefault queues an object with the pipeline's default style.
func (p *Pipeline) QueueDefault(obj Renderable4D) {
	p.Queue(obj, p.DefaultStyle)
}

// RenderFrame draws every queued object, opaque ones first, and returns
// the frame statistics.
func (p *Pipeline) RenderFrame() RenderStats {
	start := time.Now()
	for _, q := range p.queue {
		if q.style.Alpha == 255 {
			p.renderObject(q.obj, q.style)
		}
	}
	for _, q := range p.queue {
		if q.style.Alpha < 255 {
			p.renderObject(q.obj, q.style)
		}
	}
	p.stats.RenderTime = time.Since(start)
	return p.stats
}

// RenderObject draws a single object immediately, outside the queue.
func (p *Pipeline) RenderObject(obj Renderable4D, style RenderStyle) {
	p.renderObject(obj, style)
}

func (p *Pipeline) renderObject(obj Renderable4D, style RenderStyle) {
	world := obj.TransformedVertices()
	if len(world) == 0 {
		return
	}

	if cap(p.viewVerts) < len(world) {
		p.viewVerts = make([]Vector4, len(world))
	}
	p.viewVerts = p.viewVerts[:len(world)]
	for i, v := range world {
		p.viewVerts[i] = p.camera.WorldToView(v)
	}

	p.points, p.depths = p.camera.ProjectBatch(p.viewVerts, p.points, p.depths)

	p.stats.VerticesProcessed += len(world)
	p.stats.ObjectsRendered++

	switch style.Mode {
	case Wireframe:
		p.renderWireframe(obj.Edges(), style)
	case DepthColored:
		p.renderDepthColored(obj.Edges(), style)
	case Points:
		p.renderPoints(style)
	case Solid:
		p.renderSolid(obj.Faces(), obj.Edges(), style)
	case HiddenLine:
		p.renderHiddenLine(obj.Edges(), style)
	}
}

// edgeOrder returns edge indices sorted back to front by mean endpoint
// depth. The sort is stable so equal depths keep their original
// relative order, which keeps frames deterministic. Edges referencing
// out-of-range vertices sort with depth 0 and are skipped at draw time.
func (p *Pipeline) edgeOrder(edges [][2]int) ([]int, []float64) {
	order := make([]int, len(edges))
	edgeDepths := make([]float64, len(edges))
	for i, e := range edges {
		order[i] = i
		if p.validEdge(e) {
			edgeDepths[i] = (p.depths[e[0]] + p.depths[e[1]]) / 2
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return edgeDepths[order[i]] > edgeDepths[order[j]]
	})
	return order, edgeDepths
}

func (p *Pipeline) validEdge(e [2]int) bool {
	n := len(p.viewVerts)
	return e[0] >= 0 && e[0] < n && e[1] >= 0 && e[1] < n
}

// projectEdge clips one view-space edge against the W near boundary,
// projects the surviving segment and clips it to the padded viewport.
// ok=false means the edge contributes nothing this frame.
func (p *Pipeline) projectEdge(a, b Vector4) (x1, y1, x2, y2 float64, d1, d2 float64, ok bool) {
	maxW := p.camera.ProjectionDistance - wClipMargin
	a, b, ok = ClipWNear(a, b, maxW)
	if !ok {
		return 0, 0, 0, 0, 0, 0, false
	}

	ax, ay, az := p.camera.ProjectTo3D(a)
	bx, by, bz := p.camera.ProjectTo3D(b)
	da := az - p.camera.ProjectionDistance
	db := bz - p.camera.ProjectionDistance

	halfW := float64(p.camera.ScreenWidth) / 2
	halfH := float64(p.camera.ScreenHeight) / 2
	sa := p.camera.Scale * p.camera.depthScale(da)
	sb := p.camera.Scale * p.camera.depthScale(db)
	x1 = ax*sa + halfW
	y1 = -ay*sa + halfH
	x2 = bx*sb + halfW
	y2 = -by*sb + halfH

	x1, y1, x2, y2, ok = ClipToViewport(x1, y1, x2, y2, p.camera.ScreenWidth, p.camera.ScreenHeight)
	if !ok {
		return 0, 0, 0, 0, 0, 0, false
	}
	return x1, y1, x2, y2, da, db, true
}

func (p *Pipeline) drawEdge(a, b Vector4, width float32, clr color.RGBA) bool {
	x1, y1, x2, y2, d1, d2, ok := p.projectEdge(a, b)
	if !ok {
		p.stats.CulledEdges++
		return false
	}
	if p.depthBuffer != nil {
		ix1 := int(math.Round(x1))
		iy1 := int(math.Round(y1))
		ix2 := int(math.Round(x2))
		iy2 := int(math.Round(y2))
		if !p.depthBuffer.MarkLine(ix1, iy1, ix2, iy2, d1, d2) {
			p.stats.CulledEdges++
			return false
		}
	}
	p.canvas.Line(float32(x1), float32(y1), float32(x2), float32(y2), width, clr)
	p.stats.EdgesRendered++
	return true
}

func (p *Pipeline) renderWireframe(edges [][2]int, style RenderStyle) {
	order, _ := p.edgeOrder(edges)
	clr := withAlpha(style.Color, style.Alpha)
	for _, idx := range order {
		e := edges[idx]
		if !p.validEdge(e) {
			continue
		}
		p.drawEdge(p.viewVerts[e[0]], p.viewVerts[e[1]], style.LineWidth, clr)
	}
}

func (p *Pipeline) renderDepthColored(edges [][2]int, style RenderStyle) {
	order, edgeDepths := p.edgeOrder(edges)
	minD, maxD := style.DepthRange[0], style.DepthRange[1]
	span := maxD - minD
	if span == 0 {
		span = 1
	}
	for _, idx := range order {
		e := edges[idx]
		if !p.validEdge(e) {
			continue
		}
		t := mgl64.Clamp((edgeDepths[idx]-minD)/span, 0, 1)
		clr := lerpColor(style.FarColor, style.NearColor, 1-t)
		width := style.LineWidth * float32(1-t*0.5)
		if width < 1 {
			width = 1
		}
		p.drawEdge(p.viewVerts[e[0]], p.viewVerts[e[1]], width, withAlpha(clr, style.Alpha))
	}
}

func (p *Pipeline) renderPoints(style RenderStyle) {
	order := make([]int, len(p.points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return p.depths[order[i]] > p.depths[order[j]]
	})

	clr := withAlpha(style.Color, style.Alpha)
	for _, idx := range order {
		pt := p.points[idx]
		if pt.X < 0 || pt.X >= p.camera.ScreenWidth || pt.Y < 0 || pt.Y >= p.camera.ScreenHeight {
			continue
		}
		t := mgl64.Clamp((p.depths[idx]+2)/4, 0, 1)
		size := style.PointSize * float32(1-t*0.5)
		if size < 1 {
			size = 1
		}
		p.canvas.Point(float32(pt.X), float32(pt.Y), size, clr)
	}
}

type projectedFace struct {
	depth float64
	xs    []float32
	ys    []float32
	clr   color.RGBA
}

func (p *Pipeline) renderSolid(faces [][]int, edges [][2]int, style RenderStyle) {
	if len(faces) == 0 {
		// Shapes without face data degrade to a wireframe.
		p.renderWireframe(edges, style)
		return
	}

	drawable := make([]projectedFace, 0, len(faces))
	for _, face := range faces {
		if len(face) < 3 || !p.validFace(face) {
			continue
		}

		xs := make([]float32, len(face))
		ys := make([]float32, len(face))
		depth := 0.0
		finite := true
		for i, vi := range face {
			xs[i] = float32(p.points[vi].X)
			ys[i] = float32(p.points[vi].Y)
			d := p.depths[vi]
			if math.IsNaN(d) || math.IsInf(d, 0) {
				finite = false
				break
			}
			depth += d
		}
		if !finite {
			continue
		}
		depth /= float64(len(face))

		if style.BackfaceCulling && signedArea(xs, ys) <= 0 {
			continue
		}

		clr := style.FaceColor
		if style.Lighting {
			t := mgl64.Clamp((depth+2)/4, 0, 1)
			intensity := 0.5 + 0.5*(1-t)
			clr = scaleColor(clr, intensity)
		}

		drawable = append(drawable, projectedFace{
			depth: depth,
			xs:    xs,
			ys:    ys,
			clr:   withAlpha(clr, style.FaceAlpha),
		})
	}

	sort.SliceStable(drawable, func(i, j int) bool {
		return drawable[i].depth > drawable[j].depth
	})

	outline := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	if style.FaceAlpha < 200 {
		outline = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	for _, f := range drawable {
		p.canvas.FillPolygon(f.xs, f.ys, f.clr)
		if style.DrawEdges {
			p.canvas.StrokePolygon(f.xs, f.ys, 1, outline)
		}
		p.stats.FacesRendered++
	}
}

func (p *Pipeline) validFace(face []int) bool {
	n := len(p.points)
	for _, vi := range face {
		if vi < 0 || vi >= n {
			return false
		}
	}
	return true
}

func (p *Pipeline) renderHiddenLine(edges [][2]int, style RenderStyle) {
	order, edgeDepths := p.edgeOrder(edges)
	mid := medianOf(edgeDepths)

	dimmed := color.RGBA{
		R: style.Color.R / 3,
		G: style.Color.G / 3,
		B: style.Color.B / 3,
		A: style.Color.A,
	}
	thinWidth := style.LineWidth - 1
	if thinWidth < 1 {
		thinWidth = 1
	}

	for _, idx := range order {
		e := edges[idx]
		if !p.validEdge(e) {
			continue
		}
		clr, width := style.Color, style.LineWidth
		if edgeDepths[idx] > mid {
			clr, width = dimmed, thinWidth
		}
		p.drawEdge(p.viewVerts[e[0]], p.viewVerts[e[1]], width, withAlpha(clr, style.Alpha))
	}
}

// signedArea is the shoelace formula on projected screen coordinates.
// Positive means counter-clockwise on screen, the side that faces the
// camera under this renderer's winding convention.
func signedArea(xs, ys []float32) float64 {
	area := 0.0
	n := len(xs)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += float64(xs[i]) * float64(ys[j])
		area -= float64(xs[j]) * float64(ys[i])
	}
	return area / 2
}

func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(mgl64.Clamp(float64(a)+(float64(b)-float64(a))*t, 0, 255))
	}
	return color.RGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: 255,
	}
}

func scaleColor(c color.RGBA, intensity float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(mgl64.Clamp(float64(v)*intensity, 0, 255))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func withAlpha(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}
