package gosie4d

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Canvas is the pipeline's only way to touch pixels. Keeping it an
// interface lets the render tests record draw calls instead of needing
// a live GPU surface.
type Canvas interface {
	Line(x1, y1, x2, y2 float32, width float32, clr color.RGBA)
	FillPolygon(xs, ys []float32, clr color.RGBA)
	StrokePolygon(xs, ys []float32, width float32, clr color.RGBA)
	Point(x, y float32, size float32, clr color.RGBA)
}

// EbitenCanvas draws onto an ebiten image.
type EbitenCanvas struct {
	Screen    *ebiten.Image
	Antialias bool
}

func NewEbitenCanvas(screen *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{Screen: screen, Antialias: true}
}

func (c *EbitenCanvas) Line(x1, y1, x2, y2 float32, width float32, clr color.RGBA) {
	vector.StrokeLine(c.Screen, x1, y1, x2, y2, width, clr, c.Antialias)
}

func (c *EbitenCanvas) Point(x, y float32, size float32, clr color.RGBA) {
	vector.DrawFilledCircle(c.Screen, x, y, size, clr, c.Antialias)
}

func (c *EbitenCanvas) FillPolygon(xs, ys []float32, clr color.RGBA) {
	if len(xs) < 3 {
		return
	}

	// Fan triangulation; faces from the shape generators are convex.
	indices := make([]uint16, 0, (len(xs)-2)*3)
	for i := 2; i < len(xs); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	vertices := make([]ebiten.Vertex, len(xs))
	for i := range xs {
		vertices[i] = ebiten.Vertex{
			DstX:   xs[i],
			DstY:   ys[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: c.Antialias}
	c.Screen.DrawTriangles(vertices, indices, whiteSub, op)
}

func (c *EbitenCanvas) StrokePolygon(xs, ys []float32, width float32, clr color.RGBA) {
	if len(xs) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		path.LineTo(xs[i], ys[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{Width: width}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: c.Antialias}
	c.Screen.DrawTriangles(vertices, indices, whiteSub, op)
}
