package gosie4d

import "image/color"

// recordingCanvas captures draw calls for assertions instead of
// touching a GPU surface.
type recordingCanvas struct {
	lines   []lineCall
	fills   []polyCall
	strokes []polyCall
	points  []pointCall
}

type lineCall struct {
	x1, y1, x2, y2 float32
	width          float32
	clr            color.RGBA
}

type polyCall struct {
	xs, ys []float32
	clr    color.RGBA
}

type pointCall struct {
	x, y, size float32
	clr        color.RGBA
}

func (c *recordingCanvas) Line(x1, y1, x2, y2 float32, width float32, clr color.RGBA) {
	c.lines = append(c.lines, lineCall{x1, y1, x2, y2, width, clr})
}

func (c *recordingCanvas) FillPolygon(xs, ys []float32, clr color.RGBA) {
	c.fills = append(c.fills, polyCall{append([]float32(nil), xs...), append([]float32(nil), ys...), clr})
}

func (c *recordingCanvas) StrokePolygon(xs, ys []float32, width float32, clr color.RGBA) {
	c.strokes = append(c.strokes, polyCall{append([]float32(nil), xs...), append([]float32(nil), ys...), clr})
}

func (c *recordingCanvas) Point(x, y float32, size float32, clr color.RGBA) {
	c.points = append(c.points, pointCall{x, y, size, clr})
}
