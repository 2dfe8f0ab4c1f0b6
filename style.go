package gosie4d

import "image/color"

// RenderMode selects how a shape is rasterized. The set is closed: the
// pipeline switches over every mode and skips anything it does not
// recognize rather than guessing.
type RenderMode int

const (
	// Wireframe draws depth-sorted edges in a flat color.
	Wireframe RenderMode = iota
	// DepthColored draws edges with color and width interpolated
	// between NearColor and FarColor by normalized depth.
	DepthColored
	// Points draws only the vertices, shrinking with depth.
	Points
	// Solid fills faces back-to-front with backface culling and depth
	// lighting. Falls back to Wireframe when the shape has no faces.
	Solid
	// HiddenLine draws edges behind the median depth dimmed and
	// thinner. An approximation, not true hidden-line removal.
	HiddenLine

	renderModeCount
)

func (m RenderMode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case DepthColored:
		return "depth"
	case Points:
		return "points"
	case Solid:
		return "solid"
	case HiddenLine:
		return "hidden-line"
	}
	return "unknown"
}

// RenderStyle configures one shape for one frame. Styles are treated as
// immutable while a frame renders.
type RenderStyle struct {
	Mode      RenderMode
	Color     color.RGBA
	LineWidth float32
	PointSize float32
	Alpha     uint8

	// Depth coloring.
	NearColor  color.RGBA
	FarColor   color.RGBA
	DepthRange [2]float64

	// Solid mode.
	FaceColor       color.RGBA
	FaceAlpha       uint8
	DrawEdges       bool
	BackfaceCulling bool
	Lighting        bool
}

// DefaultStyle matches the original viewer defaults: a cyan-blue
// wireframe with white-to-dark depth gradient available.
func DefaultStyle() RenderStyle {
	return RenderStyle{
		Mode:            Wireframe,
		Color:           color.RGBA{R: 100, G: 200, B: 255, A: 255},
		LineWidth:       2,
		PointSize:       4,
		Alpha:           255,
		NearColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		FarColor:        color.RGBA{R: 50, G: 50, B: 80, A: 255},
		DepthRange:      [2]float64{-2.0, 2.0},
		FaceColor:       color.RGBA{R: 60, G: 120, B: 180, A: 255},
		FaceAlpha:       180,
		DrawEdges:       true,
		BackfaceCulling: true,
		Lighting:        true,
	}
}
