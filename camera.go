package gosie4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ScreenPoint is an integer pixel coordinate.
type ScreenPoint struct {
	X int
	Y int
}

// Camera projects 4D world space onto a 2D screen in two chained steps:
// 4D -> 3D by a W-driven perspective shrink, then 3D -> 2D by scale and
// center offset with Y flipped so world-up is screen-up.
//
// The 4D shrink uses |w|, so objects at +w and -w project identically.
// That is a deliberate simplification, not true signed perspective.
type Camera struct {
	Position Vector4
	Target   Vector4
	Up       Vector4

	// 4D -> 3D parameters. ProjectionDistance must stay above the max
	// |w| of visible geometry (minus the clip margin) or the stereo
	// depth divide degenerates.
	ProjectionDistance float64
	WPerspectiveFactor float64

	// 3D -> 2D parameters.
	Scale        float64
	ScreenWidth  int
	ScreenHeight int

	// StereoPerspective switches the 3D -> 2D step from orthographic to
	// a divide by (ProjectionDistance - depth), depth measured from the
	// projection plane. Only the stereo path sets this, on per-eye
	// camera copies.
	StereoPerspective bool

	MoveSpeed     float64
	RotationSpeed float64
	ZoomSpeed     float64

	// Orbit parameterization of Position around Target. Kept in sync:
	// orbit mutators recompute Position, and SetPosition re-derives
	// the orbit angles.
	orbitYaw      float64
	orbitPitch    float64
	orbitDistance float64
}

func NewCamera(screenWidth, screenHeight int) *Camera {
	c := &Camera{
		Position:           NewVector4(0, 0, -5, 0),
		Target:             NewVector4(0, 0, 0, 0),
		Up:                 NewVector4(0, 1, 0, 0),
		ProjectionDistance: 5.0,
		WPerspectiveFactor: 0.3,
		Scale:              150.0,
		ScreenWidth:        screenWidth,
		ScreenHeight:       screenHeight,
		MoveSpeed:          0.15,
		RotationSpeed:      0.01,
		ZoomSpeed:          1.1,
	}
	c.orbitDistance = c.Position.DistanceTo(c.Target)
	c.updateOrbitAngles()
	return c
}

func (c *Camera) updateOrbitAngles() {
	off := c.Position.Sub(c.Target)
	distXZ := math.Sqrt(off.X*off.X + off.Z*off.Z)
	c.orbitYaw = math.Atan2(off.X, -off.Z)
	c.orbitPitch = math.Atan2(off.Y, distXZ)
}

func (c *Camera) updatePositionFromOrbit() {
	cosPitch := math.Cos(c.orbitPitch)
	c.Position = Vector4{
		X: c.Target.X + c.orbitDistance*math.Sin(c.orbitYaw)*cosPitch,
		Y: c.Target.Y + c.orbitDistance*math.Sin(c.orbitPitch),
		Z: c.Target.Z - c.orbitDistance*math.Cos(c.orbitYaw)*cosPitch,
		W: c.Position.W,
	}
}

// Orbit rotates the camera around the target. Pitch is clamped short of
// the poles to keep the orbit basis stable.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	c.orbitYaw += deltaYaw
	c.orbitPitch = mgl64.Clamp(c.orbitPitch+deltaPitch, -math.Pi/2+0.1, math.Pi/2-0.1)
	c.updatePositionFromOrbit()
}

// Zoom scales the orbit distance. Factors above 1 zoom out.
func (c *Camera) Zoom(factor float64) {
	c.orbitDistance = math.Max(0.5, c.orbitDistance*factor)
	c.updatePositionFromOrbit()
}

// Move translates camera and target together in world space.
func (c *Camera) Move(dx, dy, dz, dw float64) {
	d := NewVector4(dx, dy, dz, dw)
	c.Position = c.Position.Add(d)
	c.Target = c.Target.Add(d)
}

// MoveW slides the camera along the W axis only.
func (c *Camera) MoveW(dw float64) {
	c.Position.W += dw
}

func (c *Camera) SetPosition(p Vector4) {
	c.Position = p
	c.orbitDistance = c.Position.DistanceTo(c.Target)
	c.updateOrbitAngles()
}

func (c *Camera) SetTarget(t Vector4) {
	c.Target = t
	c.orbitDistance = c.Position.DistanceTo(c.Target)
	c.updateOrbitAngles()
}

func (c *Camera) Reset() {
	c.Position = NewVector4(0, 0, -5, 0)
	c.Target = NewVector4(0, 0, 0, 0)
	c.orbitDistance = 5.0
	c.orbitYaw = 0
	c.orbitPitch = 0
}

// WorldToView shifts a world point into camera-relative coordinates.
// The W-near clip runs on these before any projection happens.
func (c *Camera) WorldToView(v Vector4) Vector4 {
	return v.Sub(c.Position)
}

// ProjectTo3D collapses a 4D point to 3D. The shrink is monotone in |w|
// and symmetric in its sign.
func (c *Camera) ProjectTo3D(v Vector4) (x, y, z float64) {
	wScale := 1.0 / (1.0 + math.Abs(v.W)*c.WPerspectiveFactor)
	return v.X * wScale, v.Y * wScale, v.Z * wScale
}

// depthScale is 1 on the baseline path. With StereoPerspective set it
// is the depth divide factor on the re-centered depth, with the factor
// itself clamped so geometry near or past the projection plane cannot
// blow up. Clamping the factor rather than the denominator keeps depths
// beyond the plane pinned at the maximum instead of flipping sign.
func (c *Camera) depthScale(depth float64) float64 {
	if !c.StereoPerspective {
		return 1
	}
	denom := c.ProjectionDistance - depth
	if denom <= 0 {
		return maxStereoFactor
	}
	return mgl64.Clamp(c.ProjectionDistance/denom, minStereoFactor, maxStereoFactor)
}

const (
	minStereoFactor = 0.1
	maxStereoFactor = 10.0
)

// ProjectToScreen maps a 3D point to pixel coordinates plus a depth used
// for painter sorting. The depth is re-centered on the projection plane,
// so geometry around the camera target sits near zero. The baseline path
// is orthographic after the W shrink; only stereo cameras divide by
// depth here.
func (c *Camera) ProjectToScreen(x, y, z float64) (ScreenPoint, float64) {
	depth := z - c.ProjectionDistance
	s := c.Scale * c.depthScale(depth)
	sx := int(math.Round(x*s + float64(c.ScreenWidth)/2))
	sy := int(math.Round(-y*s + float64(c.ScreenHeight)/2))
	return ScreenPoint{X: sx, Y: sy}, depth
}

// Project runs both projection stages for a single vertex.
func (c *Camera) Project(v Vector4) (ScreenPoint, float64) {
	x, y, z := c.ProjectTo3D(v)
	return c.ProjectToScreen(x, y, z)
}

// ProjectBatch projects N vertices into the supplied slices, growing
// them as needed, and returns them. It does no visibility filtering;
// clipping and culling happen downstream.
func (c *Camera) ProjectBatch(vertices []Vector4, points []ScreenPoint, depths []float64) ([]ScreenPoint, []float64) {
	n := len(vertices)
	if cap(points) < n {
		points = make([]ScreenPoint, n)
	}
	points = points[:n]
	if cap(depths) < n {
		depths = make([]float64, n)
	}
	depths = depths[:n]

	halfW := float64(c.ScreenWidth) / 2
	halfH := float64(c.ScreenHeight) / 2
	for i, v := range vertices {
		wScale := 1.0 / (1.0 + math.Abs(v.W)*c.WPerspectiveFactor)
		depth := v.Z*wScale - c.ProjectionDistance
		s := wScale * c.Scale * c.depthScale(depth)
		points[i] = ScreenPoint{
			X: int(math.Round(v.X*s + halfW)),
			Y: int(math.Round(-v.Y*s + halfH)),
		}
		depths[i] = depth
	}
	return points, depths
}
