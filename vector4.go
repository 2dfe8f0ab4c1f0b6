package gosie4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector4 is a point or direction in 4D space. W is the fourth spatial
// axis (ana/kata), not a homogeneous coordinate.
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4) Mul(s float64) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4) Dot(o Vector4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vector4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector4) DistanceTo(o Vector4) float64 {
	return v.Sub(o).Len()
}

func (v Vector4) Norm() Vector4 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Lerp interpolates from v to o: v + t*(o-v).
func (v Vector4) Lerp(o Vector4, t float64) Vector4 {
	return v.Add(o.Sub(v).Mul(t))
}

func (v Vector4) IsFinite() bool {
	finite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
	return finite(v.X) && finite(v.Y) && finite(v.Z) && finite(v.W)
}

func (v Vector4) ToMgl() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

func FromMgl(m mgl64.Vec4) Vector4 {
	return Vector4{m[0], m[1], m[2], m[3]}
}
