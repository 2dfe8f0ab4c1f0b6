package gosie4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane names one of the six coordinate planes a 4D rotation can act in.
// In 4D a rotation happens in a plane, not around an axis: there are
// C(4,2) = 6 of them.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneXW
	PlaneYZ
	PlaneYW
	PlaneZW
)

// AllPlanes lists the planes in the canonical composition order used by
// RotationState.Matrix. The order is a fixed contract: plane rotations do
// not commute in 4D, so every caller must compose in this same order.
var AllPlanes = [6]Plane{PlaneXY, PlaneXZ, PlaneXW, PlaneYZ, PlaneYW, PlaneZW}

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneXW:
		return "xw"
	case PlaneYZ:
		return "yz"
	case PlaneYW:
		return "yw"
	case PlaneZW:
		return "zw"
	}
	return "??"
}

// axes returns the two coordinate indices the plane mixes.
func (p Plane) axes() (int, int) {
	switch p {
	case PlaneXY:
		return 0, 1
	case PlaneXZ:
		return 0, 2
	case PlaneXW:
		return 0, 3
	case PlaneYZ:
		return 1, 2
	case PlaneYW:
		return 1, 3
	default:
		return 2, 3
	}
}

// NewPlaneRotation builds the 4x4 matrix rotating by theta in the given
// plane. For plane axes (a,b):
//
//	a' = a*cos(theta) - b*sin(theta)
//	b' = a*sin(theta) + b*cos(theta)
//
// All other components are untouched.
func NewPlaneRotation(p Plane, theta float64) mgl64.Mat4 {
	c, s := math.Cos(theta), math.Sin(theta)
	i, j := p.axes()
	m := mgl64.Ident4()
	m.Set(i, i, c)
	m.Set(i, j, -s)
	m.Set(j, i, s)
	m.Set(j, j, c)
	return m
}

// RotationState holds one accumulated angle, in radians, per rotation
// plane. It is a plain value: copying it copies the pose.
type RotationState struct {
	XY, XZ, XW, YZ, YW, ZW float64
}

// Angle returns the accumulated angle for a plane.
func (r RotationState) Angle(p Plane) float64 {
	switch p {
	case PlaneXY:
		return r.XY
	case PlaneXZ:
		return r.XZ
	case PlaneXW:
		return r.XW
	case PlaneYZ:
		return r.YZ
	case PlaneYW:
		return r.YW
	default:
		return r.ZW
	}
}

// Add returns a copy with delta added to the angle for plane p.
func (r RotationState) Add(p Plane, delta float64) RotationState {
	switch p {
	case PlaneXY:
		r.XY += delta
	case PlaneXZ:
		r.XZ += delta
	case PlaneXW:
		r.XW += delta
	case PlaneYZ:
		r.YZ += delta
	case PlaneYW:
		r.YW += delta
	case PlaneZW:
		r.ZW += delta
	}
	return r
}

// Matrix composes the six plane rotations in the canonical order
// xy, xz, xw, yz, yw, zw. Only axis-plane compositions are expressible
// this way; an arbitrary SO(4) rotation (a general bivector) is not,
// which is a known limitation of the six-angle parameterization.
func (r RotationState) Matrix() mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, p := range AllPlanes {
		a := r.Angle(p)
		if a == 0 {
			continue
		}
		m = NewPlaneRotation(p, a).Mul4(m)
	}
	return m
}

// TransformVector applies a 4x4 matrix to a Vector4.
func TransformVector(m mgl64.Mat4, v Vector4) Vector4 {
	return FromMgl(m.Mul4x1(v.ToMgl()))
}
