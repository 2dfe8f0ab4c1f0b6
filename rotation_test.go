package gosie4d

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vectorsAlmostEqual(a, b Vector4, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol &&
		math.Abs(a.W-b.W) <= tol
}

func TestPlaneRotationQuarterTurn(t *testing.T) {
	m := NewPlaneRotation(PlaneXY, math.Pi/2)
	got := TransformVector(m, NewVector4(1, 0, 0, 0))
	want := NewVector4(0, 1, 0, 0)
	if !vectorsAlmostEqual(got, want, 1e-12) {
		t.Errorf("xy quarter turn: got %+v, want %+v", got, want)
	}

	m = NewPlaneRotation(PlaneZW, math.Pi/2)
	got = TransformVector(m, NewVector4(0.5, -0.5, 1, 0))
	want = NewVector4(0.5, -0.5, 0, 1)
	if !vectorsAlmostEqual(got, want, 1e-12) {
		t.Errorf("zw quarter turn: got %+v, want %+v", got, want)
	}
}

func TestPlaneRotationLeavesOtherAxesAlone(t *testing.T) {
	m := NewPlaneRotation(PlaneXY, 1.234)
	got := TransformVector(m, NewVector4(0, 0, 3, -7))
	want := NewVector4(0, 0, 3, -7)
	if !vectorsAlmostEqual(got, want, 1e-12) {
		t.Errorf("xy rotation moved z/w: got %+v", got)
	}
}

func TestPlaneRotationRoundTrip(t *testing.T) {
	v := NewVector4(0.3, -0.7, 1.1, 0.9)
	angles := []float64{0.001, math.Pi / 4, math.Pi, 2*math.Pi - 0.001}
	for _, p := range AllPlanes {
		for _, theta := range angles {
			fwd := NewPlaneRotation(p, theta)
			back := NewPlaneRotation(p, -theta)
			got := TransformVector(back, TransformVector(fwd, v))
			if !vectorsAlmostEqual(got, v, 1e-9) {
				t.Errorf("plane %s theta %v: round trip got %+v, want %+v", p, theta, got, v)
			}
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := NewVector4(1, 2, 3, 4)
	r := RotationState{XY: 0.7, XZ: 1.1, XW: 0.4, YZ: 2.2, YW: 0.9, ZW: 1.6}
	got := TransformVector(r.Matrix(), v)
	if !almostEqual(got.Len(), v.Len()) {
		t.Errorf("length changed: got %v, want %v", got.Len(), v.Len())
	}
}

func TestRotationOrderIsFixed(t *testing.T) {
	// xy then xw is not xw then xy; Matrix must always use the
	// canonical order so results are reproducible.
	a := NewPlaneRotation(PlaneXW, 0.9).Mul4(NewPlaneRotation(PlaneXY, 0.7))
	b := NewPlaneRotation(PlaneXY, 0.7).Mul4(NewPlaneRotation(PlaneXW, 0.9))
	v := NewVector4(1, 0.5, -0.25, 2)
	if vectorsAlmostEqual(TransformVector(a, v), TransformVector(b, v), 1e-12) {
		t.Fatal("expected xy/xw composition order to matter")
	}

	r := RotationState{XY: 0.7, XW: 0.9}
	got := TransformVector(r.Matrix(), v)
	want := TransformVector(a, v)
	if !vectorsAlmostEqual(got, want, 1e-12) {
		t.Errorf("Matrix composition order: got %+v, want %+v", got, want)
	}
}

func TestRotationStateAddIsAValue(t *testing.T) {
	r := RotationState{}
	r2 := r.Add(PlaneYW, 1.5)
	if r.YW != 0 {
		t.Error("Add mutated the receiver")
	}
	if r2.YW != 1.5 {
		t.Errorf("Add: got %v, want 1.5", r2.YW)
	}
	if r2.Angle(PlaneYW) != 1.5 {
		t.Errorf("Angle: got %v, want 1.5", r2.Angle(PlaneYW))
	}
}

func TestPlaneNames(t *testing.T) {
	want := []string{"xy", "xz", "xw", "yz", "yw", "zw"}
	for i, p := range AllPlanes {
		if p.String() != want[i] {
			t.Errorf("plane %d: got %q, want %q", i, p.String(), want[i])
		}
	}
}
