package gosie4d

import "math"

// Parametric 4D manifolds: curves and surfaces sampled into wireframe
// topologies. These have no face data and render as wireframes.

// NewDuoprism builds the m,n-duoprism, the Cartesian product of two
// regular polygons. Vertices lie on a 4D torus (cos a, sin a, cos b,
// sin b); edges follow both polygon rings.
func NewDuoprism(m, n int, size float64) *Shape4D {
	if m < 3 {
		m = 3
	}
	if n < 3 {
		n = 3
	}

	verts := make([]Vector4, 0, m*n)
	for i := 0; i < m; i++ {
		theta := 2 * math.Pi * float64(i) / float64(m)
		x, y := math.Cos(theta), math.Sin(theta)
		for j := 0; j < n; j++ {
			phi := 2 * math.Pi * float64(j) / float64(n)
			verts = append(verts, NewVector4(x, y, math.Cos(phi), math.Sin(phi)).Mul(size))
		}
	}

	var edges [][2]int
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			idx := i*n + j
			edges = append(edges,
				[2]int{idx, ((i+1)%m)*n + j},
				[2]int{idx, i*n + (j+1)%n})
		}
	}

	s := NewShape4D("duoprism", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.25, XW: 0.2, YW: 0.18, ZW: 0.35}
	return s
}

// NewCliffordTorus builds the flat torus S1 x S1 embedded in the
// 3-sphere, sampled on a segmentsU x segmentsV grid. Both components
// carry weight 1/sqrt(2) so the whole surface sits on the sphere of
// radius size.
func NewCliffordTorus(segmentsU, segmentsV int, size float64) *Shape4D {
	if segmentsU < 3 {
		segmentsU = 3
	}
	if segmentsV < 3 {
		segmentsV = 3
	}

	r := size / math.Sqrt2
	verts := make([]Vector4, 0, segmentsU*segmentsV)
	for i := 0; i < segmentsU; i++ {
		u := 2 * math.Pi * float64(i) / float64(segmentsU)
		cu, su := math.Cos(u), math.Sin(u)
		for j := 0; j < segmentsV; j++ {
			v := 2 * math.Pi * float64(j) / float64(segmentsV)
			verts = append(verts, NewVector4(r*cu, r*su, r*math.Cos(v), r*math.Sin(v)))
		}
	}

	var edges [][2]int
	for i := 0; i < segmentsU; i++ {
		for j := 0; j < segmentsV; j++ {
			idx := i*segmentsV + j
			edges = append(edges,
				[2]int{idx, ((i+1)%segmentsU)*segmentsV + j},
				[2]int{idx, i*segmentsV + (j+1)%segmentsV})
		}
	}

	s := NewShape4D("clifford torus", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.25, XW: 0.22, YW: 0.18, ZW: 0.3}
	return s
}

// NewMobiusBand builds a Möbius band lifted into 4D: the usual twisted
// strip in XYZ plus a W displacement that separates the twist. The
// u-direction wrap reverses the v index, which is the half twist.
func NewMobiusBand(radius, width float64, segmentsU, segmentsV int) *Shape4D {
	if segmentsU < 16 {
		segmentsU = 16
	}
	if segmentsV < 4 {
		segmentsV = 4
	}

	verts := make([]Vector4, 0, segmentsU*segmentsV)
	for i := 0; i < segmentsU; i++ {
		u := 2 * math.Pi * float64(i) / float64(segmentsU)
		cu, su := math.Cos(u), math.Sin(u)
		twist := u / 2
		ct, st := math.Cos(twist), math.Sin(twist)
		for j := 0; j < segmentsV; j++ {
			v := width * (float64(j)/float64(segmentsV-1) - 0.5)
			verts = append(verts, NewVector4(
				(radius+v*ct)*cu,
				(radius+v*ct)*su,
				v*st,
				v*math.Sin(twist+math.Pi/4)*0.8,
			))
		}
	}

	var edges [][2]int
	for i := 0; i < segmentsU; i++ {
		for j := 0; j < segmentsV; j++ {
			idx := i*segmentsV + j
			if j+1 < segmentsV {
				edges = append(edges, [2]int{idx, idx + 1})
			}
			if i+1 < segmentsU {
				edges = append(edges, [2]int{idx, (i+1)*segmentsV + j})
			} else {
				edges = append(edges, [2]int{idx, segmentsV - 1 - j})
			}
		}
	}

	s := NewShape4D("mobius band", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.12, XW: 0.15, YW: 0.12, ZW: 0.1}
	return s
}

// NewSpherinder builds the product of a 2-sphere and a line segment:
// two identical sphere shells at W = ±height/2 with rungs between
// corresponding points.
func NewSpherinder(radius, height float64, segments, stacks int) *Shape4D {
	if segments < 8 {
		segments = 8
	}
	if stacks < 4 {
		stacks = 4
	}

	ringSize := (stacks + 1) * segments
	verts := make([]Vector4, 0, 2*ringSize)
	for _, w := range [2]float64{-height / 2, height / 2} {
		for i := 0; i <= stacks; i++ {
			phi := math.Pi * float64(i) / float64(stacks)
			sp, cp := math.Sin(phi), math.Cos(phi)
			for j := 0; j < segments; j++ {
				theta := 2 * math.Pi * float64(j) / float64(segments)
				verts = append(verts, NewVector4(
					radius*math.Cos(theta)*sp,
					radius*math.Sin(theta)*sp,
					radius*cp,
					w,
				))
			}
		}
	}

	var edges [][2]int
	for layer := 0; layer < 2; layer++ {
		base := layer * ringSize
		for i := 0; i <= stacks; i++ {
			for j := 0; j < segments; j++ {
				idx := base + i*segments + j
				edges = append(edges, [2]int{idx, base + i*segments + (j+1)%segments})
				if i < stacks {
					edges = append(edges, [2]int{idx, base + (i+1)*segments + j})
				}
			}
		}
	}
	for i := 0; i < ringSize; i++ {
		edges = append(edges, [2]int{i, i + ringSize})
	}

	s := NewShape4D("spherinder", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.15, XW: 0.18, YW: 0.14, ZW: 0.1}
	return s
}

// NewTorusKnot builds a (p,q) torus knot traced on the Clifford torus:
// p turns in the XY circle for every q turns in ZW.
func NewTorusKnot(p, q, segments int, radius float64) *Shape4D {
	if segments < 40 {
		segments = 40
	}

	verts := make([]Vector4, segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		u := float64(p) * t
		v := float64(q) * t
		verts[i] = NewVector4(
			radius*math.Cos(u),
			radius*math.Sin(u),
			radius*math.Cos(v),
			radius*math.Sin(v),
		)
	}

	edges := make([][2]int, segments)
	for i := 0; i < segments; i++ {
		edges[i] = [2]int{i, (i + 1) % segments}
	}

	s := NewShape4D("torus knot", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.28, XW: 0.4, YW: 0.34, ZW: 0.22}
	return s
}

// NewHelix builds an open helix in XYZ with a linear W drift that keeps
// the projected path from folding back on itself.
func NewHelix(turns, segments int, radius, pitch, wAmp float64) *Shape4D {
	if segments < 2 {
		segments = 2
	}

	total := 2 * math.Pi * float64(turns)
	verts := make([]Vector4, segments)
	for i := 0; i < segments; i++ {
		s := float64(i) / float64(segments-1)
		t := total * s
		verts[i] = NewVector4(
			radius*math.Cos(t),
			radius*math.Sin(t),
			pitch*(s-0.5),
			wAmp*(s-0.5),
		)
	}

	edges := make([][2]int, segments-1)
	for i := range edges {
		edges[i] = [2]int{i, i + 1}
	}

	s := NewShape4D("helix", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.08, XW: 0.1, YW: 0.08, ZW: 0.06}
	s.SetPosition(NewVector4(0, 0, 1.2, 0))
	return s
}

// NewHopfLink builds two linked great circles: one in the XY plane,
// one in ZW. Any 4D rotation keeps them linked; the projection shows
// the classic Hopf link. Starts pre-tilted so the link is visible
// before any spin accumulates.
func NewHopfLink(radius float64, segments int) *Shape4D {
	if segments < 24 {
		segments = 24
	}

	verts := make([]Vector4, 0, 2*segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts, NewVector4(radius*math.Cos(t), radius*math.Sin(t), 0, 0))
	}
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts, NewVector4(0, 0, radius*math.Cos(t), radius*math.Sin(t)))
	}

	var edges [][2]int
	for i := 0; i < segments; i++ {
		edges = append(edges, [2]int{i, (i + 1) % segments})
	}
	for i := 0; i < segments; i++ {
		edges = append(edges, [2]int{segments + i, segments + (i+1)%segments})
	}

	s := NewShape4D("hopf link", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.22, XW: 0.32, YW: 0.26, ZW: 0.18}
	s.SetRotation(RotationState{XY: 0.4, XW: 0.55, YW: 0.35, ZW: 0.25})
	return s
}

// ShapeEntry names one browsable shape and how to build it with its
// default parameters.
type ShapeEntry struct {
	Name  string
	Build func() *Shape4D
}

// ShapeCatalog lists every shape the browser can cycle through, in
// menu order.
func ShapeCatalog() []ShapeEntry {
	return []ShapeEntry{
		{"tesseract", func() *Shape4D { return NewTesseract(2) }},
		{"pentachoron", func() *Shape4D { return NewPentachoron(1.4) }},
		{"16-cell", func() *Shape4D { return NewSixteenCell(1.4) }},
		{"24-cell", func() *Shape4D { return NewTwentyFourCell(1.2) }},
		{"600-cell", func() *Shape4D { return NewSixHundredCell(0.8) }},
		{"penteract frame", func() *Shape4D { return NewPenteractFrame(2) }},
		{"hypercube grid", func() *Shape4D { return NewHypercubeGrid(3, 1.2) }},
		{"duoprism", func() *Shape4D { return NewDuoprism(3, 4, 1.2) }},
		{"clifford torus", func() *Shape4D { return NewCliffordTorus(32, 16, 1.5) }},
		{"mobius band", func() *Shape4D { return NewMobiusBand(1.2, 0.5, 64, 12) }},
		{"spherinder", func() *Shape4D { return NewSpherinder(1, 1, 24, 12) }},
		{"torus knot", func() *Shape4D { return NewTorusKnot(3, 5, 240, 1.2) }},
		{"helix", func() *Shape4D { return NewHelix(3, 320, 1, 2, 1.2) }},
		{"hopf link", func() *Shape4D { return NewHopfLink(1.2, 160) }},
	}
}

// BuildShape looks a catalog shape up by name.
func BuildShape(name string) (*Shape4D, bool) {
	for _, e := range ShapeCatalog() {
		if e.Name == name {
			return e.Build(), true
		}
	}
	return nil, false
}
