package gosie4d

import (
	"fmt"
	"math"
)

// Shape generators. Each builds a fixed vertex/edge/face topology as a
// pure function of its parameters; all transform state lives on the
// returned Shape4D.

// vertexSet deduplicates vertices by quantized coordinates and hands
// out stable indices in insertion order.
type vertexSet struct {
	verts []Vector4
	index map[[4]int64]int
}

func newVertexSet() *vertexSet {
	return &vertexSet{index: make(map[[4]int64]int)}
}

func (vs *vertexSet) key(v Vector4) [4]int64 {
	const q = 1e6
	return [4]int64{
		int64(math.Round(v.X * q)),
		int64(math.Round(v.Y * q)),
		int64(math.Round(v.Z * q)),
		int64(math.Round(v.W * q)),
	}
}

// Add returns the index of v, inserting it if not seen before.
func (vs *vertexSet) Add(v Vector4) int {
	k := vs.key(v)
	if i, ok := vs.index[k]; ok {
		return i
	}
	i := len(vs.verts)
	vs.verts = append(vs.verts, v)
	vs.index[k] = i
	return i
}

func (vs *vertexSet) Vertices() []Vector4 { return vs.verts }

// edgesAtDistance connects every vertex pair whose distance is within
// tolerance of target. Several regular polytopes define their edges
// exactly this way.
func edgesAtDistance(verts []Vector4, target, tol float64) [][2]int {
	var edges [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			d := verts[i].DistanceTo(verts[j])
			if math.Abs(d-target) <= tol {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

// shortestDistance finds the minimum nonzero pairwise distance.
func shortestDistance(verts []Vector4) float64 {
	best := math.Inf(1)
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if d := verts[i].DistanceTo(verts[j]); d > 1e-6 && d < best {
				best = d
			}
		}
	}
	return best
}

// NewTesseract builds the 4D hypercube: 16 vertices at (±size/2)^4,
// 32 edges between vertices differing in one coordinate, 24 square
// faces. Vertex index is the 4-bit pattern (x<<3 | y<<2 | z<<1 | w).
func NewTesseract(size float64) *Shape4D {
	half := size / 2
	verts := make([]Vector4, 16)
	for i := 0; i < 16; i++ {
		sgn := func(bit int) float64 {
			if i>>bit&1 == 1 {
				return half
			}
			return -half
		}
		verts[i] = NewVector4(sgn(3), sgn(2), sgn(1), sgn(0))
	}

	var edges [][2]int
	for i := 0; i < 16; i++ {
		for bit := 0; bit < 4; bit++ {
			j := i ^ (1 << bit)
			if j > i {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	// 24 squares: pick two varying axes, fix the other two.
	var faces [][]int
	axisPairs := [6][2]int{{3, 2}, {3, 1}, {3, 0}, {2, 1}, {2, 0}, {1, 0}}
	for _, pair := range axisPairs {
		var fixed []int
		for bit := 0; bit < 4; bit++ {
			if bit != pair[0] && bit != pair[1] {
				fixed = append(fixed, bit)
			}
		}
		for f := 0; f < 4; f++ {
			base := (f&1)<<fixed[0] | (f>>1&1)<<fixed[1]
			a := base
			b := base | 1<<pair[0]
			c := base | 1<<pair[0] | 1<<pair[1]
			d := base | 1<<pair[1]
			faces = append(faces, []int{a, b, c, d})
		}
	}

	s := NewShape4D("tesseract", verts, edges, faces)
	s.SpinRates = RotationState{XY: 0.5, XW: 0.35, YW: 0.3, ZW: 0.25}
	return s
}

// NewPentachoron builds the 5-cell, the 4D simplex. Every vertex pair
// is an edge (K5) and every triple a triangular face.
func NewPentachoron(size float64) *Shape4D {
	s5 := math.Sqrt(5)
	raw := []Vector4{
		NewVector4(1, 1, 1, -1/s5),
		NewVector4(1, -1, -1, -1/s5),
		NewVector4(-1, 1, -1, -1/s5),
		NewVector4(-1, -1, 1, -1/s5),
		NewVector4(0, 0, 0, s5-1/s5),
	}

	centroid := Vector4{}
	for _, v := range raw {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1.0 / float64(len(raw)))

	maxR := 0.0
	for i, v := range raw {
		raw[i] = v.Sub(centroid)
		if r := raw[i].Len(); r > maxR {
			maxR = r
		}
	}
	for i, v := range raw {
		raw[i] = v.Mul(size / maxR)
	}

	var edges [][2]int
	var faces [][]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
			for k := j + 1; k < 5; k++ {
				faces = append(faces, []int{i, j, k})
			}
		}
	}

	s := NewShape4D("pentachoron", raw, edges, faces)
	s.SpinRates = RotationState{XY: 0.4, XW: 0.5, YW: 0.35, ZW: 0.3}
	return s
}

// axisVertices lists the 8 unit vertices (±r along each axis).
func axisVertices(r float64) []Vector4 {
	verts := make([]Vector4, 0, 8)
	for axis := 0; axis < 4; axis++ {
		for _, sign := range [2]float64{-r, r} {
			v := Vector4{}
			switch axis {
			case 0:
				v.X = sign
			case 1:
				v.Y = sign
			case 2:
				v.Z = sign
			case 3:
				v.W = sign
			}
			verts = append(verts, v)
		}
	}
	return verts
}

// NewSixteenCell builds the 16-cell (hexadecachoron): 8 vertices on
// the axes, 24 edges joining every non-antipodal pair, 32 triangular
// faces.
func NewSixteenCell(size float64) *Shape4D {
	verts := axisVertices(size)

	// Vertices 2k and 2k+1 are antipodal; every other pair is an edge.
	antipodal := func(i, j int) bool { return i/2 == j/2 }

	var edges [][2]int
	var faces [][]int
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if antipodal(i, j) {
				continue
			}
			edges = append(edges, [2]int{i, j})
			for k := j + 1; k < 8; k++ {
				if antipodal(i, k) || antipodal(j, k) {
					continue
				}
				faces = append(faces, []int{i, j, k})
			}
		}
	}

	s := NewShape4D("16-cell", verts, edges, faces)
	s.SpinRates = RotationState{XY: 0.4, XW: 0.45, YW: 0.3, ZW: 0.25}
	return s
}

// NewTwentyFourCell builds the 24-cell: 8 axis vertices at ±size plus
// the 16 vertices (±size/2)^4. Edges connect pairs at distance size.
func NewTwentyFourCell(size float64) *Shape4D {
	verts := axisVertices(size)
	half := size / 2
	for i := 0; i < 16; i++ {
		sgn := func(bit int) float64 {
			if i>>bit&1 == 1 {
				return half
			}
			return -half
		}
		verts = append(verts, NewVector4(sgn(3), sgn(2), sgn(1), sgn(0)))
	}

	tol := 1e-4 * math.Max(1, size)
	edges := edgesAtDistance(verts, size, tol)

	s := NewShape4D("24-cell", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.35, XW: 0.25, YW: 0.2, ZW: 0.18}
	return s
}

// NewSixHundredCell builds the regular 600-cell: 120 vertices, 720
// edges. Vertices are the 8 axis points, the 16 half-points and the 96
// even permutations of (0, 1/2, phi/2, 1/(2*phi)) under all sign
// flips; edges connect nearest neighbors. Scaled so the edge length
// is size.
func NewSixHundredCell(size float64) *Shape4D {
	phi := (1 + math.Sqrt(5)) / 2
	a := 0.5
	b := phi / 2
	c := 1 / (2 * phi)

	vs := newVertexSet()
	for _, v := range axisVertices(1) {
		vs.Add(v)
	}
	for i := 0; i < 16; i++ {
		sgn := func(bit int) float64 {
			if i>>bit&1 == 1 {
				return a
			}
			return -a
		}
		vs.Add(NewVector4(sgn(3), sgn(2), sgn(1), sgn(0)))
	}

	baseVals := [4]float64{0, a, b, c}
	for _, perm := range evenPermutations4() {
		vals := [4]float64{
			baseVals[perm[0]], baseVals[perm[1]],
			baseVals[perm[2]], baseVals[perm[3]],
		}
		// Sign flips apply to the three nonzero components.
		for signs := 0; signs < 8; signs++ {
			var out [4]float64
			k := 0
			for idx, val := range vals {
				if val == 0 {
					out[idx] = 0
					continue
				}
				if signs>>k&1 == 1 {
					out[idx] = -val
				} else {
					out[idx] = val
				}
				k++
			}
			vs.Add(NewVector4(out[0], out[1], out[2], out[3]))
		}
	}

	verts := vs.Vertices()
	if len(verts) != 120 {
		panic(fmt.Sprintf("600-cell: expected 120 vertices, got %d", len(verts)))
	}

	minEdge := shortestDistance(verts)
	scale := size / minEdge
	for i, v := range verts {
		verts[i] = v.Mul(scale)
	}

	edgeLen := minEdge * scale
	edges := edgesAtDistance(verts, edgeLen, edgeLen*0.05)

	s := NewShape4D("600-cell", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.35, XW: 0.45, YW: 0.3, ZW: 0.25}
	return s
}

// evenPermutations4 lists the 12 even permutations of {0,1,2,3}.
func evenPermutations4() [][4]int {
	var perms [][4]int
	var idx [4]int
	var rec func(depth int, used int)
	rec = func(depth int, used int) {
		if depth == 4 {
			inv := 0
			for i := 0; i < 4; i++ {
				for j := i + 1; j < 4; j++ {
					if idx[i] > idx[j] {
						inv++
					}
				}
			}
			if inv%2 == 0 {
				perms = append(perms, idx)
			}
			return
		}
		for v := 0; v < 4; v++ {
			if used>>v&1 == 1 {
				continue
			}
			idx[depth] = v
			rec(depth+1, used|1<<v)
		}
	}
	rec(0, 0)
	return perms
}

// NewPenteractFrame builds a 4D shadow of the 5-cube: the 32 vertices
// of (±size/2)^5 projected down by shrinking with the dropped fifth
// coordinate, keeping the 80 hypercube edges.
func NewPenteractFrame(size float64) *Shape4D {
	half := size / 2
	verts := make([]Vector4, 32)
	for i := 0; i < 32; i++ {
		sgn := func(bit int) float64 {
			if i>>bit&1 == 1 {
				return half
			}
			return -half
		}
		w5 := sgn(0)
		shrink := 1 / (1 + math.Abs(w5)*0.4)
		verts[i] = NewVector4(sgn(4), sgn(3), sgn(2), sgn(1)).Mul(shrink)
	}

	var edges [][2]int
	for i := 0; i < 32; i++ {
		for bit := 0; bit < 5; bit++ {
			j := i ^ (1 << bit)
			if j > i {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	s := NewShape4D("penteract frame", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.2, XW: 0.18, YW: 0.16, ZW: 0.14}
	return s
}

// NewHypercubeGrid builds a divisions^4 lattice spanning [-size, size]
// on each axis, with edges between immediate neighbors.
func NewHypercubeGrid(divisions int, size float64) *Shape4D {
	if divisions < 2 {
		divisions = 2
	}
	coord := func(i int) float64 {
		return -size + 2*size*float64(i)/float64(divisions-1)
	}
	stride := [4]int{divisions * divisions * divisions, divisions * divisions, divisions, 1}

	verts := make([]Vector4, 0, divisions*divisions*divisions*divisions)
	var edges [][2]int
	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			for k := 0; k < divisions; k++ {
				for l := 0; l < divisions; l++ {
					verts = append(verts, NewVector4(coord(i), coord(j), coord(k), coord(l)))
					src := i*stride[0] + j*stride[1] + k*stride[2] + l
					if i+1 < divisions {
						edges = append(edges, [2]int{src, src + stride[0]})
					}
					if j+1 < divisions {
						edges = append(edges, [2]int{src, src + stride[1]})
					}
					if k+1 < divisions {
						edges = append(edges, [2]int{src, src + stride[2]})
					}
					if l+1 < divisions {
						edges = append(edges, [2]int{src, src + stride[3]})
					}
				}
			}
		}
	}

	s := NewShape4D("hypercube grid", verts, edges, nil)
	s.SpinRates = RotationState{XY: 0.18, XW: 0.16, YW: 0.14, ZW: 0.25}
	return s
}
