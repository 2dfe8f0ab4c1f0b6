package gosie4d

// Renderable4D is the only view of an object the render pipeline has:
// a transformed vertex list plus the index topology that connects it.
// Faces may be nil for shapes that only make sense as wireframes.
type Renderable4D interface {
	TransformedVertices() []Vector4
	Edges() [][2]int
	Faces() [][]int
}

// Shape4D is an immutable 4D topology with a mutable pose. The base
// vertex list, edge list and face list are fixed at construction; the
// pose (rotation, scale, position) changes every frame under auto-spin
// or user input.
type Shape4D struct {
	name     string
	base     []Vector4
	edges    [][2]int
	faces    [][]int
	position Vector4
	rotation RotationState
	scale    float64

	// SpinRates drives per-frame auto-spin (radians/second per plane)
	// when the owning scene calls Spin. Zero value means no spin.
	SpinRates RotationState

	// Transform cache. dirty is the explicit Clean/Dirty state: every
	// pose mutator sets it, and only TransformedVertices clears it.
	transformed []Vector4
	dirty       bool
}

// NewShape4D builds a shape from its topology. The slices are retained,
// not copied; generators hand over freshly built slices.
func NewShape4D(name string, vertices []Vector4, edges [][2]int, faces [][]int) *Shape4D {
	return &Shape4D{
		name:  name,
		base:  vertices,
		edges: edges,
		faces: faces,
		scale: 1.0,
		dirty: true,
	}
}

func (s *Shape4D) Name() string { return s.name }

// BaseVertices returns the untransformed vertex list.
func (s *Shape4D) BaseVertices() []Vector4 { return s.base }

func (s *Shape4D) Edges() [][2]int { return s.edges }

func (s *Shape4D) Faces() [][]int { return s.faces }

func (s *Shape4D) Position() Vector4 { return s.position }

func (s *Shape4D) Rotation() RotationState { return s.rotation }

func (s *Shape4D) Scale() float64 { return s.scale }

// Rotate adds delta radians to the accumulated angle for the plane and
// invalidates the transform cache.
func (s *Shape4D) Rotate(p Plane, delta float64) {
	s.rotation = s.rotation.Add(p, delta)
	s.dirty = true
}

func (s *Shape4D) SetPosition(p Vector4) {
	s.position = p
	s.dirty = true
}

func (s *Shape4D) SetScale(scale float64) {
	s.scale = scale
	s.dirty = true
}

func (s *Shape4D) SetRotation(r RotationState) {
	s.rotation = r
	s.dirty = true
}

// Spin advances the accumulated rotation by SpinRates*dt. The scene loop
// calls this once per frame; there is no background spin state anywhere
// else.
func (s *Shape4D) Spin(dt float64) {
	if dt == 0 {
		return
	}
	for _, p := range AllPlanes {
		if rate := s.SpinRates.Angle(p); rate != 0 {
			s.rotation = s.rotation.Add(p, rate*dt)
		}
	}
	s.dirty = true
}

// TransformedVertices returns the world-space vertices: each base vertex
// rotated by the composed plane rotations (canonical order), scaled,
// then translated. The result is cached until the next pose mutation;
// the cache is purely a performance detail and the output is a pure
// function of (base, rotation, scale, position).
func (s *Shape4D) TransformedVertices() []Vector4 {
	if !s.dirty && s.transformed != nil {
		return s.transformed
	}
	rot := s.rotation.Matrix()
	if s.transformed == nil || len(s.transformed) != len(s.base) {
		s.transformed = make([]Vector4, len(s.base))
	}
	for i, v := range s.base {
		s.transformed[i] = TransformVector(rot, v).Mul(s.scale).Add(s.position)
	}
	s.dirty = false
	return s.transformed
}
