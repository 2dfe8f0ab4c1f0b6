package gosie4d

// worldEntry pairs a shape with the style it renders under.
type worldEntry struct {
	shape *Shape4D
	style RenderStyle
}

// World4D owns the set of shapes in a scene, advances their spin each
// frame and feeds them into a pipeline. Objects keep their own 4D
// positions; the pipeline handles depth ordering per primitive.
type World4D struct {
	entries  []worldEntry
	spinning bool

	// Exponentially smoothed frame delta, so one slow frame does not
	// visibly jerk the spin.
	smoothedDt float64
}

func NewWorld4D() *World4D {
	return &World4D{spinning: true}
}

func (w *World4D) AddShape(s *Shape4D, style RenderStyle) {
	w.entries = append(w.entries, worldEntry{shape: s, style: style})
}

func (w *World4D) Shapes() []*Shape4D {
	out := make([]*Shape4D, len(w.entries))
	for i, e := range w.entries {
		out[i] = e.shape
	}
	return out
}

func (w *World4D) Clear() { w.entries = w.entries[:0] }

func (w *World4D) Spinning() bool { return w.spinning }

func (w *World4D) ToggleSpin() { w.spinning = !w.spinning }

// SetStyle replaces the style of every shape in the scene.
func (w *World4D) SetStyle(style RenderStyle) {
	for i := range w.entries {
		w.entries[i].style = style
	}
}

// Update advances shape spin by the frame delta in seconds. The delta
// is smoothed toward the incoming value so a single long frame does
// not snap every rotation forward.
func (w *World4D) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if dt > 0.25 {
		dt = 0.25
	}
	if w.smoothedDt == 0 {
		w.smoothedDt = dt
	} else {
		w.smoothedDt += (dt - w.smoothedDt) * 0.2
	}

	if !w.spinning {
		return
	}
	for _, e := range w.entries {
		e.shape.Spin(w.smoothedDt)
	}
}

// QueueAll pushes every shape onto the pipeline for this frame.
func (w *World4D) QueueAll(p *Pipeline) {
	for _, e := range w.entries {
		p.Queue(e.shape, e.style)
	}
}
