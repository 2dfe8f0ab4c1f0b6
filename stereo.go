package gosie4d

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// StereoMode selects how the two eye renders are composited.
type StereoMode int

const (
	StereoSideBySide StereoMode = iota
	StereoCrossEye
	StereoAnaglyphRedCyan
	StereoAnaglyphGreenMagenta
	stereoModeCount
)

func (m StereoMode) String() string {
	switch m {
	case StereoSideBySide:
		return "side-by-side"
	case StereoCrossEye:
		return "cross-eye"
	case StereoAnaglyphRedCyan:
		return "anaglyph red/cyan"
	case StereoAnaglyphGreenMagenta:
		return "anaglyph green/magenta"
	}
	return "unknown"
}

func (m StereoMode) eyeColors() (left, right color.RGBA) {
	switch m {
	case StereoAnaglyphGreenMagenta:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255},
			color.RGBA{R: 255, G: 0, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255},
			color.RGBA{R: 0, G: 255, B: 255, A: 255}
	}
}

const (
	minEyeSeparation = 0.01
	maxEyeSeparation = 1.0
)

// StereoRenderer runs a pipeline's frame queue once per eye with a
// horizontal offset injected before projection and composites the two
// results. Side-by-side modes place half-width renders next to each
// other; anaglyph modes draw each eye's wireframe in a flat filter
// color and blend them additively.
type StereoRenderer struct {
	camera        *Camera
	mode          StereoMode
	eyeSeparation float64

	left  *ebiten.Image
	right *ebiten.Image

	eyeCam  Camera
	eyePipe *Pipeline
}

func NewStereoRenderer(camera *Camera, mode StereoMode) *StereoRenderer {
	s := &StereoRenderer{
		camera:        camera,
		mode:          mode,
		eyeSeparation: 0.1,
	}
	s.eyePipe = NewPipeline(&s.eyeCam, nil)
	return s
}

func (s *StereoRenderer) Mode() StereoMode { return s.mode }

func (s *StereoRenderer) SetMode(m StereoMode) { s.mode = m }

// CycleMode advances to the next compositing mode, wrapping around.
func (s *StereoRenderer) CycleMode() {
	s.mode = (s.mode + 1) % stereoModeCount
}

func (s *StereoRenderer) EyeSeparation() float64 { return s.eyeSeparation }

// SetEyeSeparation clamps into the usable range. Below it the two eye
// images coincide, above it they no longer fuse.
func (s *StereoRenderer) SetEyeSeparation(sep float64) {
	s.eyeSeparation = mgl64.Clamp(sep, minEyeSeparation, maxEyeSeparation)
}

// AdjustEyeSeparation nudges the separation, for key repeat handlers.
func (s *StereoRenderer) AdjustEyeSeparation(delta float64) {
	s.SetEyeSeparation(s.eyeSeparation + delta)
}

// RenderFrame draws the pipeline's queued objects once per eye and
// composites onto screen. The queue itself is left untouched, so the
// caller still owns BeginFrame.
func (s *StereoRenderer) RenderFrame(screen *ebiten.Image, p *Pipeline) {
	w := s.camera.ScreenWidth
	h := s.camera.ScreenHeight

	switch s.mode {
	case StereoSideBySide, StereoCrossEye:
		s.ensureSurfaces(w/2, h)
		s.renderEye(s.left, p, -s.eyeSeparation/2, nil)
		s.renderEye(s.right, p, +s.eyeSeparation/2, nil)

		first, second := s.left, s.right
		if s.mode == StereoCrossEye {
			first, second = second, first
		}
		screen.DrawImage(first, nil)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(w/2), 0)
		screen.DrawImage(second, op)

	default:
		s.ensureSurfaces(w, h)
		leftClr, rightClr := s.mode.eyeColors()
		s.renderEye(s.left, p, -s.eyeSeparation/2, &leftClr)
		s.renderEye(s.right, p, +s.eyeSeparation/2, &rightClr)

		// BlendLighter adds channels with saturation at 1.0, which is
		// exactly the anaglyph combine rule.
		op := &ebiten.DrawImageOptions{}
		op.Blend = ebiten.BlendLighter
		screen.DrawImage(s.left, op)
		screen.DrawImage(s.right, op)
	}
}

func (s *StereoRenderer) ensureSurfaces(w, h int) {
	if s.left != nil && s.left.Bounds().Dx() == w && s.left.Bounds().Dy() == h {
		return
	}
	s.left = ebiten.NewImage(w, h)
	s.right = ebiten.NewImage(w, h)
}

// renderEye replays the queue through a per-eye camera copy. The eye
// offset shifts the camera along X, which subtracts the same offset
// from every vertex in view space. flat, when set, forces a single
// wireframe color for the anaglyph channels.
func (s *StereoRenderer) renderEye(target *ebiten.Image, p *Pipeline, eyeOffset float64, flat *color.RGBA) {
	target.Clear()

	s.eyeCam = *s.camera
	s.eyeCam.Position.X += eyeOffset
	s.eyeCam.StereoPerspective = true
	s.eyeCam.ScreenWidth = target.Bounds().Dx()
	s.eyeCam.ScreenHeight = target.Bounds().Dy()

	s.eyePipe.SetCanvas(NewEbitenCanvas(target))
	for _, q := range p.queue {
		style := q.style
		if flat != nil {
			style.Mode = Wireframe
			style.Color = *flat
			style.Alpha = 255
		}
		s.eyePipe.renderObject(q.obj, style)
	}
}

// CompositeAnaglyph additively blends two eye images of equal size into
// a new one, saturating each channel at 255 instead of wrapping. This
// is the software twin of the BlendLighter GPU path, used when frames
// are captured to disk.
func CompositeAnaglyph(left, right *image.RGBA) *image.RGBA {
	out := image.NewRGBA(left.Rect)
	for i := range out.Pix {
		sum := int(left.Pix[i]) + int(right.Pix[i])
		if sum > 255 {
			sum = 255
		}
		out.Pix[i] = uint8(sum)
	}
	return out
}
