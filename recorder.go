package gosie4d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Recorder captures rendered frames to animated GIFs. Frames are
// quantized as they arrive so memory stays bounded by the paletted
// size, and capture stops once maxFrames is hit.
type Recorder struct {
	frames    []*image.Paletted
	delay     int // per frame, 100ths of a second
	maxFrames int
	recording bool
}

// NewRecorder creates a recorder with the given inter-frame delay in
// 100ths of a second (e.g. 5 => 20 fps).
func NewRecorder(delay int) *Recorder {
	return &Recorder{
		delay:     delay,
		maxFrames: 600,
	}
}

func (r *Recorder) Recording() bool { return r.recording }

func (r *Recorder) FrameCount() int { return len(r.frames) }

func (r *Recorder) Start() {
	r.frames = r.frames[:0]
	r.recording = true
}

func (r *Recorder) Stop() { r.recording = false }

// CaptureFrame grabs the current screen contents if recording is on.
func (r *Recorder) CaptureFrame(screen *ebiten.Image) {
	if !r.recording || len(r.frames) >= r.maxFrames {
		return
	}
	rgba := CaptureRGBA(screen)
	pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
	r.frames = append(r.frames, pimg)
}

// SaveGIF writes the captured frames as a looping animated GIF.
func (r *Recorder) SaveGIF(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames captured")
	}
	out := &gif.GIF{
		Image:     r.frames,
		Delay:     make([]int, len(r.frames)),
		LoopCount: 0,
	}
	for i := range out.Delay {
		out.Delay[i] = r.delay
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, out); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// CaptureRGBA copies an ebiten image's pixels into a plain image.RGBA,
// usable off the render thread.
func CaptureRGBA(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(rgba.Pix)
	return rgba
}

// SaveScreenshot writes the current screen contents as a PNG.
func SaveScreenshot(screen *ebiten.Image, path string) error {
	rgba := CaptureRGBA(screen)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, rgba); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
