package gosie4d

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DemoMode selects which application drives the renderer.
type DemoMode int

const (
	// DemoTesseract spins a single tesseract.
	DemoTesseract DemoMode = iota
	// DemoBrowser cycles through the shape catalog.
	DemoBrowser
	// DemoStereo shows the stereo compositor.
	DemoStereo
	// DemoSandbox is free camera flight around a small scene.
	DemoSandbox
)

// Game is the ebiten driver: it owns the scene, camera and pipeline
// and maps input to them. One instance per window.
type Game struct {
	cfg  *Config
	mode DemoMode

	camera   *Camera
	pipeline *Pipeline
	world    *World4D
	stereo   *StereoRenderer
	recorder *Recorder

	style      RenderStyle
	background color.RGBA

	catalog    []ShapeEntry
	catalogIdx int

	lastFrame time.Time

	dragging     bool
	lastX, lastY int

	pendingScreenshot bool
}

func NewGame(cfg *Config, mode DemoMode) *Game {
	g := &Game{
		cfg:      cfg,
		mode:     mode,
		recorder: NewRecorder(5),
		style:    DefaultStyle(),
		background: color.RGBA{
			R: cfg.Render.BackgroundColor[0],
			G: cfg.Render.BackgroundColor[1],
			B: cfg.Render.BackgroundColor[2],
			A: 255,
		},
	}
	g.style.LineWidth = float32(cfg.Render.DefaultLineWidth)

	g.camera = NewCamera(cfg.Window.Width, cfg.Window.Height)
	cfg.ApplyToCamera(g.camera)

	g.pipeline = NewPipeline(g.camera, nil)
	if cfg.Render.DepthSort {
		g.pipeline.SetDepthBuffer(NewDepthBuffer(cfg.Window.Width, cfg.Window.Height))
	}
	g.world = NewWorld4D()

	switch mode {
	case DemoBrowser:
		g.catalog = ShapeCatalog()
		g.selectShape(0)
	case DemoStereo:
		g.stereo = NewStereoRenderer(g.camera, StereoAnaglyphRedCyan)
		shape := NewTesseract(2)
		shape.SpinRates = cfg.SpinRates()
		g.world.AddShape(shape, g.style)
	case DemoSandbox:
		tess := NewTesseract(2)
		tess.SpinRates = cfg.SpinRates()
		g.world.AddShape(tess, g.style)

		knot := NewTorusKnot(3, 5, 240, 1.2)
		knot.SetPosition(NewVector4(3.5, 0, 0, 0))
		knotStyle := g.style
		knotStyle.Mode = DepthColored
		g.world.AddShape(knot, knotStyle)
	default:
		shape := NewTesseract(2)
		shape.SpinRates = cfg.SpinRates()
		g.world.AddShape(shape, g.style)
	}

	g.lastFrame = time.Now()
	log.Printf("scene ready: mode=%d shapes=%d", mode, len(g.world.Shapes()))
	return g
}

func (g *Game) selectShape(idx int) {
	n := len(g.catalog)
	g.catalogIdx = (idx%n + n) % n
	entry := g.catalog[g.catalogIdx]
	shape := entry.Build()
	g.world.Clear()
	g.world.AddShape(shape, g.style)
	log.Printf("shape: %s (%d vertices, %d edges)",
		entry.Name, len(shape.BaseVertices()), len(shape.Edges()))
}

func (g *Game) currentShapeName() string {
	shapes := g.world.Shapes()
	if len(shapes) == 0 {
		return "none"
	}
	return shapes[0].Name()
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now

	if err := g.handleInput(); err != nil {
		return err
	}

	g.world.Update(dt)
	return nil
}

func (g *Game) handleInput() error {
	c := g.cfg.Controls

	if keyJustPressed(c.Quit) {
		return ebiten.Termination
	}
	if keyJustPressed(c.ToggleSpin) {
		g.world.ToggleSpin()
	}
	if keyJustPressed(c.ResetView) {
		g.camera.Reset()
		g.cfg.ApplyToCamera(g.camera)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.style.Mode = (g.style.Mode + 1) % renderModeCount
		g.world.SetStyle(g.style)
		log.Printf("render mode: %s", g.style.Mode)
	}

	// Shape browsing.
	if g.mode == DemoBrowser {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.selectShape(g.catalogIdx + 1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.selectShape(g.catalogIdx - 1)
		}
	}

	// Stereo adjustments.
	if g.stereo != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			g.stereo.CycleMode()
			log.Printf("stereo mode: %s", g.stereo.Mode())
		}
		if keyPressed(c.ZoomIn) {
			g.stereo.AdjustEyeSeparation(0.002)
		}
		if keyPressed(c.ZoomOut) {
			g.stereo.AdjustEyeSeparation(-0.002)
		}
	}

	// Camera movement.
	speed := g.camera.MoveSpeed
	if keyPressed(c.MoveForward) {
		g.camera.Move(0, 0, speed, 0)
	}
	if keyPressed(c.MoveBackward) {
		g.camera.Move(0, 0, -speed, 0)
	}
	if keyPressed(c.MoveLeft) {
		g.camera.Move(-speed, 0, 0, 0)
	}
	if keyPressed(c.MoveRight) {
		g.camera.Move(speed, 0, 0, 0)
	}
	if keyPressed(c.MoveUp) {
		g.camera.Move(0, speed, 0, 0)
	}
	if keyPressed(c.MoveDown) {
		g.camera.Move(0, -speed, 0, 0)
	}
	if keyPressed(c.MoveWPositive) {
		g.camera.MoveW(speed)
	}
	if keyPressed(c.MoveWNegative) {
		g.camera.MoveW(-speed)
	}
	if g.stereo == nil {
		if keyPressed(c.ZoomIn) {
			g.camera.Zoom(1 / g.camera.ZoomSpeed)
		}
		if keyPressed(c.ZoomOut) {
			g.camera.Zoom(g.camera.ZoomSpeed)
		}
	}

	// Mouse orbit.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		dx := float64(x-g.lastX) * g.camera.RotationSpeed
		dy := float64(y-g.lastY) * g.camera.RotationSpeed
		g.camera.Orbit(dx, dy)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		if wheelY > 0 {
			g.camera.Zoom(1 / g.camera.ZoomSpeed)
		} else {
			g.camera.Zoom(g.camera.ZoomSpeed)
		}
	}

	// Manual plane rotation of the first shape, shift for reverse.
	if shapes := g.world.Shapes(); len(shapes) > 0 {
		delta := 0.02
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			delta = -delta
		}
		planeKeys := [6]ebiten.Key{
			ebiten.Key1, ebiten.Key2, ebiten.Key3,
			ebiten.Key4, ebiten.Key5, ebiten.Key6,
		}
		for i, key := range planeKeys {
			if ebiten.IsKeyPressed(key) {
				shapes[0].Rotate(AllPlanes[i], delta)
			}
		}
	}

	// Capture.
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.pendingScreenshot = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if g.recorder.Recording() {
			g.recorder.Stop()
			name := fmt.Sprintf("gosie4d-%d.gif", time.Now().Unix())
			if err := g.recorder.SaveGIF(name); err != nil {
				log.Printf("save gif: %v", err)
			} else {
				log.Printf("saved %s (%d frames)", name, g.recorder.FrameCount())
			}
		} else {
			g.recorder.Start()
			log.Println("recording started")
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	g.pipeline.BeginFrame()
	g.world.QueueAll(g.pipeline)

	var stats RenderStats
	if g.stereo != nil {
		g.stereo.RenderFrame(screen, g.pipeline)
	} else {
		canvas := NewEbitenCanvas(screen)
		canvas.Antialias = g.cfg.Render.Antialiasing
		g.pipeline.SetCanvas(canvas)
		stats = g.pipeline.RenderFrame()
	}

	if g.pendingScreenshot {
		g.pendingScreenshot = false
		name := fmt.Sprintf("gosie4d-%d.png", time.Now().Unix())
		if err := SaveScreenshot(screen, name); err != nil {
			log.Printf("screenshot: %v", err)
		} else {
			log.Printf("saved %s", name)
		}
	}
	g.recorder.CaptureFrame(screen)

	hud := fmt.Sprintf("FPS: %0.1f  %s  [%s]  edges: %d",
		ebiten.ActualFPS(), g.currentShapeName(), g.style.Mode, stats.EdgesRendered)
	if g.stereo != nil {
		hud = fmt.Sprintf("FPS: %0.1f  %s  [%s]  sep: %.3f",
			ebiten.ActualFPS(), g.currentShapeName(), g.stereo.Mode(), g.stereo.EyeSeparation())
	}
	if g.recorder.Recording() {
		hud += fmt.Sprintf("  REC %d", g.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// keyFromName maps a config key name to an ebiten key. ok=false means
// the binding is unknown and stays inert.
func keyFromName(name string) (ebiten.Key, bool) {
	if len(name) == 1 {
		ch := name[0]
		if ch >= 'a' && ch <= 'z' {
			return ebiten.KeyA + ebiten.Key(ch-'a'), true
		}
		if ch >= '0' && ch <= '9' {
			return ebiten.KeyDigit0 + ebiten.Key(ch-'0'), true
		}
		switch ch {
		case '=':
			return ebiten.KeyEqual, true
		case '-':
			return ebiten.KeyMinus, true
		}
	}
	switch name {
	case "escape":
		return ebiten.KeyEscape, true
	case "space":
		return ebiten.KeySpace, true
	case "tab":
		return ebiten.KeyTab, true
	case "enter":
		return ebiten.KeyEnter, true
	}
	return 0, false
}

func keyPressed(name string) bool {
	key, ok := keyFromName(name)
	return ok && ebiten.IsKeyPressed(key)
}

func keyJustPressed(name string) bool {
	key, ok := keyFromName(name)
	return ok && inpututil.IsKeyJustPressed(key)
}
