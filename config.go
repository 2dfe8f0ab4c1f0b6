package gosie4d

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WindowConfig covers the window and display settings.
type WindowConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
	Fullscreen bool   `json:"fullscreen"`
	Vsync      bool   `json:"vsync"`
	TargetFPS  int    `json:"target_fps"`
}

// RenderConfig covers the projection and drawing defaults.
type RenderConfig struct {
	BackgroundColor    [3]uint8 `json:"background_color"`
	DefaultLineWidth   float64  `json:"default_line_width"`
	ProjectionDistance float64  `json:"projection_distance"`
	ProjectionScale    float64  `json:"projection_scale"`
	WScaleFactor       float64  `json:"w_scale_factor"`
	DepthSort          bool     `json:"depth_sort"`
	Antialiasing       bool     `json:"antialiasing"`
}

// CameraConfig covers the initial camera placement and speeds.
type CameraConfig struct {
	Position      [4]float64 `json:"position"`
	Target        [4]float64 `json:"target"`
	Up            [4]float64 `json:"up"`
	MoveSpeed     float64    `json:"move_speed"`
	RotationSpeed float64    `json:"rotation_speed"`
	ZoomSpeed     float64    `json:"zoom_speed"`
}

// ControlsConfig names the keys bound to each action.
type ControlsConfig struct {
	MoveForward   string `json:"move_forward"`
	MoveBackward  string `json:"move_backward"`
	MoveLeft      string `json:"move_left"`
	MoveRight     string `json:"move_right"`
	MoveUp        string `json:"move_up"`
	MoveDown      string `json:"move_down"`
	MoveWPositive string `json:"move_w_positive"`
	MoveWNegative string `json:"move_w_negative"`
	ZoomIn        string `json:"zoom_in"`
	ZoomOut       string `json:"zoom_out"`
	ToggleSpin    string `json:"toggle_spin"`
	ResetView     string `json:"reset_view"`
	Quit          string `json:"quit"`
}

// AnimationConfig covers the automatic spin rates, in radians/second.
type AnimationConfig struct {
	AutoSpin    bool    `json:"auto_spin"`
	SpinSpeedXY float64 `json:"spin_speed_xy"`
	SpinSpeedXW float64 `json:"spin_speed_xw"`
	SpinSpeedYW float64 `json:"spin_speed_yw"`
	SpinSpeedZW float64 `json:"spin_speed_zw"`
}

// Config is the persisted application configuration. It has no schema
// version: unknown keys are ignored, missing keys fall back to the
// defaults from DefaultConfig.
type Config struct {
	Window    WindowConfig    `json:"window"`
	Render    RenderConfig    `json:"render"`
	Camera    CameraConfig    `json:"camera"`
	Controls  ControlsConfig  `json:"controls"`
	Animation AnimationConfig `json:"animation"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1024,
			Height:    768,
			Title:     "gosie4d",
			Vsync:     true,
			TargetFPS: 60,
		},
		Render: RenderConfig{
			BackgroundColor:    [3]uint8{10, 10, 20},
			DefaultLineWidth:   2,
			ProjectionDistance: 5.0,
			ProjectionScale:    150.0,
			WScaleFactor:       0.3,
			DepthSort:          true,
			Antialiasing:       true,
		},
		Camera: CameraConfig{
			Position:      [4]float64{0, 0, -5, 0},
			Target:        [4]float64{0, 0, 0, 0},
			Up:            [4]float64{0, 1, 0, 0},
			MoveSpeed:     0.15,
			RotationSpeed: 0.01,
			ZoomSpeed:     1.1,
		},
		Controls: ControlsConfig{
			MoveForward:   "w",
			MoveBackward:  "s",
			MoveLeft:      "a",
			MoveRight:     "d",
			MoveUp:        "q",
			MoveDown:      "e",
			MoveWPositive: "z",
			MoveWNegative: "x",
			ZoomIn:        "=",
			ZoomOut:       "-",
			ToggleSpin:    "t",
			ResetView:     "r",
			Quit:          "escape",
		},
		Animation: AnimationConfig{
			AutoSpin:    true,
			SpinSpeedXY: 0.4,
			SpinSpeedXW: 0.6,
			SpinSpeedYW: 0.5,
			SpinSpeedZW: 0.3,
		},
	}
}

// LoadConfig reads a config file, overlaying it on the defaults. A
// missing or unreadable file yields the defaults without error so a
// broken config never blocks startup.
func LoadConfig(path string) *Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes the config as indented JSON, creating parent
// directories as needed.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultConfigPath is the platform config location, following
// XDG_CONFIG_HOME on unix and APPDATA on windows.
func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "gosie4d.json"
	}
	return filepath.Join(base, "gosie4d", "config.json")
}

// ApplyToCamera copies the configured camera placement and speeds.
func (cfg *Config) ApplyToCamera(c *Camera) {
	c.SetTarget(NewVector4(cfg.Camera.Target[0], cfg.Camera.Target[1], cfg.Camera.Target[2], cfg.Camera.Target[3]))
	c.SetPosition(NewVector4(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2], cfg.Camera.Position[3]))
	c.Up = NewVector4(cfg.Camera.Up[0], cfg.Camera.Up[1], cfg.Camera.Up[2], cfg.Camera.Up[3])
	c.ProjectionDistance = cfg.Render.ProjectionDistance
	c.WPerspectiveFactor = cfg.Render.WScaleFactor
	c.Scale = cfg.Render.ProjectionScale
	c.MoveSpeed = cfg.Camera.MoveSpeed
	c.RotationSpeed = cfg.Camera.RotationSpeed
	c.ZoomSpeed = cfg.Camera.ZoomSpeed
}

// SpinRates converts the animation config to per-plane rates.
func (cfg *Config) SpinRates() RotationState {
	if !cfg.Animation.AutoSpin {
		return RotationState{}
	}
	return RotationState{
		XY: cfg.Animation.SpinSpeedXY,
		XW: cfg.Animation.SpinSpeedXW,
		YW: cfg.Animation.SpinSpeedYW,
		ZW: cfg.Animation.SpinSpeedZW,
	}
}
