// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/orbitview/camera"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Ground    GroundConfig    `yaml:"ground"`
	Scene     SceneConfig     `yaml:"scene"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds the orbit camera parameters. Angles and angular speeds
// are radians; distances are world units.
type CameraConfig struct {
	OrbitDistance       float64 `yaml:"orbit_distance"`
	PitchSpeed          float64 `yaml:"pitch_speed"` // radians per pixel
	YawSpeed            float64 `yaml:"yaw_speed"`   // radians per pixel
	OrthoViewportHeight float64 `yaml:"ortho_viewport_height"`
	OrthoScaleMin       float64 `yaml:"ortho_scale_min"`
	OrthoScaleMax       float64 `yaml:"ortho_scale_max"`
	OrthoZoomSpeed      float64 `yaml:"ortho_zoom_speed"`
	FovMin              float64 `yaml:"fov_min"`
	FovMax              float64 `yaml:"fov_max"`
	FovZoomSpeed        float64 `yaml:"fov_zoom_speed"`

	StartPosition []float64 `yaml:"start_position"` // camera spawn point [x, y, z]
	StartFov      float64   `yaml:"start_fov"`      // initial vertical fov
}

// GroundConfig holds the rendered ground-plane parameters.
type GroundConfig struct {
	Size float64 `yaml:"size"` // edge length of the drawn plane
}

// SceneConfig holds the scene asset request.
type SceneConfig struct {
	Model string  `yaml:"model"` // glTF path, empty = no scene model
	Scale float64 `yaml:"scale"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// Settings converts the camera section into the runtime settings record.
func (c *CameraConfig) Settings() camera.Settings {
	return camera.Settings{
		OrbitDistance:       float32(c.OrbitDistance),
		PitchSpeed:          float32(c.PitchSpeed),
		YawSpeed:            float32(c.YawSpeed),
		OrthoViewportHeight: float32(c.OrthoViewportHeight),
		OrthoScaleMin:       float32(c.OrthoScaleMin),
		OrthoScaleMax:       float32(c.OrthoScaleMax),
		OrthoZoomSpeed:      float32(c.OrthoZoomSpeed),
		FovMin:              float32(c.FovMin),
		FovMax:              float32(c.FovMax),
		PerspZoomSpeed:      float32(c.FovZoomSpeed),
	}
}

// StartEye returns the configured camera spawn point.
func (c *CameraConfig) StartEye() mgl32.Vec3 {
	if len(c.StartPosition) != 3 {
		return mgl32.Vec3{15, 5, 15}
	}
	return mgl32.Vec3{
		float32(c.StartPosition[0]),
		float32(c.StartPosition[1]),
		float32(c.StartPosition[2]),
	}
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	s := cfg.Camera.Settings()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating camera settings: %w", err)
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
