// Package camera implements the orbit/pan/zoom math for the viewer.
// It is pure math with no rendering dependency; the game package feeds it
// per-frame input snapshots and renders from the resulting state.
package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds the shared camera configuration plus the mutable focus
// point. A single instance lives for the process lifetime; the controllers
// mutate Focus in place while everything else stays constant at runtime.
type Settings struct {
	// OrbitDistance is the fixed distance kept between camera and focus.
	OrbitDistance float32

	// PitchSpeed and YawSpeed convert mouse pixels to radians.
	PitchSpeed float32
	YawSpeed   float32

	// Focus is the pivot the camera orbits around; panning translates it.
	Focus mgl32.Vec3

	// OrthoViewportHeight is the viewport height in world units when the
	// orthographic scale is 1.
	OrthoViewportHeight float32

	// OrthoScaleMin and OrthoScaleMax clamp the orthographic scale.
	OrthoScaleMin float32
	OrthoScaleMax float32

	// OrthoZoomSpeed multiplies wheel input in orthographic mode.
	OrthoZoomSpeed float32

	// FovMin and FovMax clamp the perspective field of view, in radians.
	FovMin float32
	FovMax float32

	// PerspZoomSpeed multiplies wheel input in perspective mode.
	PerspZoomSpeed float32
}

// DefaultSettings returns the hand-tuned values used by the demo.
func DefaultSettings() Settings {
	return Settings{
		OrbitDistance:       20,
		PitchSpeed:          0.01,
		YawSpeed:            0.01,
		Focus:               mgl32.Vec3{},
		OrthoViewportHeight: 5,
		OrthoScaleMin:       0.1,
		OrthoScaleMax:       10,
		// Hand-tuned so zooming feels smooth but not slow.
		OrthoZoomSpeed: 0.2,
		// FOV changes are much more noticeable due to the limited
		// angular range, so the speed is lower.
		FovMin:         math.Pi / 20,
		FovMax:         math.Pi - 0.2,
		PerspZoomSpeed: 0.05,
	}
}

// Validate checks the range invariants on the zoom clamps.
func (s *Settings) Validate() error {
	if s.OrbitDistance <= 0 {
		return fmt.Errorf("camera: orbit distance must be positive, got %v", s.OrbitDistance)
	}
	if s.OrthoScaleMin <= 0 || s.OrthoScaleMin >= s.OrthoScaleMax {
		return fmt.Errorf("camera: orthographic scale range [%v, %v] invalid", s.OrthoScaleMin, s.OrthoScaleMax)
	}
	if s.FovMin <= 0 || s.FovMin >= s.FovMax || s.FovMax >= math.Pi {
		return fmt.Errorf("camera: field of view range [%v, %v] invalid", s.FovMin, s.FovMax)
	}
	return nil
}
