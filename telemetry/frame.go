// Package telemetry records per-frame camera state and windowed statistics.
//
// The viewer is interactive and otherwise silent; when tuning feel (speeds,
// zoom ranges, pan signs) the recorded frames are the ground truth for what
// the controllers actually did.
package telemetry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orbitview/camera"
)

// FrameRecord is one frame of camera state, written to camera.csv.
type FrameRecord struct {
	Tick    int32   `csv:"tick"`
	TimeSec float64 `csv:"time_sec"`

	PosX float64 `csv:"pos_x"`
	PosY float64 `csv:"pos_y"`
	PosZ float64 `csv:"pos_z"`

	FocusX float64 `csv:"focus_x"`
	FocusY float64 `csv:"focus_y"`
	FocusZ float64 `csv:"focus_z"`

	Yaw   float64 `csv:"yaw"`
	Pitch float64 `csv:"pitch"`

	Projection string  `csv:"projection"`
	Fov        float64 `csv:"fov"`
	OrthoScale float64 `csv:"ortho_scale"`

	// OrbitDrift is |distance(camera, focus) - orbit_distance|; it should
	// stay at float error, anything larger points at a controller bug.
	OrbitDrift float64 `csv:"orbit_drift"`

	FrameMs float64 `csv:"frame_ms"`
}

// CaptureFrame snapshots the camera state after the controllers ran.
func CaptureFrame(tick int32, timeSec float64, t camera.Transform, p camera.Projection, s *camera.Settings, frameMs float64) FrameRecord {
	yaw, pitch, _ := t.EulerYXZ()
	drift := math.Abs(float64(t.Position.Sub(s.Focus).Len() - s.OrbitDistance))

	return FrameRecord{
		Tick:       tick,
		TimeSec:    timeSec,
		PosX:       float64(t.Position.X()),
		PosY:       float64(t.Position.Y()),
		PosZ:       float64(t.Position.Z()),
		FocusX:     float64(s.Focus.X()),
		FocusY:     float64(s.Focus.Y()),
		FocusZ:     float64(s.Focus.Z()),
		Yaw:        float64(yaw),
		Pitch:      float64(pitch),
		Projection: p.Kind.String(),
		Fov:        float64(p.Persp.Fov),
		OrthoScale: float64(p.Ortho.Scale),
		OrbitDrift: drift,
		FrameMs:    frameMs,
	}
}

// focus returns the record's focus point.
func (f FrameRecord) focus() mgl32.Vec3 {
	return mgl32.Vec3{float32(f.FocusX), float32(f.FocusY), float32(f.FocusZ)}
}
