package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// pitchLimit keeps the pitch strictly inside (-pi/2, pi/2). At the poles the
// yaw flips and the "forward on the horizon" direction becomes ambiguous, so
// the clamp stops just short of straight up/down.
const pitchLimit = math.Pi/2 - 0.01

// Orbit converts accumulated mouse motion into yaw/pitch changes around the
// focus point while the orbit button is held. Roll is preserved, yaw wraps
// naturally, and the camera is repositioned at OrbitDistance from the focus
// along the new view direction.
func Orbit(t *Transform, s *Settings, delta mgl32.Vec2, held bool) {
	if !held {
		return
	}

	yaw, pitch, roll := t.EulerYXZ()

	pitch = mgl32.Clamp(pitch+delta.Y()*s.PitchSpeed, -pitchLimit, pitchLimit)
	yaw += delta.X() * s.YawSpeed

	t.Rotation = FromEulerYXZ(yaw, pitch, roll)
	t.Position = s.Focus.Sub(t.Forward().Mul(s.OrbitDistance))
}
