package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the camera's world pose: position plus unit orientation.
// Forward is -Z in local space, up is +Y.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewLookAt returns a transform at eye oriented toward center. The basis
// is built directly so that Forward() comes out as the eye-to-center
// direction; up is only a hint and gets re-orthogonalized.
func NewLookAt(eye, center, up mgl32.Vec3) Transform {
	f := center.Sub(eye).Normalize()
	r := f.Cross(up).Normalize()
	u := r.Cross(f)

	// Column-major rotation with local axes (+X, +Y, -Z) mapping to
	// (right, up, forward).
	m := mgl32.Mat4{
		r.X(), r.Y(), r.Z(), 0,
		u.X(), u.Y(), u.Z(), 0,
		-f.X(), -f.Y(), -f.Z(), 0,
		0, 0, 0, 1,
	}
	return Transform{
		Position: eye,
		Rotation: mgl32.Mat4ToQuat(m),
	}
}

// Forward returns the world-space view direction.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up returns the world-space up direction.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Right returns the world-space right direction.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// EulerYXZ decomposes the orientation into yaw (about +Y), pitch (about +X)
// and roll (about +Z), applied in that order. This matches the order the
// orbit controller recomposes with, so roll survives orbit updates.
func (t Transform) EulerYXZ() (yaw, pitch, roll float32) {
	m := t.Rotation.Mat4()

	// R = Ry(yaw) * Rx(pitch) * Rz(roll); element (1,2) is -sin(pitch).
	sp := mgl32.Clamp(-m.At(1, 2), -1, 1)
	pitch = float32(math.Asin(float64(sp)))
	yaw = float32(math.Atan2(float64(m.At(0, 2)), float64(m.At(2, 2))))
	roll = float32(math.Atan2(float64(m.At(1, 0)), float64(m.At(1, 1))))
	return yaw, pitch, roll
}

// FromEulerYXZ composes an orientation from yaw, pitch and roll angles.
func FromEulerYXZ(yaw, pitch, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	qz := mgl32.QuatRotate(roll, mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}
