package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEulerYXZRoundtrip(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch, roll float32
	}{
		{"identity", 0, 0, 0},
		{"yaw only", 1.2, 0, 0},
		{"pitch only", 0, -0.8, 0},
		{"roll only", 0, 0, 0.5},
		{"combined", 2.1, 0.6, -0.3},
		{"negative yaw", -2.5, 0.3, 0.1},
		{"near pitch limit", 0.4, pitchLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Transform{Rotation: FromEulerYXZ(tt.yaw, tt.pitch, tt.roll)}
			yaw, pitch, roll := tr.EulerYXZ()

			if math.Abs(float64(yaw-tt.yaw)) > 1e-4 {
				t.Errorf("yaw = %v, want %v", yaw, tt.yaw)
			}
			if math.Abs(float64(pitch-tt.pitch)) > 1e-4 {
				t.Errorf("pitch = %v, want %v", pitch, tt.pitch)
			}
			if math.Abs(float64(roll-tt.roll)) > 1e-4 {
				t.Errorf("roll = %v, want %v", roll, tt.roll)
			}
		})
	}
}

func TestNewLookAtFacesCenter(t *testing.T) {
	tests := []struct {
		name        string
		eye, center mgl32.Vec3
	}{
		{"spawn pose", mgl32.Vec3{15, 5, 15}, mgl32.Vec3{}},
		{"along -z", mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}},
		{"from below", mgl32.Vec3{-3, -2, 7}, mgl32.Vec3{1, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewLookAt(tt.eye, tt.center, mgl32.Vec3{0, 1, 0})

			want := tt.center.Sub(tt.eye).Normalize()
			if !vecNear(tr.Forward(), want, 1e-4) {
				t.Errorf("forward = %v, want %v", tr.Forward(), want)
			}
			// Up stays in the upper hemisphere for a sensible look-at.
			if tr.Up().Y() <= 0 {
				t.Errorf("up = %v, want positive Y component", tr.Up())
			}
			// A +Y up hint means no roll.
			if _, _, roll := tr.EulerYXZ(); math.Abs(float64(roll)) > 1e-4 {
				t.Errorf("roll = %v, want 0", roll)
			}
		})
	}
}

func TestNewLookAtSpawnPitchAimsDown(t *testing.T) {
	tr := NewLookAt(mgl32.Vec3{15, 5, 15}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	wantForward := mgl32.Vec3{-0.6882472, -0.22941573, -0.6882472}
	if !vecNear(tr.Forward(), wantForward, 1e-4) {
		t.Errorf("forward = %v, want %v", tr.Forward(), wantForward)
	}

	_, pitch, _ := tr.EulerYXZ()
	wantPitch := float32(math.Asin(-0.22941573))
	if math.Abs(float64(pitch-wantPitch)) > 1e-4 {
		t.Errorf("pitch = %v, want %v", pitch, wantPitch)
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	tr := Transform{Rotation: FromEulerYXZ(0.7, -0.4, 0.2)}

	f, u, r := tr.Forward(), tr.Up(), tr.Right()
	for name, v := range map[string]mgl32.Vec3{"forward": f, "up": u, "right": r} {
		if math.Abs(float64(v.Len()-1)) > 1e-5 {
			t.Errorf("%s is not unit length: %v", name, v.Len())
		}
	}
	if dot := f.Dot(u); math.Abs(float64(dot)) > 1e-5 {
		t.Errorf("forward.up = %v, want 0", dot)
	}
	if dot := f.Dot(r); math.Abs(float64(dot)) > 1e-5 {
		t.Errorf("forward.right = %v, want 0", dot)
	}
	if !vecNear(r.Cross(u), f.Mul(-1), 1e-5) {
		t.Errorf("right x up = %v, want -forward %v", r.Cross(u), f.Mul(-1))
	}
}
