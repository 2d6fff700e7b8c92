package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

func TestIntersectPlane(t *testing.T) {
	ground := Plane{Origin: mgl32.Vec3{}, Normal: mgl32.Vec3{0, 1, 0}}

	tests := []struct {
		name     string
		ray      Ray
		wantDist float32
		wantOK   bool
	}{
		{
			name:     "straight down",
			ray:      Ray{Origin: mgl32.Vec3{0, 10, 0}, Dir: mgl32.Vec3{0, -1, 0}},
			wantDist: 10,
			wantOK:   true,
		},
		{
			name:   "pointing away",
			ray:    Ray{Origin: mgl32.Vec3{0, 10, 0}, Dir: mgl32.Vec3{0, 1, 0}},
			wantOK: false,
		},
		{
			name:   "parallel to plane",
			ray:    Ray{Origin: mgl32.Vec3{0, 10, 0}, Dir: mgl32.Vec3{1, 0, 0}},
			wantOK: false,
		},
		{
			name:     "diagonal",
			ray:      Ray{Origin: mgl32.Vec3{0, 1, 0}, Dir: mgl32.Vec3{1, -1, 0}.Normalize()},
			wantDist: float32(math.Sqrt2),
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, ok := tt.ray.IntersectPlane(ground)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(float64(dist-tt.wantDist)) > 1e-4 {
				t.Errorf("dist = %v, want %v", dist, tt.wantDist)
			}
		})
	}
}

func TestViewportRayPerspectiveCenter(t *testing.T) {
	s := DefaultSettings()
	tr := NewLookAt(mgl32.Vec3{0, 10, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	p := DefaultProjection()
	viewport := mgl32.Vec2{1280, 720}

	ray, ok := ViewportRay(tr, p, &s, viewport, mgl32.Vec2{640, 360})
	if !ok {
		t.Fatal("expected a ray through the viewport center")
	}
	if !vecNear(ray.Origin, tr.Position, 1e-5) {
		t.Errorf("origin = %v, want camera position %v", ray.Origin, tr.Position)
	}
	if !vecNear(ray.Dir, tr.Forward(), 1e-4) {
		t.Errorf("center ray dir = %v, want forward %v", ray.Dir, tr.Forward())
	}
}

func TestViewportRayOrthographicParallel(t *testing.T) {
	s := DefaultSettings()
	tr := NewLookAt(mgl32.Vec3{0, 10, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	p := DefaultProjection()
	p.Kind = KindOrthographic
	viewport := mgl32.Vec2{800, 600}

	corners := []mgl32.Vec2{{0, 0}, {800, 0}, {0, 600}, {800, 600}, {400, 300}}
	for _, c := range corners {
		ray, ok := ViewportRay(tr, p, &s, viewport, c)
		if !ok {
			t.Fatalf("cursor %v: expected a ray", c)
		}
		if !vecNear(ray.Dir, tr.Forward(), 1e-5) {
			t.Errorf("cursor %v: dir = %v, want forward %v", c, ray.Dir, tr.Forward())
		}
	}

	// The center ray passes through the camera position; edge rays are
	// offset by the half extents of the visible area.
	center, _ := ViewportRay(tr, p, &s, viewport, mgl32.Vec2{400, 300})
	if !vecNear(center.Origin, tr.Position, 1e-4) {
		t.Errorf("center origin = %v, want %v", center.Origin, tr.Position)
	}
	top, _ := ViewportRay(tr, p, &s, viewport, mgl32.Vec2{400, 0})
	wantOffset := s.OrthoViewportHeight * p.Ortho.Scale / 2
	if got := top.Origin.Sub(tr.Position).Len(); math.Abs(float64(got-wantOffset)) > 1e-4 {
		t.Errorf("top edge offset = %v, want %v", got, wantOffset)
	}
}

func TestViewportRayDegenerateInputs(t *testing.T) {
	s := DefaultSettings()
	tr := NewLookAt(mgl32.Vec3{0, 10, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	nan := float32(math.NaN())

	tests := []struct {
		name     string
		proj     Projection
		viewport mgl32.Vec2
		cursor   mgl32.Vec2
	}{
		{"zero viewport", DefaultProjection(), mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}},
		{"negative viewport", DefaultProjection(), mgl32.Vec2{-10, 10}, mgl32.Vec2{1, 1}},
		{"nan cursor", DefaultProjection(), mgl32.Vec2{100, 100}, mgl32.Vec2{nan, 1}},
		{"zero fov", Projection{Kind: KindPerspective}, mgl32.Vec2{100, 100}, mgl32.Vec2{1, 1}},
		{"zero ortho scale", Projection{Kind: KindOrthographic}, mgl32.Vec2{100, 100}, mgl32.Vec2{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ViewportRay(tr, tt.proj, &s, tt.viewport, tt.cursor); ok {
				t.Error("expected ray construction to fail")
			}
		})
	}
}

func TestViewportRayHitsGroundWhereExpected(t *testing.T) {
	// Camera straight above the origin looking down: the center ray must
	// hit the plane at the origin.
	s := DefaultSettings()
	tr := Transform{
		Position: mgl32.Vec3{0, 20, 0},
		Rotation: mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0}),
	}

	ray, ok := ViewportRay(tr, DefaultProjection(), &s, mgl32.Vec2{640, 480}, mgl32.Vec2{320, 240})
	if !ok {
		t.Fatal("expected a center ray")
	}
	dist, ok := ray.IntersectPlane(Plane{Normal: mgl32.Vec3{0, 1, 0}})
	if !ok {
		t.Fatal("expected the ray to hit the ground")
	}
	if hit := ray.Point(dist); !vecNear(hit, mgl32.Vec3{}, 1e-3) {
		t.Errorf("hit = %v, want origin", hit)
	}
}
