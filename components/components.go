// Package components defines ECS components for the viewer world.
//
// The camera entity carries camera.Transform and camera.Projection directly;
// the types here cover the remaining scene entities.
package components

import "github.com/go-gl/mathgl/mgl32"

// MainCamera tags the single camera entity.
type MainCamera struct{}

// Ground tags the ground-plane entity. The raycast plane's origin and up
// normal come from the entity's transform; Size only affects rendering —
// the plane the cursor ray hits is infinite.
type Ground struct {
	Size float32
}

// SunLight is a directional light aimed from the entity's position toward
// Target.
type SunLight struct {
	Target mgl32.Vec3
	Color  [3]uint8
}

// SceneModel requests a scene asset load by path. The asset layer owns the
// load and flips Loaded once the model is resident; a failed load leaves it
// false and the viewer runs without the model.
type SceneModel struct {
	Path   string
	Scale  float32
	Loaded bool
}
