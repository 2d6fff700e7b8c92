package camera

import "github.com/go-gl/mathgl/mgl32"

// markerRadius is the ring drawn at the cursor's ground hit point.
const markerRadius = 0.2

// markerLift offsets the ring along the plane normal to avoid z-fighting
// with the ground surface.
const markerLift = 0.01

// CursorInput is the per-frame input consumed by the ground-cursor
// controller. Cursor is only meaningful when CursorOK is true; the driver
// clears it when the pointer leaves the window.
type CursorInput struct {
	Cursor   mgl32.Vec2
	CursorOK bool
	// Delta is the accumulated mouse motion since the last frame, pixels.
	Delta mgl32.Vec2
	// LeftHeld switches the controller from marker mode to pan mode.
	LeftHeld bool
	// Viewport is the window size in pixels.
	Viewport mgl32.Vec2
}

// Marker describes one frame of cursor-indicator geometry: a ring centered
// slightly above the ground hit point, aligned to the plane normal.
type Marker struct {
	Center mgl32.Vec3
	Normal mgl32.Vec3
	Radius float32
}

// GroundCursor raycasts the cursor onto the ground plane. While the left
// button is held it pans the focus point by the world-space drag delta and
// repositions the camera; otherwise it reports a ring marker at the hit
// point. A missing cursor, a failed ray build, or a miss of the plane is a
// silent no-op for the frame — the next frame retries with fresh input.
func GroundCursor(t *Transform, p *Projection, s *Settings, ground Plane, in CursorInput) (Marker, bool) {
	if !in.CursorOK {
		return Marker{}, false
	}

	ray, ok := ViewportRay(*t, *p, s, in.Viewport, in.Cursor)
	if !ok {
		return Marker{}, false
	}
	dist, ok := ray.IntersectPlane(ground)
	if !ok {
		return Marker{}, false
	}
	point := ray.Point(dist)

	if !in.LeftHeld {
		return Marker{
			Center: point.Add(ground.Normal.Mul(markerLift)),
			Normal: ground.Normal,
			Radius: markerRadius,
		}, true
	}

	// Pan: cast a second ray through the cursor displaced by this frame's
	// motion and drag the focus opposite the apparent ground motion, so the
	// ground feels grabbed under the cursor.
	ray2, ok := ViewportRay(*t, *p, s, in.Viewport, in.Cursor.Add(in.Delta))
	if !ok {
		return Marker{}, false
	}
	dist2, ok := ray2.IntersectPlane(ground)
	if !ok {
		return Marker{}, false
	}

	motion := ray2.Point(dist2).Sub(point)
	s.Focus = s.Focus.Sub(motion)

	// Orientation is unchanged by panning; only the position follows the
	// translated focus.
	t.Position = s.Focus.Sub(t.Forward().Mul(s.OrbitDistance))
	return Marker{}, false
}
