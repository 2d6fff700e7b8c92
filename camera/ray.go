package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// rayEpsilon rejects near-parallel rays and hits behind the origin.
const rayEpsilon = 1e-7

// Ray is a world-space ray with unit direction.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// Point returns the point at the given distance along the ray.
func (r Ray) Point(dist float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(dist))
}

// Plane is an infinite plane defined by a point and a unit normal.
type Plane struct {
	Origin mgl32.Vec3
	Normal mgl32.Vec3
}

// IntersectPlane returns the distance along the ray to the plane. ok is
// false when the ray is parallel to the plane or the hit lies behind the
// ray origin; both are expected transient conditions, not errors.
func (r Ray) IntersectPlane(p Plane) (float32, bool) {
	denom := p.Normal.Dot(r.Dir)
	if float32(math.Abs(float64(denom))) <= rayEpsilon {
		return 0, false
	}
	dist := p.Origin.Sub(r.Origin).Dot(p.Normal) / denom
	if dist <= rayEpsilon {
		return 0, false
	}
	return dist, true
}

// ViewportRay builds a world-space ray from the camera through a cursor
// position, for either projection variant. ok is false when the viewport or
// projection state is degenerate (zero-sized viewport, non-finite cursor,
// non-positive fov or scale).
func ViewportRay(t Transform, p Projection, s *Settings, viewport, cursor mgl32.Vec2) (Ray, bool) {
	w, h := viewport.X(), viewport.Y()
	if w <= 0 || h <= 0 || !finite(cursor.X()) || !finite(cursor.Y()) {
		return Ray{}, false
	}

	// Cursor pixels to normalized device coordinates; screen Y grows down,
	// NDC Y grows up.
	ndcX := 2*cursor.X()/w - 1
	ndcY := 1 - 2*cursor.Y()/h
	aspect := w / h

	if p.Kind == KindOrthographic {
		if p.Ortho.Scale <= 0 || s.OrthoViewportHeight <= 0 {
			return Ray{}, false
		}
		// All orthographic rays share the forward direction; the origin
		// slides across the viewport plane.
		halfH := s.OrthoViewportHeight * p.Ortho.Scale / 2
		halfW := halfH * aspect
		origin := t.Position.
			Add(t.Right().Mul(ndcX * halfW)).
			Add(t.Up().Mul(ndcY * halfH))
		return Ray{Origin: origin, Dir: t.Forward()}, true
	}

	fov := p.Persp.Fov
	if fov <= 0 || fov >= math.Pi {
		return Ray{}, false
	}
	halfTan := float32(math.Tan(float64(fov) / 2))
	local := mgl32.Vec3{ndcX * halfTan * aspect, ndcY * halfTan, -1}
	return Ray{
		Origin: t.Position,
		Dir:    t.Rotation.Rotate(local).Normalize(),
	}, true
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
