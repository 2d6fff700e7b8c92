package camera

import "github.com/go-gl/mathgl/mgl32"

// Zoom applies accumulated scroll input to the active projection variant.
// Positive scroll (wheel up) zooms in under both variants, so the vertical
// delta is negated. Only the active variant's payload is touched.
func Zoom(p *Projection, s *Settings, scroll mgl32.Vec2) {
	switch p.Kind {
	case KindOrthographic:
		// Multiplicative updates keep zoom steps feeling uniform across
		// scales; a delta of zero maps to a factor of one.
		factor := 1 + -scroll.Y()*s.OrthoZoomSpeed
		p.Ortho.Scale = mgl32.Clamp(p.Ortho.Scale*factor, s.OrthoScaleMin, s.OrthoScaleMax)
	case KindPerspective:
		// The field of view is already a bounded angle, so an additive
		// update suffices.
		fov := p.Persp.Fov + -scroll.Y()*s.PerspZoomSpeed
		p.Persp.Fov = mgl32.Clamp(fov, s.FovMin, s.FovMax)
	}
}
