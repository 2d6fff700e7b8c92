package camera

// Kind selects the active projection variant.
type Kind uint8

const (
	KindPerspective Kind = iota
	KindOrthographic
)

// String returns a short label for HUD and telemetry output.
func (k Kind) String() string {
	if k == KindOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// Perspective holds the perspective variant's payload.
type Perspective struct {
	// Fov is the vertical field of view in radians.
	Fov float32
}

// Orthographic holds the orthographic variant's payload.
type Orthographic struct {
	// Scale multiplies the base viewport height; larger scale means a
	// wider view (zoomed out).
	Scale float32
}

// Projection is a tagged union over the two projection variants. Exactly one
// variant is active at a time; the inactive payload keeps its last value so
// switching back restores the previous zoom level.
type Projection struct {
	Kind  Kind
	Persp Perspective
	Ortho Orthographic
}

// DefaultProjection returns a perspective projection with a 45 degree FOV
// and a neutral orthographic scale for when the user switches variants.
func DefaultProjection() Projection {
	return Projection{
		Kind:  KindPerspective,
		Persp: Perspective{Fov: 0.7853982}, // pi/4
		Ortho: Orthographic{Scale: 1},
	}
}

// Toggle switches the active variant, leaving both payloads untouched.
func (p *Projection) Toggle() {
	if p.Kind == KindPerspective {
		p.Kind = KindOrthographic
	} else {
		p.Kind = KindPerspective
	}
}
