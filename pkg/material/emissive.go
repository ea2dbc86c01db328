package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Emissive renders a constant color regardless of lighting. It does not
// cast shadows, so it can mark the position of a light source.
type Emissive struct {
	Emission core.Color
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Color) *Emissive {
	return &Emissive{Emission: emission}
}

// Render returns the emitted color
func (e *Emissive) Render(m *core.Maxel, t core.Tracer) core.Color {
	return e.Emission
}

// Shadow reports that the material does not occlude
func (e *Emissive) Shadow(m *core.Maxel, lixel core.Lixel) (core.Color, bool) {
	return core.Color{}, false
}
