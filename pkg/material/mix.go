package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Mix blends the output of two materials
type Mix struct {
	Material1 core.Material
	Material2 core.Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 core.Material, ratio float64) *Mix {
	ratio = math.Max(0.0, math.Min(ratio, 1.0))

	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     ratio,
	}
}

// Render blends both renders by Ratio
func (m *Mix) Render(mx *core.Maxel, t core.Tracer) core.Color {
	c1 := m.Material1.Render(mx, t)
	c2 := m.Material2.Render(mx, t)
	return c1.Lerp(c2, m.Ratio)
}

// Shadow blends both shadow colors. A side that does not occlude passes
// the light unchanged; the mix occludes if either side does.
func (m *Mix) Shadow(mx *core.Maxel, lixel core.Lixel) (core.Color, bool) {
	s1, ok1 := m.Material1.Shadow(mx, lixel)
	s2, ok2 := m.Material2.Shadow(mx, lixel)
	if !ok1 && !ok2 {
		return core.Color{}, false
	}
	if !ok1 {
		s1 = lixel.Color
	}
	if !ok2 {
		s2 = lixel.Color
	}
	return s1.Lerp(s2, m.Ratio), true
}
