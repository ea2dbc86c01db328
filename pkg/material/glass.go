package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Glass is a dielectric that splits light between reflection and
// refraction with the Fresnel equations
type Glass struct {
	IOR  float64    // index of refraction
	Tint core.Color // transmission color, also applied to shadows
}

// NewGlass creates a clear dielectric material
func NewGlass(ior float64) *Glass {
	return &Glass{IOR: ior, Tint: core.White}
}

// NewTintedGlass creates a colored dielectric material
func NewTintedGlass(ior float64, tint core.Color) *Glass {
	return &Glass{IOR: ior, Tint: tint}
}

// Render blends the reflected and refracted colors by the Fresnel
// reflectance. Total internal reflection only reflects.
func (g *Glass) Render(m *core.Maxel, t core.Tracer) core.Color {
	biases := t.Biases()
	kr := m.Dir.Fresnel(m.Normal(), 1, g.IOR)

	refracted := core.Black
	if kr < 1 {
		if ray, ok := m.RefractedRay(g.IOR, biases.Refract); ok {
			refracted = traceOrBackground(t, ray).Multiply(g.Tint)
		} else {
			kr = 1
		}
	}
	reflected := traceOrBackground(t, m.ReflectedRay(biases.Reflect))
	return reflected.Scale(kr).Add(refracted.Scale(1 - kr))
}

// Shadow lets light through, filtered by the tint
func (g *Glass) Shadow(m *core.Maxel, lixel core.Lixel) (core.Color, bool) {
	return lixel.Color.Multiply(g.Tint), true
}
