package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Diffuse is a Lambertian surface with an optional Phong highlight
type Diffuse struct {
	Albedo    ColorSource // Base color (can be solid or textured)
	Specular  float64     // Highlight strength, 0 disables it
	Shininess float64     // Phong exponent
}

// NewDiffuse creates a matte material with a solid color
func NewDiffuse(albedo core.Color) *Diffuse {
	return &Diffuse{Albedo: NewSolidColor(albedo)}
}

// NewTexturedDiffuse creates a matte material with a texture
func NewTexturedDiffuse(albedo ColorSource) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// NewPhong creates a solid color material with a specular highlight
func NewPhong(albedo core.Color, specular, shininess float64) *Diffuse {
	return &Diffuse{Albedo: NewSolidColor(albedo), Specular: specular, Shininess: shininess}
}

// Render sums the ambient term and the direct contribution of every light
func (d *Diffuse) Render(m *core.Maxel, t core.Tracer) core.Color {
	albedo := d.Albedo.Evaluate(m.UV(), m.Pos)
	n := m.FacingNormal()
	view := m.Dir.Negate()

	color := t.Ambient().Multiply(albedo)
	for _, light := range t.Lights() {
		color = color.Add(directLight(t, m, light, func(lixel core.Lixel, cos float64, incoming core.Color) core.Color {
			c := albedo.Multiply(incoming).Scale(cos)
			if d.Specular > 0 {
				r := lixel.Dir.Negate().Reflect(n)
				if s := r.Dot(view); s > 0 {
					c = c.Add(incoming.Scale(d.Specular * math.Pow(s, d.Shininess)))
				}
			}
			return c
		}))
	}
	return color
}

// Shadow blocks light completely
func (d *Diffuse) Shadow(m *core.Maxel, lixel core.Lixel) (core.Color, bool) {
	return opaque()
}
