package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Mirror reflects the scene, tinted by Tint
type Mirror struct {
	Tint core.Color
}

// NewMirror creates a new mirror material
func NewMirror(tint core.Color) *Mirror {
	return &Mirror{Tint: tint}
}

// Render traces the reflected ray
func (mr *Mirror) Render(m *core.Maxel, t core.Tracer) core.Color {
	ray := m.ReflectedRay(t.Biases().Reflect)
	return traceOrBackground(t, ray).Multiply(mr.Tint)
}

// Shadow blocks light completely
func (mr *Mirror) Shadow(m *core.Maxel, lixel core.Lixel) (core.Color, bool) {
	return opaque()
}
