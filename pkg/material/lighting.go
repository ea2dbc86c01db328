package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// directLight averages shade over the samples light contributes to m.
// Samples behind the surface are skipped without casting a shadow ray;
// shade receives the unoccluded cosine and the light reaching m.
func directLight(t core.Tracer, m *core.Maxel, light core.Light, shade func(lixel core.Lixel, cos float64, incoming core.Color) core.Color) core.Color {
	samples := core.LightSamples(light, m)
	if len(samples) == 0 {
		return core.Black
	}

	n := m.FacingNormal()
	sum := core.Black
	for _, lixel := range samples {
		cos := n.Dot(lixel.Dir)
		if cos <= 0 {
			continue
		}
		incoming := core.Illumination(t, m, lixel)
		if incoming.IsBlack() {
			continue
		}
		sum = sum.Add(shade(lixel, cos, incoming))
	}
	return sum.Divide(float64(len(samples)))
}

// traceOrBackground follows ray and substitutes the background color when
// nothing is hit
func traceOrBackground(t core.Tracer, ray core.Ray) core.Color {
	if c, ok := t.RayTrace(ray); ok {
		return c
	}
	return t.Background()
}

// opaque is the shadow policy of materials that block light completely
func opaque() (core.Color, bool) {
	return core.Black, true
}
