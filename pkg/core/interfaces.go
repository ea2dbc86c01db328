package core

// MaterialID indexes the scene's material table.
type MaterialID uint32

// Surface is implemented by every primitive that can be hit. The methods
// derive shading attributes from a hit produced by that primitive.
type Surface interface {
	// Normal returns the unit world-space surface normal at the hit.
	Normal(h *Hit) Vec3
	// UV returns the texture parametrization at the hit.
	UV(h *Hit) Point2
	// ST returns the secondary parametrization at the hit.
	ST(h *Hit) Point2
}

// Material shades a hit. Implementations may recurse through the tracer.
type Material interface {
	// Render returns the color seen along m.Dir at m.Pos.
	Render(m *Maxel, t Tracer) Color
	// Shadow returns the light color left after the light described by
	// lixel passes through the blocker at m. It returns false when the
	// material does not occlude light at all.
	Shadow(m *Maxel, lixel Lixel) (Color, bool)
}

// Light produces the illumination of a shading point.
type Light interface {
	Contribution(m *Maxel) Lixel
}

// MultiSampleLight is implemented by lights that are better described by
// several samples per shading point, such as area lights.
type MultiSampleLight interface {
	Light
	Lixels(m *Maxel) []Lixel
}

// Tracer is the handle materials use to cast secondary rays.
type Tracer interface {
	// RayTrace returns the color seen along ray, or false when nothing is
	// hit or the recursion ceiling is reached.
	RayTrace(ray Ray) (Color, bool)
	// RayShadow returns the light color that reaches m from the light
	// described by lixel when something blocks the path. It returns false
	// when the path is clear.
	RayShadow(m *Maxel, lixel Lixel) (Color, bool)

	Lights() []Light
	Ambient() Color
	Background() Color
	Biases() Biases
}

// Lixel is a single light sample as seen from a shading point.
type Lixel struct {
	Dir   Vec3    // unit vector from the shading point toward the light
	Color Color   // light color reaching the point before occlusion
	Dist2 float64 // squared distance to the light; +Inf for directional lights
}

// LightSamples returns every sample light l contributes to m
func LightSamples(l Light, m *Maxel) []Lixel {
	if ms, ok := l.(MultiSampleLight); ok {
		return ms.Lixels(m)
	}
	return []Lixel{l.Contribution(m)}
}

// Illumination returns the light color reaching m from lixel once
// occluders are taken into account
func Illumination(t Tracer, m *Maxel, lixel Lixel) Color {
	if shadow, blocked := t.RayShadow(m, lixel); blocked {
		return shadow
	}
	return lixel.Color
}
