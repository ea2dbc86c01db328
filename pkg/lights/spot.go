package lights

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Spot is a point light restricted to a cone with a smooth edge
type Spot struct {
	Position    core.Vec3
	Color       core.Color
	Attenuation Attenuation

	direction     core.Vec3 // unit axis of the cone
	cosTotalWidth float64   // cosine of the cone half angle
	cosFalloff    float64   // cosine where the edge falloff begins
}

// NewSpot creates a spot light at from aimed at to. coneAngle is the half
// angle of the cone in degrees; the last coneDelta degrees fade out.
func NewSpot(from, to core.Vec3, color core.Color, coneAngle, coneDelta float64, att Attenuation) (*Spot, error) {
	axis := to.Subtract(from)
	if axis.LengthSquared() == 0 {
		return nil, ErrZeroDirection
	}
	if coneAngle <= 0 || coneAngle > 90 {
		return nil, ErrInvalidCone
	}
	coneDelta = math.Max(0, math.Min(coneDelta, coneAngle))

	return &Spot{
		Position:      from,
		Color:         color,
		Attenuation:   att,
		direction:     axis.Normalize(),
		cosTotalWidth: math.Cos(coneAngle * math.Pi / 180),
		cosFalloff:    math.Cos((coneAngle - coneDelta) * math.Pi / 180),
	}, nil
}

// Contribution behaves like a point light scaled by the cone falloff
func (s *Spot) Contribution(m *core.Maxel) core.Lixel {
	lixel := pointLixel(s.Position, s.Color, s.Attenuation, m.Pos)
	cos := lixel.Dir.Negate().Dot(s.direction)
	lixel.Color = lixel.Color.Scale(s.falloff(cos))
	return lixel
}

// falloff is 1 inside the inner cone, 0 outside the cone and smoothstep in
// between
func (s *Spot) falloff(cos float64) float64 {
	if cos < s.cosTotalWidth {
		return 0
	}
	if cos >= s.cosFalloff {
		return 1
	}
	x := (cos - s.cosTotalWidth) / (s.cosFalloff - s.cosTotalWidth)
	return x * x * (3 - 2*x)
}
