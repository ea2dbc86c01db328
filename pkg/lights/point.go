package lights

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Point is an omnidirectional light at a position
type Point struct {
	Position    core.Vec3
	Color       core.Color
	Attenuation Attenuation
}

// NewPoint creates a point light
func NewPoint(position core.Vec3, color core.Color, att Attenuation) *Point {
	return &Point{Position: position, Color: color, Attenuation: att}
}

// Contribution returns the direction, attenuated color and squared distance
// toward the light
func (p *Point) Contribution(m *core.Maxel) core.Lixel {
	return pointLixel(p.Position, p.Color, p.Attenuation, m.Pos)
}

func pointLixel(position core.Vec3, color core.Color, att Attenuation, from core.Vec3) core.Lixel {
	to := position.Subtract(from)
	dist2 := to.LengthSquared()
	d := math.Sqrt(dist2)
	if d == 0 {
		return core.Lixel{Color: color.Scale(att.Factor(0))}
	}
	return core.Lixel{
		Dir:   to.Multiply(1 / d),
		Color: color.Scale(att.Factor(d)),
		Dist2: dist2,
	}
}
