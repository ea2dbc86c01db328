package lights

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Directional is a light infinitely far away, such as the sun. It has no
// falloff and its shadow rays are unbounded.
type Directional struct {
	toLight core.Vec3
	Color   core.Color
}

// NewDirectional creates a light shining along direction
func NewDirectional(direction core.Vec3, color core.Color) (*Directional, error) {
	if direction.LengthSquared() == 0 {
		return nil, ErrZeroDirection
	}
	return &Directional{toLight: direction.Normalize().Negate(), Color: color}, nil
}

// Contribution returns the constant direction toward the light
func (d *Directional) Contribution(m *core.Maxel) core.Lixel {
	return core.Lixel{Dir: d.toLight, Color: d.Color, Dist2: math.Inf(1)}
}
