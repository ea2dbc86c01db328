package lights

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Area is a rectangular light corner + s·U + t·V, s,t ∈ [0,1], sampled on a
// fixed grid. Every sample carries the full light color; materials average
// the samples, which produces soft shadows.
type Area struct {
	Corner      core.Vec3
	U, V        core.Vec3
	Color       core.Color
	Attenuation Attenuation

	samplesU, samplesV int
	points             []core.Vec3
}

// NewArea creates an area light sampled on a samplesU × samplesV grid of
// cell centers
func NewArea(corner, u, v core.Vec3, color core.Color, att Attenuation, samplesU, samplesV int) (*Area, error) {
	if samplesU < 1 || samplesV < 1 {
		return nil, ErrInvalidSampleGrid
	}
	if u.Cross(v).LengthSquared() == 0 {
		return nil, ErrDegenerateArea
	}

	a := &Area{
		Corner:      corner,
		U:           u,
		V:           v,
		Color:       color,
		Attenuation: att,
		samplesU:    samplesU,
		samplesV:    samplesV,
	}
	a.points = make([]core.Vec3, 0, samplesU*samplesV)
	for j := 0; j < samplesV; j++ {
		for i := 0; i < samplesU; i++ {
			s := (float64(i) + 0.5) / float64(samplesU)
			t := (float64(j) + 0.5) / float64(samplesV)
			a.points = append(a.points, corner.Add(u.Multiply(s)).Add(v.Multiply(t)))
		}
	}
	return a, nil
}

// Center returns the center of the rectangle
func (a *Area) Center() core.Vec3 {
	return a.Corner.Add(a.U.Multiply(0.5)).Add(a.V.Multiply(0.5))
}

// SampleCount returns the number of grid samples
func (a *Area) SampleCount() int {
	return len(a.points)
}

// Contribution treats the light as a point at its center
func (a *Area) Contribution(m *core.Maxel) core.Lixel {
	return pointLixel(a.Center(), a.Color, a.Attenuation, m.Pos)
}

// Lixels returns one sample per grid cell
func (a *Area) Lixels(m *core.Maxel) []core.Lixel {
	lixels := make([]core.Lixel, len(a.points))
	for i, p := range a.points {
		lixels[i] = pointLixel(p, a.Color, a.Attenuation, m.Pos)
	}
	return lixels
}
