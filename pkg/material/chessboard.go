package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Chessboard alternates two materials on a UV grid
type Chessboard struct {
	Even, Odd core.Material
	Scale     float64 // squares per UV unit
}

// NewChessboard creates a chessboard of two materials
func NewChessboard(even, odd core.Material, scale float64) *Chessboard {
	return &Chessboard{Even: even, Odd: odd, Scale: scale}
}

func (c *Chessboard) pick(m *core.Maxel) core.Material {
	if checkParity(m.UV(), c.Scale) {
		return c.Odd
	}
	return c.Even
}

// Render delegates to the material of the square containing the hit
func (c *Chessboard) Render(m *core.Maxel, t core.Tracer) core.Color {
	return c.pick(m).Render(m, t)
}

// Shadow delegates to the material of the square containing the hit
func (c *Chessboard) Shadow(m *core.Maxel, lixel core.Lixel) (core.Color, bool) {
	return c.pick(m).Shadow(m, lixel)
}
