package core

import (
	"image/color"
	"math"
)

// Color is a linear RGB color. Components are not bounded while shading.
type Color struct {
	R, G, B float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a color with all three components set to v
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the component-wise product
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Divide returns the color divided by a scalar. Division by zero yields black.
func (c Color) Divide(s float64) Color {
	if s == 0 {
		return Black
	}
	return Color{c.R / s, c.G / s, c.B / s}
}

// Lerp linearly interpolates from c (t=0) to other (t=1)
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Clamped returns the color with every component clamped to [0, 1].
// NaN components clamp to 0.
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// IsBlack reports whether all components are zero or below
func (c Color) IsBlack() bool {
	return c.R <= 0 && c.G <= 0 && c.B <= 0
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// ToArray clamps the color and scales it to bytes, rounding to nearest
func (c Color) ToArray() [3]uint8 {
	clamped := c.Clamped()
	return [3]uint8{toByte(clamped.R), toByte(clamped.G), toByte(clamped.B)}
}

// ToRGBA converts the color to an opaque image/color value
func (c Color) ToRGBA() color.RGBA {
	b := c.ToArray()
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
