package material

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage copies img into a texture
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	b := img.Bounds()
	pixels := make([]core.Color, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pixels = append(pixels, core.NewColor(float64(r)/0xffff, float64(g)/0xffff, float64(bl)/0xffff))
		}
	}
	return NewImageTexture(b.Dx(), b.Dy(), pixels)
}

// LoadImageTexture decodes the image file at path
func LoadImageTexture(path string) (*ImageTexture, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("loading texture %s: %w", path, err)
	}
	return NewImageTextureFromImage(img), nil
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Point2, point core.Vec3) core.Color {
	if len(t.Pixels) == 0 {
		return core.Black
	}

	// Wrap UV coordinates to [0, 1)
	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	// V=0 is bottom, V=1 is top; image rows start at the top
	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int((1.0-v)*float64(t.Height)), t.Height-1)
	return t.Pixels[max(y, 0)*t.Width+max(x, 0)]
}

// CheckerTexture alternates two colors on a UV grid
type CheckerTexture struct {
	Even, Odd core.Color
	Scale     float64 // checks per UV unit
}

// NewCheckerTexture creates a procedural checker pattern
func NewCheckerTexture(even, odd core.Color, scale float64) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd, Scale: scale}
}

// Evaluate returns Even or Odd depending on the check containing uv
func (c *CheckerTexture) Evaluate(uv core.Point2, point core.Vec3) core.Color {
	if checkParity(uv, c.Scale) {
		return c.Odd
	}
	return c.Even
}

// checkParity reports whether uv falls on an odd check of a grid with
// scale checks per unit
func checkParity(uv core.Point2, scale float64) bool {
	i := int64(math.Floor(uv.X*scale)) + int64(math.Floor(uv.Y*scale))
	return i&1 == 1
}
