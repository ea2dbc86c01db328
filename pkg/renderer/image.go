package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Image collects render spans into a frame buffer. Later spans for a line
// overwrite earlier ones.
type Image struct {
	width, height int
	pixels        []core.Color
}

// NewImage creates a black image
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidFrameSize, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}, nil
}

// Width returns the image width in pixels
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels
func (img *Image) Height() int {
	return img.height
}

// Apply writes span into its line
func (img *Image) Apply(span RenderSpan) error {
	line := int(span.Line)
	if line >= img.height || len(span.Pixels) != img.width {
		return fmt.Errorf("%w: line %d with %d pixels in %dx%d",
			ErrSpanOutOfRange, span.Line, len(span.Pixels), img.width, img.height)
	}
	copy(img.pixels[line*img.width:], span.Pixels)
	return nil
}

// Collect applies every span from spans until the channel is closed. It
// returns the first error but keeps draining.
func (img *Image) Collect(spans <-chan RenderSpan) error {
	var first error
	for span := range spans {
		if err := img.Apply(span); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// At returns the color of pixel (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.pixels[y*img.width+x]
}

// ToRGBA converts the image with the clamp, scale and round rule
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			rgba.SetRGBA(x, y, img.At(x, y).ToRGBA())
		}
	}
	return rgba
}
