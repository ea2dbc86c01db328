package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction (usually (0,1,0))
	Width       int       // Image width in pixels
	AspectRatio float64   // Width / height ratio
	VFov        float64   // Vertical field of view in degrees
}

// MergeCameraConfig returns base with every non-zero field of override
// applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	return result
}

// Camera is a pinhole camera producing primary rays for pixel coordinates
type Camera struct {
	config CameraConfig
	height int

	origin     core.Vec3
	forward    core.Vec3
	horizontal core.Vec3 // spans the full image width
	vertical   core.Vec3 // spans the full image height, pointing up
}

// NewCamera builds a camera from its configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.AspectRatio <= 0 {
		return nil, ErrInvalidFrame
	}
	height := int(math.Round(float64(config.Width) / config.AspectRatio))
	if height <= 0 || config.VFov <= 0 || config.VFov >= 180 {
		return nil, ErrInvalidFrame
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	if w.LengthSquared() == 0 || u.LengthSquared() == 0 {
		return nil, ErrInvalidCamera
	}
	v := w.Cross(u)

	viewportHeight := 2 * math.Tan(config.VFov*math.Pi/360)
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	return &Camera{
		config:     config,
		height:     height,
		origin:     config.Center,
		forward:    w.Negate(),
		horizontal: u.Multiply(viewportWidth),
		vertical:   v.Multiply(viewportHeight),
	}, nil
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Position returns the eye point
func (c *Camera) Position() core.Vec3 {
	return c.origin
}

// Ray returns the primary ray through image coordinates (x, y), measured in
// pixels from the top-left corner. Pixel centers lie at half-integers.
func (c *Camera) Ray(x, y float64) core.Ray {
	s := x/float64(c.config.Width) - 0.5
	t := 0.5 - y/float64(c.height)
	dir := c.forward.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))
	return core.NewRay(c.origin, dir)
}
