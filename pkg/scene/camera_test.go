package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 2,
		VFov:        90,
	}
}

func TestCamera_Dimensions(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatal(err)
	}
	if camera.Width() != 100 || camera.Height() != 50 {
		t.Errorf("Expected 100x50, got %dx%d", camera.Width(), camera.Height())
	}
	if camera.Position() != core.NewVec3(0, 0, 5) {
		t.Errorf("Expected position (0, 0, 5), got %v", camera.Position())
	}
}

func TestCamera_Rays(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatal(err)
	}

	center := camera.Ray(50, 25)
	if center.Origin != core.NewVec3(0, 0, 5) {
		t.Errorf("Expected ray origin at the camera, got %v", center.Origin)
	}
	if center.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected center ray along -Z, got %v", center.Direction)
	}

	// With a 90 degree vertical field of view the top edge is 45 degrees up
	top := camera.Ray(50, 0)
	if math.Abs(top.Direction.Y-top.Direction.Negate().Z) > 1e-9 || top.Direction.Y <= 0 {
		t.Errorf("Expected top edge ray at 45 degrees up, got %v", top.Direction)
	}

	topLeft := camera.Ray(0, 0)
	if topLeft.Direction.X >= 0 || topLeft.Direction.Y <= 0 {
		t.Errorf("Expected top-left ray to point left and up, got %v", topLeft.Direction)
	}
	if math.Abs(topLeft.Direction.Length()-1) > 1e-9 {
		t.Errorf("Expected normalized direction, got length %f", topLeft.Direction.Length())
	}
}

func TestCamera_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CameraConfig)
		want   error
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }, ErrInvalidFrame},
		{"negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }, ErrInvalidFrame},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }, ErrInvalidFrame},
		{"straight fov", func(c *CameraConfig) { c.VFov = 180 }, ErrInvalidFrame},
		{"eye at target", func(c *CameraConfig) { c.LookAt = c.Center }, ErrInvalidCamera},
		{"up along view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }, ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			tt.modify(&config)
			if _, err := NewCamera(config); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := testCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 32, VFov: 30})

	if merged.Width != 32 || merged.VFov != 30 {
		t.Errorf("Expected overridden width and fov, got %d and %f", merged.Width, merged.VFov)
	}
	if merged.Center != base.Center || merged.AspectRatio != base.AspectRatio {
		t.Errorf("Expected unset fields to keep base values, got %+v", merged)
	}
}
