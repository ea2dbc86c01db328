package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransform_RoundTrip(t *testing.T) {
	scale, err := Scale(NewVec3(2, 0.5, 3))
	if err != nil {
		t.Fatal(err)
	}

	transforms := map[string]*Transform{
		"identity":  Identity(),
		"translate": Translate(NewVec3(1, -2, 3)),
		"rotate":    RotateY(0.7),
		"scale":     scale,
		"composite": scale.Then(RotateX(1.1)).Then(Translate(NewVec3(-4, 2, 0.5))),
	}

	rays := []Ray{
		NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1)),
		NewRay(NewVec3(1, 2, 3), NewVec3(-1, 0.5, 2)),
		NewRay(NewVec3(-10, 4, 0.25), NewVec3(3, -3, 1)),
	}

	for name, xfrm := range transforms {
		t.Run(name, func(t *testing.T) {
			for _, ray := range rays {
				back := xfrm.InverseRay(xfrm.Ray(ray))
				if !vecApproxEqual(back.Origin, ray.Origin, 1e-9) {
					t.Errorf("Origin %v came back as %v", ray.Origin, back.Origin)
				}
				if !vecApproxEqual(back.Direction, ray.Direction, 1e-9) {
					t.Errorf("Direction %v came back as %v", ray.Direction, back.Direction)
				}
			}
		})
	}
}

func TestTransform_PreservesParameter(t *testing.T) {
	xfrm := UniformScale(2).Then(Translate(NewVec3(0, 0, -5)))
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	local := xfrm.InverseRay(ray)
	dist, ok := local.IntersectSphere(NewVec3(0, 0, 0), 1)
	if !ok {
		t.Fatal("Expected hit on scaled sphere")
	}
	// World sphere has radius 2 centered at z=-5, so the hit is 8 units away
	if math.Abs(dist-8) > 1e-9 {
		t.Errorf("Expected world parameter 8, got %f", dist)
	}
	if p := ray.At(dist); !vecApproxEqual(p, xfrm.Point(local.At(dist)), 1e-9) {
		t.Errorf("World and local hit points disagree: %v", p)
	}
}

func TestTransform_Normal(t *testing.T) {
	scale, err := Scale(NewVec3(4, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	// A normal on a sphere stretched along X must tilt toward the short axis
	n := scale.Normal(NewVec3(1, 1, 0).Normalize())
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", n.Length())
	}
	if n.Y <= n.X {
		t.Errorf("Expected normal to tilt toward Y, got %v", n)
	}
}

func TestTransform_Singular(t *testing.T) {
	if _, err := NewTransform(mgl64.Scale3D(1, 0, 1)); err != ErrSingularTransform {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}
	if _, err := Scale(NewVec3(0, 1, 1)); err == nil {
		t.Error("Expected error for zero scale")
	}
}

func TestTransform_Bounds(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	rotated := RotateZ(math.Pi / 4).Bounds(box)

	expected := math.Sqrt2
	if math.Abs(rotated.Max.X-expected) > 1e-9 || math.Abs(rotated.Min.Y+expected) > 1e-9 {
		t.Errorf("Unexpected rotated bounds %v", rotated)
	}
	if math.Abs(rotated.Max.Z-1) > 1e-9 {
		t.Errorf("Rotation around Z must keep Z extent, got %v", rotated)
	}
}
