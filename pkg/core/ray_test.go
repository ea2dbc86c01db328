package core

import (
	"math"
	"testing"
)

func TestRay_IntersectSphere_Symmetry(t *testing.T) {
	center := NewVec3(1, -2, 3)
	radius := 1.5

	origins := []Vec3{
		NewVec3(10, 0, 0),
		NewVec3(-4, 5, 9),
		NewVec3(1, -2, 30),
		NewVec3(0.5, 100, -7),
	}

	for _, origin := range origins {
		ray := NewRay(origin, center.Subtract(origin))
		dist, ok := ray.IntersectSphere(center, radius)
		if !ok {
			t.Fatalf("Expected hit from %v", origin)
		}
		expected := origin.Subtract(center).Length() - radius
		if math.Abs(dist-expected) > 1e-9 {
			t.Errorf("From %v: expected distance %f, got %f", origin, expected, dist)
		}
	}
}

func TestRay_IntersectSphere_Inside(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))
	dist, ok := ray.IntersectSphere(NewVec3(0, 0, 0), 2)
	if !ok || math.Abs(dist-2) > tolerance {
		t.Errorf("Expected exit hit at 2, got %f (hit=%t)", dist, ok)
	}

	behind := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1))
	if _, ok := behind.IntersectSphere(NewVec3(0, 0, 0), 1); ok {
		t.Error("Expected no hit for sphere behind the ray")
	}
}

func TestRay_IntersectPlane(t *testing.T) {
	point := NewVec3(0, -1, 0)
	normal := NewVec3(0, 1, 0)

	ray := NewRay(NewVec3(0, 1, 0), NewVec3(0, -1, 0))
	dist, ok := ray.IntersectPlane(point, normal)
	if !ok || math.Abs(dist-2) > tolerance {
		t.Errorf("Expected hit at 2, got %f (hit=%t)", dist, ok)
	}

	parallel := NewRay(NewVec3(0, 1, 0), NewVec3(1, 0, 0))
	if _, ok := parallel.IntersectPlane(point, normal); ok {
		t.Error("Expected parallel ray to miss")
	}

	// A ray starting on the plane must not report the plane itself
	onPlane := NewRay(NewVec3(0, -1, 0), NewVec3(0, 1, 1))
	if _, ok := onPlane.IntersectPlane(point, normal); ok {
		t.Error("Expected self-intersection to be rejected")
	}
}

func TestRay_IntersectTriangle_Centroid(t *testing.T) {
	v0 := NewVec3(-1, 0, -1)
	v1 := NewVec3(2, 0, -1)
	v2 := NewVec3(0, 0, 3)
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	centroid := v0.Add(v1).Add(v2).Multiply(1.0 / 3.0)

	origins := []Vec3{
		NewVec3(0, 5, 0),
		NewVec3(3, -4, 2),
		NewVec3(-7, 1, 9),
	}

	for _, origin := range origins {
		ray := NewRay(origin, centroid.Subtract(origin))
		dist, bary, ok := ray.IntersectTriangle(v0, e1, e2)
		if !ok {
			t.Fatalf("Expected centroid hit from %v", origin)
		}
		if math.Abs(dist-centroid.Subtract(origin).Length()) > 1e-9 {
			t.Errorf("Unexpected distance %f", dist)
		}
		if math.Abs(bary.X-1.0/3.0) > 1e-9 || math.Abs(bary.Y-1.0/3.0) > 1e-9 {
			t.Errorf("Expected barycentric (1/3, 1/3), got %v", bary)
		}
	}

	parallel := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	if _, _, ok := parallel.IntersectTriangle(v0, e1, e2); ok {
		t.Error("Expected ray in the triangle plane to miss")
	}

	outside := NewRay(NewVec3(5, 1, 5), NewVec3(0, -1, 0))
	if _, _, ok := outside.IntersectTriangle(v0, e1, e2); ok {
		t.Error("Expected ray outside the triangle to miss")
	}
}
