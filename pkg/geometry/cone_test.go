package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestCone_Side(t *testing.T) {
	cone := NewTransformedCone(core.Identity(), true, 0)

	// At y=0 the radius is 0.5
	hit := mustHit(t, cone, core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)))
	if math.Abs(hit.T-4.5) > tolerance {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}
	expected := core.NewVec3(2, 1, 0).Normalize()
	if n := normalAt(hit); !vecNear(n, expected, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expected, n)
	}

	// Above the apex there is nothing
	if _, ok := cone.Intersect(core.NewRay(core.NewVec3(5, 1.5, 0), core.NewVec3(-1, 0, 0))); ok {
		t.Error("Expected miss above the apex")
	}
}

func TestCone_Base(t *testing.T) {
	capped := NewTransformedCone(core.Identity(), true, 0)
	hit := mustHit(t, capped, core.NewRay(core.NewVec3(0.2, -5, 0), core.NewVec3(0, 1, 0)))
	if math.Abs(hit.T-4) > tolerance || hit.Face != faceBottom {
		t.Errorf("Expected base hit at t=4, got face %d at t=%f", hit.Face, hit.T)
	}
	if n := normalAt(hit); !vecNear(n, core.NewVec3(0, -1, 0), tolerance) {
		t.Errorf("Expected normal -Y, got %v", n)
	}

	// Without the base the ray enters and hits the inside of the side wall
	open := NewTransformedCone(core.Identity(), false, 0)
	hit = mustHit(t, open, core.NewRay(core.NewVec3(0.2, -5, 0), core.NewVec3(0, 1, 0)))
	if hit.Face != faceSide || math.Abs(hit.Pos.Y-0.6) > 1e-9 {
		t.Errorf("Expected inner wall hit at y=0.6, got face %d at %v", hit.Face, hit.Pos)
	}
}

func TestCone_UncappedFromInside(t *testing.T) {
	cone := NewTransformedCone(core.Identity(), false, 0)

	hit := mustHit(t, cone, core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)))
	if math.Abs(hit.T-0.5) > tolerance {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if !hit.Flip {
		t.Error("Expected flip for a ray starting inside")
	}
	expected := core.NewVec3(-2, -1, 0).Normalize()
	if n := normalAt(hit); !vecNear(n, expected, 1e-9) {
		t.Errorf("Expected inward normal %v, got %v", expected, n)
	}
}

func TestNewCone_Segment(t *testing.T) {
	cone, err := NewCone(core.Vec3{}, core.NewVec3(0, 4, 0), 2, true, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Radius at half height is 1
	hit := mustHit(t, cone, core.NewRay(core.NewVec3(5, 2, 0), core.NewVec3(-1, 0, 0)))
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	b := cone.Bounds()
	if !b.Contains(core.NewAABB(core.NewVec3(-2, 0, -2), core.NewVec3(2, 4, 2))) {
		t.Errorf("Expected bounds to contain the cone, got %v", b)
	}
}

func TestCone_ParallelToSide(t *testing.T) {
	cone := NewTransformedCone(core.Identity(), true, 0)
	// The side slopes 0.5 outward per unit of descent
	dir := core.NewVec3(0.5, -1, 0)

	hit := mustHit(t, cone, core.NewRay(core.NewVec3(-0.5, 1, 0), dir))
	if math.Abs(hit.T-0.5) > tolerance || hit.Face != faceSide {
		t.Fatalf("Expected side hit at t=0.5, got face %d at t=%f", hit.Face, hit.T)
	}
	if !vecNear(hit.Pos, core.NewVec3(-0.25, 0.5, 0), tolerance) {
		t.Errorf("Expected hit at (-0.25, 0.5, 0), got %v", hit.Pos)
	}
	expected := core.NewVec3(-2, 1, 0).Normalize()
	if n := normalAt(hit); !vecNear(n, expected, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expected, n)
	}

	// The single crossing of this line lies above the apex
	if _, ok := cone.Intersect(core.NewRay(core.NewVec3(-0.5, 3, 0), dir)); ok {
		t.Error("Expected miss for a parallel line crossing above the apex")
	}
}
