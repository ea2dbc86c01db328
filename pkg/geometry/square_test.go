package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestSquare_Intersect(t *testing.T) {
	square := NewSquare(core.Identity(), 0)

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
		hit    bool
		uv     core.Point2
	}{
		{"front", core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1), true, core.NewPoint2(0.75, 0.75)},
		{"back", core.NewVec3(-0.5, 0, -5), core.NewVec3(0, 0, 1), true, core.NewPoint2(0.25, 0.5)},
		{"outside", core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), false, core.Point2{}},
		{"parallel", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), false, core.Point2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := square.Intersect(core.NewRay(tt.origin, tt.dir))
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-5) > tolerance {
				t.Errorf("Expected t=5, got %f", hit.T)
			}
			uv := hit.Surface.UV(&hit)
			if math.Abs(uv.X-tt.uv.X) > tolerance || math.Abs(uv.Y-tt.uv.Y) > tolerance {
				t.Errorf("Expected UV %v, got %v", tt.uv, uv)
			}
			if n := normalAt(hit); !vecNear(n, core.NewVec3(0, 0, 1), tolerance) {
				t.Errorf("Expected normal +Z, got %v", n)
			}
		})
	}
}

func TestSquare_RotatedFloor(t *testing.T) {
	square := NewSquare(core.RotateX(-math.Pi/2).Then(core.Translate(core.NewVec3(0, -1, 0))), 0)

	hit := mustHit(t, square, core.NewRay(core.NewVec3(0.2, 3, 0.3), core.NewVec3(0, -1, 0)))
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if n := normalAt(hit); !vecNear(n, core.NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Expected normal +Y, got %v", n)
	}
	if b := square.Bounds(); b.Min.Y > -1 || b.Max.Y < -1 {
		t.Errorf("Expected flat bounds around y=-1, got %v", b)
	}
}
