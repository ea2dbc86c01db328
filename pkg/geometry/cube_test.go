package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestCube_Faces(t *testing.T) {
	cube := NewTransformedCube(core.Identity(), 0)

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
		face   int
		normal core.Vec3
	}{
		{"+X", core.NewVec3(5, 0.2, 0.1), core.NewVec3(-1, 0, 0), 0, core.NewVec3(1, 0, 0)},
		{"-X", core.NewVec3(-5, 0.2, 0.1), core.NewVec3(1, 0, 0), 1, core.NewVec3(-1, 0, 0)},
		{"+Y", core.NewVec3(0.3, 5, 0.1), core.NewVec3(0, -1, 0), 2, core.NewVec3(0, 1, 0)},
		{"-Y", core.NewVec3(0.3, -5, 0.1), core.NewVec3(0, 1, 0), 3, core.NewVec3(0, -1, 0)},
		{"+Z", core.NewVec3(0.3, 0.2, 5), core.NewVec3(0, 0, -1), 4, core.NewVec3(0, 0, 1)},
		{"-Z", core.NewVec3(0.3, 0.2, -5), core.NewVec3(0, 0, 1), 5, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := mustHit(t, cube, core.NewRay(tt.origin, tt.dir))
			if math.Abs(hit.T-4) > tolerance {
				t.Errorf("Expected t=4, got %f", hit.T)
			}
			if hit.Face != tt.face {
				t.Errorf("Expected face %d, got %d", tt.face, hit.Face)
			}
			if n := normalAt(hit); !vecNear(n, tt.normal, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.normal, n)
			}
			st := hit.Surface.ST(&hit)
			if math.Abs(st.X-float64(tt.face)/6) > tolerance {
				t.Errorf("Expected ST.x=%f, got %f", float64(tt.face)/6, st.X)
			}
		})
	}
}

func TestCube_FromInsideHitsExitFace(t *testing.T) {
	cube := NewTransformedCube(core.Identity(), 0)
	hit := mustHit(t, cube, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	if math.Abs(hit.T-1) > tolerance || hit.Face != 4 {
		t.Errorf("Expected exit through +Z at t=1, got face %d at t=%f", hit.Face, hit.T)
	}
}

func TestCube_Miss(t *testing.T) {
	cube := NewTransformedCube(core.Identity(), 0)
	for _, ray := range []core.Ray{
		core.NewRay(core.NewVec3(5, 2, 0), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(1, 0, 0)),
		core.NewRay(core.NewVec3(3, 3, 0), core.NewVec3(-1, -0.2, 0)),
	} {
		if hit, ok := cube.Intersect(ray); ok {
			t.Errorf("Expected miss for %v, got hit at t=%f", ray, hit.T)
		}
	}
}

func TestCube_UVFaceCenter(t *testing.T) {
	cube := NewTransformedCube(core.Identity(), 0)
	hit := mustHit(t, cube, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	uv := hit.Surface.UV(&hit)
	if math.Abs(uv.X-0.5) > tolerance || math.Abs(uv.Y-0.5) > tolerance {
		t.Errorf("Expected UV (0.5, 0.5) at the face center, got %v", uv)
	}
}

func TestNewCube_Box(t *testing.T) {
	cube, err := NewCube(core.NewVec3(0, 0, -5), core.NewVec3(1, 2, 3), 0)
	if err != nil {
		t.Fatal(err)
	}

	hit := mustHit(t, cube, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if math.Abs(hit.T-2) > tolerance {
		t.Errorf("Expected t=2, got %f", hit.T)
	}
	if n := normalAt(hit); !vecNear(n, core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected normal +Z, got %v", n)
	}

	b := cube.Bounds()
	if !b.Contains(core.NewAABB(core.NewVec3(-1, -2, -8), core.NewVec3(1, 2, -2))) {
		t.Errorf("Expected bounds to contain the box, got %v", b)
	}

	if _, err := NewCube(core.Vec3{}, core.NewVec3(1, 0, 1), 0); err == nil {
		t.Error("Expected error for a zero extent")
	}
}
