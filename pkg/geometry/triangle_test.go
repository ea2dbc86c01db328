package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func unitTriangle() *Triangle {
	return NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		1,
	)
}

func TestTriangle_IntersectCentroid(t *testing.T) {
	tri := unitTriangle()
	centroid := tri.Centroid()
	ray := core.NewRay(centroid.Add(core.NewVec3(0, 0, 2)), core.NewVec3(0, 0, -1))

	hit := mustHit(t, tri, ray)
	if math.Abs(hit.T-2) > tolerance {
		t.Errorf("Expected t=2, got %f", hit.T)
	}
	if math.Abs(hit.Bary.X-1.0/3) > tolerance || math.Abs(hit.Bary.Y-1.0/3) > tolerance {
		t.Errorf("Expected barycentrics (1/3, 1/3), got %v", hit.Bary)
	}
	if n := normalAt(hit); !vecNear(n, core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected normal +Z, got %v", n)
	}
	if st := hit.Surface.ST(&hit); st != hit.Bary {
		t.Errorf("Expected ST to be the barycentrics, got %v", st)
	}
}

func TestTriangle_Miss(t *testing.T) {
	tri := unitTriangle()

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"outside edge", core.NewVec3(0.8, 0.8, 1), core.NewVec3(0, 0, -1)},
		{"parallel", core.NewVec3(-1, 0.2, 0), core.NewVec3(1, 0, 0)},
		{"behind origin", core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := tri.Intersect(core.NewRay(tt.origin, tt.dir)); ok {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestTriangle_EqualVertexNormalsMatchFaceNormal(t *testing.T) {
	tri := unitTriangle()
	n := core.NewVec3(0, 0, 1)
	tri.SetVertexNormals(n, n, n)

	for _, p := range []core.Vec3{
		core.NewVec3(0.1, 0.1, 1),
		core.NewVec3(0.7, 0.2, 1),
		core.NewVec3(0.05, 0.9, 1),
	} {
		hit := mustHit(t, tri, core.NewRay(p, core.NewVec3(0, 0, -1)))
		if got := normalAt(hit); !vecNear(got, tri.FaceNormal(), tolerance) {
			t.Errorf("Expected face normal %v at %v, got %v", tri.FaceNormal(), p, got)
		}
	}
}

func TestTriangle_InterpolatedNormalAndUV(t *testing.T) {
	tri := unitTriangle()
	tri.SetVertexNormals(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 1), core.NewVec3(0, 1, 1))
	tri.SetTexCoords(core.NewPoint2(0, 0), core.NewPoint2(2, 0), core.NewPoint2(0, 4))

	hit := mustHit(t, tri, core.NewRay(core.NewVec3(0.4, 0.2, 1), core.NewVec3(0, 0, -1)))
	expected := core.NewVec3(0, 0, 1).Multiply(0.4).
		Add(core.NewVec3(1, 0, 1).Normalize().Multiply(0.4)).
		Add(core.NewVec3(0, 1, 1).Normalize().Multiply(0.2)).
		Normalize()
	if n := normalAt(hit); !vecNear(n, expected, 1e-9) {
		t.Errorf("Expected interpolated normal %v, got %v", expected, n)
	}
	if uv := hit.Surface.UV(&hit); math.Abs(uv.X-0.8) > tolerance || math.Abs(uv.Y-0.8) > tolerance {
		t.Errorf("Expected UV (0.8, 0.8), got %v", uv)
	}
}

func TestTriangle_Area(t *testing.T) {
	if a := unitTriangle().Area(); math.Abs(a-0.5) > tolerance {
		t.Errorf("Expected area 0.5, got %f", a)
	}
	degenerate := NewTriangle(core.Vec3{}, core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), 0)
	if a := degenerate.Area(); a != 0 {
		t.Errorf("Expected zero area for collinear vertices, got %f", a)
	}
}

func TestNewTriangleMesh_Validation(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}

	tests := []struct {
		name    string
		faces   []int
		options *TriangleMeshOptions
	}{
		{"partial face", []int{0, 1}, nil},
		{"index out of range", []int{0, 1, 3}, nil},
		{"negative index", []int{0, -1, 2}, nil},
		{"normal count", []int{0, 1, 2}, &TriangleMeshOptions{Normals: []core.Vec3{{}}}},
		{"texcoord count", []int{0, 1, 2}, &TriangleMeshOptions{TexCoords: []core.Point2{{}}}},
		{"material count", []int{0, 1, 2}, &TriangleMeshOptions{Materials: []core.MaterialID{1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTriangleMesh(vertices, tt.faces, 0, tt.options); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

// quadGrid builds an n×n grid of unit quads in the z=0 plane
func quadGrid(n int) ([]core.Vec3, []int) {
	var vertices []core.Vec3
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			vertices = append(vertices, core.NewVec3(float64(x), float64(y), 0))
		}
	}
	var faces []int
	row := n + 1
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := y*row + x
			faces = append(faces, i, i+1, i+row, i+1, i+row+1, i+row)
		}
	}
	return vertices, faces
}

func TestTriangleMesh_IntersectThroughTransform(t *testing.T) {
	vertices, faces := quadGrid(8)
	materials := make([]core.MaterialID, len(faces)/3)
	for i := range materials {
		materials[i] = core.MaterialID(i)
	}
	mesh, err := NewTriangleMesh(vertices, faces, 0, &TriangleMeshOptions{Materials: materials})
	if err != nil {
		t.Fatal(err)
	}
	if mesh.TriangleCount() != 128 {
		t.Fatalf("Expected 128 triangles, got %d", mesh.TriangleCount())
	}

	// Scale by 2 and push the grid to z=-10
	scale, _ := core.Scale(core.NewVec3(2, 2, 2))
	mesh.SetTransform(scale.Then(core.Translate(core.NewVec3(0, 0, -10))))

	ray := core.NewRay(core.NewVec3(2.4, 0.6, 0), core.NewVec3(0, 0, -1))
	hit := mustHit(t, mesh, ray)
	if math.Abs(hit.T-10) > 1e-9 || math.Abs(hit.Dist2-100) > 1e-6 {
		t.Errorf("Expected t=10 dist2=100, got t=%f dist2=%f", hit.T, hit.Dist2)
	}
	if !vecNear(hit.Pos, core.NewVec3(2.4, 0.6, -10), 1e-9) {
		t.Errorf("Expected hit at (2.4, 0.6, -10), got %v", hit.Pos)
	}
	// Local (1.2, 0.3) lies in the lower triangle of quad (1, 0)
	if hit.Material != 2 {
		t.Errorf("Expected material of triangle 2, got %d", hit.Material)
	}
	if n := normalAt(hit); !vecNear(n, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal +Z, got %v", n)
	}

	b := mesh.Bounds()
	if b.Min.Z > -10 || b.Max.Z < -10 || b.Max.X < 16 {
		t.Errorf("Expected bounds to cover the transformed grid, got %v", b)
	}
}

func TestTriangleMesh_ScaledNearHit(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(0, 1, 0),
	}
	faces := []int{0, 1, 2, 0, 2, 3}

	tests := []struct {
		name  string
		scale float64
		gap   float64
		hit   bool
	}{
		{"unit", 1, 0.05, true},
		{"large mesh, near origin", 100, 0.05, true},
		{"tiny mesh, gap below the hit bias", 0.001, 1e-4, false},
		{"tiny mesh, gap above the hit bias", 0.001, 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := NewTriangleMesh(vertices, faces, 0, nil)
			if err != nil {
				t.Fatal(err)
			}
			mesh.SetTransform(core.UniformScale(tt.scale))
			root := NewGroup("root", mesh)

			origin := core.NewVec3(0.25*tt.scale, 0.5*tt.scale, tt.gap)
			hit, ok := root.NearestIntersection(core.NewRay(origin, core.NewVec3(0, 0, -1)), math.Inf(1))
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if ok && math.Abs(math.Sqrt(hit.Dist2)-tt.gap) > 1e-9 {
				t.Errorf("Expected distance %g, got %g", tt.gap, math.Sqrt(hit.Dist2))
			}
		})
	}
}
