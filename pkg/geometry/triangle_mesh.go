package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// TriangleMesh is a list of triangles indexed by their own BVH and placed
// in the scene by a transform.
type TriangleMesh struct {
	triangles []*Triangle
	bvh       *BVH
	xfrm      *core.Transform
	bounds    core.AABB
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals   []core.Vec3       // Optional per-vertex normals
	TexCoords []core.Point2     // Optional per-vertex texture coordinates
	Materials []core.MaterialID // Optional per-triangle materials
}

// NewTriangleMesh creates a mesh from vertices and face indices; every
// group of three indices forms a triangle. options may be nil.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.MaterialID, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	numTriangles := len(faces) / 3

	if options != nil {
		if options.Normals != nil && len(options.Normals) != len(vertices) {
			return nil, fmt.Errorf("expected %d vertex normals, got %d", len(vertices), len(options.Normals))
		}
		if options.TexCoords != nil && len(options.TexCoords) != len(vertices) {
			return nil, fmt.Errorf("expected %d texture coordinates, got %d", len(vertices), len(options.TexCoords))
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			return nil, fmt.Errorf("expected %d triangle materials, got %d", numTriangles, len(options.Materials))
		}
	}

	triangles := make([]*Triangle, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d out of %d", i, idx, len(vertices))
			}
		}

		triangleMaterial := material
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		tri := NewTriangle(vertices[i0], vertices[i1], vertices[i2], triangleMaterial)
		if options != nil && options.Normals != nil {
			tri.SetVertexNormals(options.Normals[i0], options.Normals[i1], options.Normals[i2])
		}
		if options != nil && options.TexCoords != nil {
			tri.SetTexCoords(options.TexCoords[i0], options.TexCoords[i1], options.TexCoords[i2])
		}
		triangles[i] = tri
	}

	return NewTriangleMeshFromTriangles(triangles), nil
}

// NewTriangleMeshFromTriangles wraps already built triangles
func NewTriangleMeshFromTriangles(triangles []*Triangle) *TriangleMesh {
	tm := &TriangleMesh{triangles: triangles, xfrm: core.Identity()}
	tm.RecomputeBVH()
	return tm
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Triangles returns the triangles in mesh-local space
func (tm *TriangleMesh) Triangles() []*Triangle {
	return tm.triangles
}

// Transform returns the mesh-to-world transform
func (tm *TriangleMesh) Transform() *core.Transform {
	return tm.xfrm
}

// SetTransform places the mesh and recomputes its bounds
func (tm *TriangleMesh) SetTransform(t *core.Transform) {
	tm.xfrm = t
	tm.RecomputeAABB()
}

// RecomputeAABB refreshes the world bounds from the BVH root
func (tm *TriangleMesh) RecomputeAABB() {
	tm.bounds = tm.xfrm.Bounds(tm.bvh.Bounds())
}

// RecomputeBVH rebuilds the triangle index and the bounds
func (tm *TriangleMesh) RecomputeBVH() {
	prims := make([]FiniteGeometry, len(tm.triangles))
	for i, tri := range tm.triangles {
		prims[i] = tri
	}
	tm.bvh = NewBVH(prims)
	tm.RecomputeAABB()
}

// Intersect finds the nearest triangle through the mesh BVH in mesh space
func (tm *TriangleMesh) Intersect(ray core.Ray) (core.Hit, bool) {
	minT, maxT, ok := tSpan(ray, inf)
	if !ok {
		return core.Hit{}, false
	}
	return tm.intersectSpan(ray, minT, maxT)
}

func (tm *TriangleMesh) intersectSpan(ray core.Ray, minT, maxT float64) (core.Hit, bool) {
	local := tm.xfrm.InverseRay(ray)
	hit, _, ok := tm.bvh.nearest(local, minT, maxT)
	if !ok {
		return core.Hit{}, false
	}
	return liftHit(ray, hit, tm.xfrm), true
}

// Bounds returns the world bounding box
func (tm *TriangleMesh) Bounds() core.AABB {
	return tm.bounds
}

// Centroid returns the center of the world bounds
func (tm *TriangleMesh) Centroid() core.Vec3 {
	return tm.bounds.Center()
}
