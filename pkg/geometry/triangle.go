package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Triangle is a single triangle with optional per-vertex normals and
// texture coordinates. Vertices live in the frame of the owning mesh, or
// in world space for free-standing triangles.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.MaterialID

	edge1, edge2 core.Vec3
	normal       core.Vec3
	bounds       core.AABB

	normals   *[3]core.Vec3
	texCoords [3]core.Point2
}

// NewTriangle creates a flat-shaded triangle. The face normal follows the
// counter-clockwise winding v0, v1, v2.
func NewTriangle(v0, v1, v2 core.Vec3, material core.MaterialID) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		edge1:    v1.Subtract(v0),
		edge2:    v2.Subtract(v0),
		texCoords: [3]core.Point2{
			core.NewPoint2(0, 0),
			core.NewPoint2(1, 0),
			core.NewPoint2(0, 1),
		},
	}
	t.normal = t.edge1.Cross(t.edge2).Normalize()
	t.bounds = core.NewAABBFromPoints(v0, v1, v2).Expand(boundsPadding)
	return t
}

// SetVertexNormals enables smooth shading with one normal per vertex
func (t *Triangle) SetVertexNormals(n0, n1, n2 core.Vec3) {
	t.normals = &[3]core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
}

// SetTexCoords sets the per-vertex texture coordinates
func (t *Triangle) SetTexCoords(uv0, uv1, uv2 core.Point2) {
	t.texCoords = [3]core.Point2{uv0, uv1, uv2}
}

// Area returns the triangle area; zero for degenerate triangles
func (t *Triangle) Area() float64 {
	return 0.5 * t.edge1.Cross(t.edge2).Length()
}

// Intersect runs the Möller-Trumbore test
func (t *Triangle) Intersect(ray core.Ray) (core.Hit, bool) {
	dist, bary, ok := ray.IntersectTriangle(t.V0, t.edge1, t.edge2)
	if !ok {
		return core.Hit{}, false
	}
	hit := newHit(ray, dist, core.Vec3{}, t, t.Material)
	hit.Local = hit.Pos
	hit.Bary = bary
	return hit, true
}

// Bounds returns the bounding box of the vertices
func (t *Triangle) Bounds() core.AABB {
	return t.bounds
}

// Centroid returns the vertex average
func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
}

// FaceNormal returns the flat normal
func (t *Triangle) FaceNormal() core.Vec3 {
	return t.normal
}

// Normal interpolates the vertex normals when set, otherwise returns the
// face normal
func (t *Triangle) Normal(h *core.Hit) core.Vec3 {
	if t.normals == nil {
		return t.normal
	}
	u, v := h.Bary.X, h.Bary.Y
	n := t.normals[0].Multiply(1 - u - v).
		Add(t.normals[1].Multiply(u)).
		Add(t.normals[2].Multiply(v)).
		Normalize()
	if n.LengthSquared() == 0 {
		return t.normal
	}
	return n
}

// UV interpolates the vertex texture coordinates
func (t *Triangle) UV(h *core.Hit) core.Point2 {
	u, v := h.Bary.X, h.Bary.Y
	return t.texCoords[0].Multiply(1 - u - v).
		Add(t.texCoords[1].Multiply(u)).
		Add(t.texCoords[2].Multiply(v))
}

// ST returns the barycentric coordinates of the hit
func (t *Triangle) ST(h *core.Hit) core.Point2 {
	return h.Bary
}
