package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

var unitSquare = core.NewAABB(core.NewVec3(-1, -1, 0), core.NewVec3(1, 1, 0))

// Square is the two-sided square [-1,1]^2 in the local XY plane, facing +Z,
// placed by a transform.
type Square struct {
	xfrm     *core.Transform
	bounds   core.AABB
	Material core.MaterialID
}

// NewSquare creates the unit square placed by xfrm
func NewSquare(xfrm *core.Transform, material core.MaterialID) *Square {
	s := &Square{Material: material}
	s.SetTransform(xfrm)
	return s
}

// Transform returns the square-to-world transform
func (s *Square) Transform() *core.Transform {
	return s.xfrm
}

// SetTransform places the square and recomputes its bounds
func (s *Square) SetTransform(t *core.Transform) {
	s.xfrm = t
	s.bounds = t.Bounds(unitSquare).Expand(boundsPadding)
}

// Intersect meets the local z=0 plane and checks the [-1,1]^2 extent
func (s *Square) Intersect(ray core.Ray) (core.Hit, bool) {
	local := s.xfrm.InverseRay(ray)
	if math.Abs(local.Direction.Z) < 1e-12 {
		return core.Hit{}, false
	}

	t := -local.Origin.Z / local.Direction.Z
	if t < core.Bias {
		return core.Hit{}, false
	}
	p := local.At(t)
	if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
		return core.Hit{}, false
	}
	return newHit(ray, t, p, s, s.Material), true
}

// Bounds returns the world bounding box
func (s *Square) Bounds() core.AABB {
	return s.bounds
}

// Centroid returns the world-space center
func (s *Square) Centroid() core.Vec3 {
	return s.xfrm.Point(core.Vec3{})
}

// Normal returns the +Z face normal in world space
func (s *Square) Normal(h *core.Hit) core.Vec3 {
	return s.xfrm.Normal(core.NewVec3(0, 0, 1))
}

// UV maps the square to [0,1]^2
func (s *Square) UV(h *core.Hit) core.Point2 {
	return core.NewPoint2(0.5+0.5*h.Local.X, 0.5+0.5*h.Local.Y)
}

// ST equals UV for squares
func (s *Square) ST(h *core.Hit) core.Point2 {
	return s.UV(h)
}
