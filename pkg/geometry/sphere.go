package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Sphere is a sphere given either by center and radius or as the unit
// sphere placed by an arbitrary transform.
type Sphere struct {
	center   core.Vec3
	radius   float64
	analytic bool // center/radius describe the placement exactly

	xfrm     *core.Transform
	bounds   core.AABB
	Material core.MaterialID
}

// NewSphere creates a sphere from a center and radius
func NewSphere(center core.Vec3, radius float64, material core.MaterialID) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %f", radius)
	}
	s := &Sphere{Material: material}
	s.place(center, radius)
	return s, nil
}

// NewTransformedSphere creates the unit sphere placed by xfrm
func NewTransformedSphere(xfrm *core.Transform, material core.MaterialID) *Sphere {
	s := &Sphere{Material: material}
	s.SetTransform(xfrm)
	return s
}

func (s *Sphere) place(center core.Vec3, radius float64) {
	s.center = center
	s.radius = radius
	s.analytic = true
	s.xfrm = core.UniformScale(radius).Then(core.Translate(center))
	r := core.NewVec3(radius, radius, radius)
	s.bounds = core.NewAABB(center.Subtract(r), center.Add(r)).Expand(boundsPadding)
}

// Transform returns the unit-sphere-to-world transform
func (s *Sphere) Transform() *core.Transform {
	return s.xfrm
}

// SetTransform places the unit sphere with t and recomputes the bounds
func (s *Sphere) SetTransform(t *core.Transform) {
	s.xfrm = t
	s.analytic = false
	s.center = t.Point(core.Vec3{})
	s.bounds = t.Bounds(core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))).Expand(boundsPadding)
}

// Intersect solves the ray-sphere quadratic, in world space when possible
// and in unit-sphere space otherwise
func (s *Sphere) Intersect(ray core.Ray) (core.Hit, bool) {
	if s.analytic {
		t, ok := ray.IntersectSphere(s.center, s.radius)
		if !ok {
			return core.Hit{}, false
		}
		local := ray.At(t).Subtract(s.center).Multiply(1 / s.radius)
		return newHit(ray, t, local, s, s.Material), true
	}

	local := s.xfrm.InverseRay(ray)
	t, ok := local.IntersectSphere(core.Vec3{}, 1)
	if !ok {
		return core.Hit{}, false
	}
	return newHit(ray, t, local.At(t), s, s.Material), true
}

// Bounds returns the world bounding box
func (s *Sphere) Bounds() core.AABB {
	return s.bounds
}

// Centroid returns the world center
func (s *Sphere) Centroid() core.Vec3 {
	return s.center
}

// Normal returns the outward normal
func (s *Sphere) Normal(h *core.Hit) core.Vec3 {
	if s.analytic {
		return h.Local.Normalize()
	}
	return s.xfrm.Normal(h.Local)
}

// UV returns longitude and latitude mapped to [0,1]
func (s *Sphere) UV(h *core.Hit) core.Point2 {
	p := h.Local.Normalize()
	u := math.Atan2(p.X, p.Z)/(2*math.Pi) + 0.5
	v := math.Asin(math.Max(-1, math.Min(1, p.Y)))/math.Pi + 0.5
	return core.NewPoint2(u, v)
}

// ST equals UV for spheres
func (s *Sphere) ST(h *core.Hit) core.Point2 {
	return s.UV(h)
}
