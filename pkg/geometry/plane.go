package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Plane is an infinite plane through Point spanned by U and V. It has no
// bounds and is therefore tested outside of any BVH.
type Plane struct {
	// Placement before the transform is applied
	basePoint, baseU, baseV core.Vec3

	point, u, v, normal core.Vec3
	xfrm                *core.Transform
	Material            core.MaterialID
}

// NewPlane creates a plane through point spanned by u and v. The normal is
// u × v.
func NewPlane(point, u, v core.Vec3, material core.MaterialID) (*Plane, error) {
	if u.Cross(v).LengthSquared() == 0 {
		return nil, fmt.Errorf("plane spanning vectors %v and %v are parallel", u, v)
	}
	p := &Plane{basePoint: point, baseU: u, baseV: v, Material: material}
	p.SetTransform(core.Identity())
	return p, nil
}

// Transform returns the transform applied on top of the base placement
func (p *Plane) Transform() *core.Transform {
	return p.xfrm
}

// SetTransform moves the plane's base placement with t
func (p *Plane) SetTransform(t *core.Transform) {
	p.xfrm = t
	p.point = t.Point(p.basePoint)
	p.u = t.Vector(p.baseU)
	p.v = t.Vector(p.baseV)
	p.normal = p.u.Cross(p.v).Normalize()
}

// Intersect computes t = ((point - origin) · normal) / (direction · normal)
func (p *Plane) Intersect(ray core.Ray) (core.Hit, bool) {
	t, ok := ray.IntersectPlane(p.point, p.normal)
	if !ok {
		return core.Hit{}, false
	}
	pos := ray.At(t)
	return newHit(ray, t, pos.Subtract(p.point), p, p.Material), true
}

// Normal returns the plane normal
func (p *Plane) Normal(h *core.Hit) core.Vec3 {
	return p.normal
}

// UV returns the coordinates of the hit along U and V
func (p *Plane) UV(h *core.Hit) core.Point2 {
	return core.NewPoint2(h.Local.Dot(p.u)/p.u.LengthSquared(), h.Local.Dot(p.v)/p.v.LengthSquared())
}

// ST returns the fractional part of UV
func (p *Plane) ST(h *core.Hit) core.Point2 {
	uv := p.UV(h)
	return core.NewPoint2(uv.X-math.Floor(uv.X), uv.Y-math.Floor(uv.Y))
}
