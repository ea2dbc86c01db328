package core

import "math"

// Ray represents a ray with an origin, a direction and the recursion depth
// at which it was spawned. Camera rays have depth 0.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Depth     uint32

	// StopAtGroup makes nested groups report a hit at their centroid instead
	// of descending into their children. Used for picking.
	StopAtGroup bool
}

// NewRay creates a camera-level ray with a normalized direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// NewRayAtDepth creates a ray with a normalized direction at the given depth
func NewRayAtDepth(origin, direction Vec3, depth uint32) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Depth: depth}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IntersectSphere returns the nearest parametric distance above Bias at
// which the ray meets the sphere.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Subtract(center)

	a := r.Direction.LengthSquared()
	if a == 0 {
		return 0, false
	}
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	t := (-halfB - sqrtD) / a
	if t < Bias {
		t = (-halfB + sqrtD) / a
		if t < Bias {
			return 0, false
		}
	}
	return t, true
}

// IntersectPlane returns the parametric distance at which the ray meets the
// plane through point with the given normal. Rays parallel to the plane and
// hits below Bias are rejected.
func (r Ray) IntersectPlane(point, normal Vec3) (float64, bool) {
	denominator := r.Direction.Dot(normal)
	if math.Abs(denominator) < Bias {
		return 0, false
	}

	t := point.Subtract(r.Origin).Dot(normal) / denominator
	if t < Bias {
		return 0, false
	}
	return t, true
}

// IntersectTriangle runs the Möller-Trumbore test against the triangle
// (v0, v0+edge1, v0+edge2). It returns the parametric distance and the
// barycentric coordinates (u, v) of the hit relative to v1 and v2.
func (r Ray) IntersectTriangle(v0, edge1, edge2 Vec3) (t float64, bary Point2, ok bool) {
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < Bias {
		return 0, Point2{}, false
	}

	f := 1.0 / a
	s := r.Origin.Subtract(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, Point2{}, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, Point2{}, false
	}

	t = f * edge2.Dot(q)
	if t < Bias {
		return 0, Point2{}, false
	}
	return t, Point2{u, v}, true
}
