package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Geometry is anything a ray can hit. Intersect returns the nearest hit
// whose parametric distance exceeds core.Bias.
type Geometry interface {
	Intersect(ray core.Ray) (core.Hit, bool)
}

// FiniteGeometry is bounded geometry that can be indexed by a BVH.
type FiniteGeometry interface {
	Geometry
	Bounds() core.AABB
	Centroid() core.Vec3
}

// Transformable is implemented by geometry placed through a local-to-world
// transform. SetTransform replaces the whole placement and recomputes the
// object's own bounds; enclosing composites must be refreshed separately.
type Transformable interface {
	Transform() *core.Transform
	SetTransform(t *core.Transform)
}

// boundsPadding keeps flat and axis-aligned primitives from being culled by
// rounding error in the slab test.
const boundsPadding = core.Bias

var inf = math.Inf(1)

// newHit fills the fields shared by every primitive. ray is the world ray,
// local the hit point in the primitive's frame.
func newHit(ray core.Ray, t float64, local core.Vec3, surface core.Surface, mat core.MaterialID) core.Hit {
	return core.Hit{
		T:        t,
		Dist2:    t * t * ray.Direction.LengthSquared(),
		Pos:      ray.At(t),
		Local:    local,
		Surface:  surface,
		Material: mat,
	}
}

// spanGeometry is implemented by composites that search their own BVH.
// The window (minT, maxT) is given in the parametric distance of ray, which
// is the same in every frame the ray is transformed into.
type spanGeometry interface {
	intersectSpan(ray core.Ray, minT, maxT float64) (core.Hit, bool)
}

// intersectSpan passes the search window down to composites. Other
// geometry reports its nearest hit and is filtered by the caller.
func intersectSpan(g Geometry, ray core.Ray, minT, maxT float64) (core.Hit, bool) {
	if sg, ok := g.(spanGeometry); ok {
		return sg.intersectSpan(ray, minT, maxT)
	}
	return g.Intersect(ray)
}

// tSpan maps the squared distance window (core.Bias2, bound2), measured in
// the frame of ray, onto parametric bounds along ray
func tSpan(ray core.Ray, bound2 float64) (float64, float64, bool) {
	dirLen2 := ray.Direction.LengthSquared()
	if dirLen2 == 0 {
		return 0, 0, false
	}
	return math.Sqrt(core.Bias2 / dirLen2), math.Sqrt(bound2 / dirLen2), true
}

// transformedSurface lifts normals produced in a composite's local frame
// into the parent frame.
type transformedSurface struct {
	inner core.Surface
	xfrm  *core.Transform
}

func (s transformedSurface) Normal(h *core.Hit) core.Vec3 {
	return s.xfrm.Normal(s.inner.Normal(h))
}

func (s transformedSurface) UV(h *core.Hit) core.Point2 {
	return s.inner.UV(h)
}

func (s transformedSurface) ST(h *core.Hit) core.Point2 {
	return s.inner.ST(h)
}

// liftHit converts a hit found with the local ray into the frame of the
// outer ray. The parametric distance is shared between both rays.
func liftHit(ray core.Ray, hit core.Hit, xfrm *core.Transform) core.Hit {
	hit.Pos = xfrm.Point(hit.Pos)
	hit.Dist2 = hit.Pos.Subtract(ray.Origin).LengthSquared()
	hit.Surface = transformedSurface{inner: hit.Surface, xfrm: xfrm}
	return hit
}

// solveQuadratic returns the roots of a*t^2 + b*t + c = 0 in ascending
// order. Degenerate and complex cases report false.
func solveQuadratic(a, b, c float64) (float64, float64, bool) {
	if math.Abs(a) < 1e-12 {
		return 0, 0, false
	}
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Numerically stable form
	var q float64
	if b < 0 {
		q = -0.5 * (b - sqrtD)
	} else {
		q = -0.5 * (b + sqrtD)
	}
	t0 := q / a
	t1 := t0
	if q != 0 {
		t1 = c / q
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// axisUV maps a point around the local Y axis to (angle / 2π, height)
func axisUV(p core.Vec3, height float64) core.Point2 {
	u := math.Atan2(p.X, p.Z)/(2*math.Pi) + 0.5
	return core.NewPoint2(u, height)
}

// diskUV maps a point on a disk of the given radius in the local XZ plane
// to [0,1]^2
func diskUV(p core.Vec3, radius float64) core.Point2 {
	return core.NewPoint2(0.5+0.5*p.X/radius, 0.5+0.5*p.Z/radius)
}

// Unwrap returns the primitive behind a hit surface, removing the frame
// adapters added by meshes and groups.
func Unwrap(s core.Surface) core.Surface {
	for {
		ts, ok := s.(transformedSurface)
		if !ok {
			return s
		}
		s = ts.inner
	}
}
