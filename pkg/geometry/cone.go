package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// coneSlope is the local radius change per unit of height: the cone has
// radius 1 at y=-1 and its apex at y=1.
const coneSlope = 0.5

// Cone is the local cone with its apex at (0,1,0) and a unit-radius base
// at y=-1, placed by a transform. The base disk is optional.
type Cone struct {
	Capped   bool
	xfrm     *core.Transform
	bounds   core.AABB
	Material core.MaterialID
}

// NewCone creates a cone with its base disk centered at base and its apex
// at apex
func NewCone(base, apex core.Vec3, radius float64, capped bool, material core.MaterialID) (*Cone, error) {
	xfrm, err := axisTransform(base, apex, radius)
	if err != nil {
		return nil, err
	}
	return NewTransformedCone(xfrm, capped, material), nil
}

// NewTransformedCone creates the unit cone placed by xfrm
func NewTransformedCone(xfrm *core.Transform, capped bool, material core.MaterialID) *Cone {
	c := &Cone{Capped: capped, Material: material}
	c.SetTransform(xfrm)
	return c
}

// Transform returns the cone-to-world transform
func (c *Cone) Transform() *core.Transform {
	return c.xfrm
}

// SetTransform places the cone and recomputes its bounds
func (c *Cone) SetTransform(t *core.Transform) {
	c.xfrm = t
	c.bounds = t.Bounds(unitCylinderBox).Expand(boundsPadding)
}

func coneRadius2(y float64) float64 {
	r := coneSlope * (1 - y)
	return r * r
}

// Intersect tests the lateral surface and, when capped, the base disk
func (c *Cone) Intersect(ray core.Ray) (core.Hit, bool) {
	local := c.xfrm.InverseRay(ray)
	o, d := local.Origin, local.Direction

	k2 := coneSlope * coneSlope
	h := 1 - o.Y
	a := d.X*d.X + d.Z*d.Z - k2*d.Y*d.Y
	b := 2 * (o.X*d.X + o.Z*d.Z + k2*h*d.Y)
	cc := o.X*o.X + o.Z*o.Z - k2*h*h

	var roots [2]float64
	n := 0
	if math.Abs(a) < 1e-12 {
		// Parallel to a generator line: at most one crossing
		if b != 0 {
			roots[0] = -cc / b
			n = 1
		}
	} else if t0, t1, ok := solveQuadratic(a, b, cc); ok {
		roots = [2]float64{t0, t1}
		n = 2
	}

	best, face := inf, -1
	for _, t := range roots[:n] {
		if t < core.Bias || t >= best {
			continue
		}
		if y := o.Y + t*d.Y; y >= -1 && y <= 1 {
			best, face = t, faceSide
		}
	}
	if c.Capped {
		if t, ok := capHit(local, -1, 1); ok && t < best {
			best, face = t, faceBottom
		}
	}
	if face < 0 {
		return core.Hit{}, false
	}

	hit := newHit(ray, best, local.At(best), c, c.Material)
	hit.Face = face
	hit.Flip = !c.Capped && o.Y > -1 && o.Y < 1 && o.X*o.X+o.Z*o.Z < coneRadius2(o.Y)
	return hit, true
}

// Bounds returns the world bounding box
func (c *Cone) Bounds() core.AABB {
	return c.bounds
}

// Centroid returns the world-space midpoint of the axis
func (c *Cone) Centroid() core.Vec3 {
	return c.xfrm.Point(core.Vec3{})
}

// Normal returns the outward normal. The apex has no tangent plane and
// reports the axis direction.
func (c *Cone) Normal(h *core.Hit) core.Vec3 {
	var n core.Vec3
	switch {
	case h.Face == faceBottom:
		n = core.NewVec3(0, -1, 0)
	case h.Local.Y > 1-1e-9:
		n = core.NewVec3(0, 1, 0)
	default:
		n = core.NewVec3(h.Local.X, coneSlope*coneSlope*(1-h.Local.Y), h.Local.Z)
	}
	n = c.xfrm.Normal(n)
	if h.Flip {
		return n.Negate()
	}
	return n
}

// UV returns (angle/2π, height) on the side and a disk mapping on the base
func (c *Cone) UV(h *core.Hit) core.Point2 {
	if h.Face == faceBottom {
		return diskUV(h.Local, 1)
	}
	return axisUV(h.Local, 0.5*(h.Local.Y+1))
}

// ST equals UV for cones
func (c *Cone) ST(h *core.Hit) core.Point2 {
	return c.UV(h)
}
