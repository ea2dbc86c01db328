package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

var unitBox = core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))

// Cube is the box [-1,1]^3 placed by a transform. Non-uniform scales turn
// it into an arbitrary oriented box.
type Cube struct {
	xfrm     *core.Transform
	bounds   core.AABB
	Material core.MaterialID
}

// NewCube creates an axis-aligned box from its center and half extents
func NewCube(center, halfSize core.Vec3, material core.MaterialID) (*Cube, error) {
	scale, err := core.Scale(halfSize)
	if err != nil {
		return nil, err
	}
	return NewTransformedCube(scale.Then(core.Translate(center)), material), nil
}

// NewTransformedCube creates the unit cube placed by xfrm
func NewTransformedCube(xfrm *core.Transform, material core.MaterialID) *Cube {
	c := &Cube{Material: material}
	c.SetTransform(xfrm)
	return c
}

// Transform returns the cube-to-world transform
func (c *Cube) Transform() *core.Transform {
	return c.xfrm
}

// SetTransform places the cube and recomputes its bounds
func (c *Cube) SetTransform(t *core.Transform) {
	c.xfrm = t
	c.bounds = t.Bounds(unitBox).Expand(boundsPadding)
}

// Intersect runs the slab test in cube space. Rays starting inside the cube
// hit the face they leave through.
func (c *Cube) Intersect(ray core.Ray) (core.Hit, bool) {
	local := c.xfrm.InverseRay(ray)

	tNear, tFar := math.Inf(-1), math.Inf(1)
	nearAxis, farAxis := -1, -1
	for axis := 0; axis < 3; axis++ {
		origin := local.Origin.Axis(axis)
		dir := local.Direction.Axis(axis)
		if math.Abs(dir) < 1e-12 {
			if origin < -1 || origin > 1 {
				return core.Hit{}, false
			}
			continue
		}
		t1 := (-1 - origin) / dir
		t2 := (1 - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear, nearAxis = t1, axis
		}
		if t2 < tFar {
			tFar, farAxis = t2, axis
		}
		if tNear > tFar {
			return core.Hit{}, false
		}
	}

	t, axis := tNear, nearAxis
	if t < core.Bias {
		t, axis = tFar, farAxis
		if t < core.Bias {
			return core.Hit{}, false
		}
	}

	hit := newHit(ray, t, local.At(t), c, c.Material)
	hit.Face = cubeFace(axis, hit.Local)
	return hit, true
}

// cubeFace numbers the faces +X, -X, +Y, -Y, +Z, -Z as 0..5
func cubeFace(axis int, p core.Vec3) int {
	face := axis * 2
	if p.Axis(axis) < 0 {
		face++
	}
	return face
}

// Bounds returns the world bounding box
func (c *Cube) Bounds() core.AABB {
	return c.bounds
}

// Centroid returns the world-space center
func (c *Cube) Centroid() core.Vec3 {
	return c.xfrm.Point(core.Vec3{})
}

// Normal returns the outward normal of the hit face
func (c *Cube) Normal(h *core.Hit) core.Vec3 {
	var n core.Vec3
	sign := 1.0
	if h.Face%2 == 1 {
		sign = -1
	}
	switch h.Face / 2 {
	case 0:
		n = core.NewVec3(sign, 0, 0)
	case 1:
		n = core.NewVec3(0, sign, 0)
	default:
		n = core.NewVec3(0, 0, sign)
	}
	return c.xfrm.Normal(n)
}

// UV maps the hit face to [0,1]^2
func (c *Cube) UV(h *core.Hit) core.Point2 {
	p := h.Local
	var a, b float64
	switch h.Face / 2 {
	case 0:
		a, b = p.Z, p.Y
	case 1:
		a, b = p.X, p.Z
	default:
		a, b = p.X, p.Y
	}
	return core.NewPoint2(0.5+0.5*a, 0.5+0.5*b)
}

// ST identifies the hit face as face/6
func (c *Cube) ST(h *core.Hit) core.Point2 {
	return core.NewPoint2(float64(h.Face)/6, 0)
}
