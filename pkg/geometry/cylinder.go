package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

const (
	faceSide = iota
	faceTop
	faceBottom
)

var unitCylinderBox = core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))

// Cylinder is the unit-radius cylinder around the local Y axis between
// y=-1 and y=1, placed by a transform. Uncapped cylinders are open tubes
// and are seen from both sides.
type Cylinder struct {
	Capped   bool
	xfrm     *core.Transform
	bounds   core.AABB
	Material core.MaterialID
}

// NewCylinder creates a cylinder between base and top with the given radius
func NewCylinder(base, top core.Vec3, radius float64, capped bool, material core.MaterialID) (*Cylinder, error) {
	xfrm, err := axisTransform(base, top, radius)
	if err != nil {
		return nil, err
	}
	return NewTransformedCylinder(xfrm, capped, material), nil
}

// NewTransformedCylinder creates the unit cylinder placed by xfrm
func NewTransformedCylinder(xfrm *core.Transform, capped bool, material core.MaterialID) *Cylinder {
	c := &Cylinder{Capped: capped, Material: material}
	c.SetTransform(xfrm)
	return c
}

// Transform returns the cylinder-to-world transform
func (c *Cylinder) Transform() *core.Transform {
	return c.xfrm
}

// SetTransform places the cylinder and recomputes its bounds
func (c *Cylinder) SetTransform(t *core.Transform) {
	c.xfrm = t
	c.bounds = t.Bounds(unitCylinderBox).Expand(boundsPadding)
}

// Intersect tests the side wall and, when capped, both end disks
func (c *Cylinder) Intersect(ray core.Ray) (core.Hit, bool) {
	local := c.xfrm.InverseRay(ray)
	o, d := local.Origin, local.Direction

	best, face := inf, -1
	a := d.X*d.X + d.Z*d.Z
	b := 2 * (o.X*d.X + o.Z*d.Z)
	cc := o.X*o.X + o.Z*o.Z - 1
	if t0, t1, ok := solveQuadratic(a, b, cc); ok {
		for _, t := range [2]float64{t0, t1} {
			if t < core.Bias || t >= best {
				continue
			}
			if y := o.Y + t*d.Y; y >= -1 && y <= 1 {
				best, face = t, faceSide
			}
		}
	}
	if c.Capped {
		if t, ok := capHit(local, 1, 1); ok && t < best {
			best, face = t, faceTop
		}
		if t, ok := capHit(local, -1, 1); ok && t < best {
			best, face = t, faceBottom
		}
	}
	if face < 0 {
		return core.Hit{}, false
	}

	hit := newHit(ray, best, local.At(best), c, c.Material)
	hit.Face = face
	hit.Flip = !c.Capped && o.X*o.X+o.Z*o.Z < 1 && o.Y > -1 && o.Y < 1
	return hit, true
}

// capHit intersects the disk of the given radius in the plane y=height
func capHit(ray core.Ray, height, radius float64) (float64, bool) {
	if math.Abs(ray.Direction.Y) < 1e-12 {
		return 0, false
	}
	t := (height - ray.Origin.Y) / ray.Direction.Y
	if t < core.Bias {
		return 0, false
	}
	p := ray.At(t)
	if p.X*p.X+p.Z*p.Z > radius*radius {
		return 0, false
	}
	return t, true
}

// Bounds returns the world bounding box
func (c *Cylinder) Bounds() core.AABB {
	return c.bounds
}

// Centroid returns the world-space center of the axis
func (c *Cylinder) Centroid() core.Vec3 {
	return c.xfrm.Point(core.Vec3{})
}

// Normal returns the outward normal, or the inward one for the inside of an
// open tube
func (c *Cylinder) Normal(h *core.Hit) core.Vec3 {
	var n core.Vec3
	switch h.Face {
	case faceTop:
		n = core.NewVec3(0, 1, 0)
	case faceBottom:
		n = core.NewVec3(0, -1, 0)
	default:
		n = core.NewVec3(h.Local.X, 0, h.Local.Z)
	}
	n = c.xfrm.Normal(n)
	if h.Flip {
		return n.Negate()
	}
	return n
}

// UV returns (angle/2π, height) on the wall and a disk mapping on the caps
func (c *Cylinder) UV(h *core.Hit) core.Point2 {
	if h.Face != faceSide {
		return diskUV(h.Local, 1)
	}
	return axisUV(h.Local, 0.5*(h.Local.Y+1))
}

// ST equals UV for cylinders
func (c *Cylinder) ST(h *core.Hit) core.Point2 {
	return c.UV(h)
}

// axisTransform maps the local [-1,1] Y axis onto the segment base-top and
// the unit radius onto radius.
func axisTransform(base, top core.Vec3, radius float64) (*core.Transform, error) {
	axis := top.Subtract(base)
	height := axis.Length()
	scale, err := core.Scale(core.NewVec3(radius, height/2, radius))
	if err != nil {
		return nil, err
	}

	// Rotate +Y onto the axis direction
	dir := axis.Multiply(1 / height)
	rotation := core.Identity()
	up := core.NewVec3(0, 1, 0)
	cos := up.Dot(dir)
	switch {
	case cos < -1+1e-12:
		rotation = core.RotateX(math.Pi)
	case cos < 1-1e-12:
		pitch := math.Acos(dir.Y)
		yaw := math.Atan2(dir.X, dir.Z)
		rotation = core.RotateX(pitch).Then(core.RotateY(yaw))
	}

	center := base.Add(axis.Multiply(0.5))
	return scale.Then(rotation).Then(core.Translate(center)), nil
}
