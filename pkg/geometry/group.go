package geometry

import (
	"math"
	"slices"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Group composes finite primitives, including other groups, under one
// transform and BVH. Children live in the group's local frame.
type Group struct {
	Name     string
	children []FiniteGeometry
	bvh      *BVH
	xfrm     *core.Transform
	bounds   core.AABB
}

// NewGroup creates a group with an identity transform over children
func NewGroup(name string, children ...FiniteGeometry) *Group {
	g := &Group{Name: name, children: children, xfrm: core.Identity()}
	g.RecomputeBVH()
	return g
}

// Children returns the group members in group-local space
func (g *Group) Children() []FiniteGeometry {
	return g.children
}

// Len returns the number of direct children
func (g *Group) Len() int {
	return len(g.children)
}

// Add appends children and rebuilds the BVH
func (g *Group) Add(children ...FiniteGeometry) {
	g.children = append(g.children, children...)
	g.RecomputeBVH()
}

// Remove drops child from the group. It reports whether child was a member.
func (g *Group) Remove(child FiniteGeometry) bool {
	i := slices.Index(g.children, child)
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	g.RecomputeBVH()
	return true
}

// Transform returns the group-to-parent transform
func (g *Group) Transform() *core.Transform {
	return g.xfrm
}

// SetTransform places the group and recomputes its bounds
func (g *Group) SetTransform(t *core.Transform) {
	g.xfrm = t
	g.bounds = g.xfrm.Bounds(g.bvh.Bounds())
}

// RecomputeAABB refreshes bounds after children were moved, descending into
// nested groups and meshes first. The BVH is refit, not rebuilt.
func (g *Group) RecomputeAABB() {
	for _, child := range g.children {
		if r, ok := child.(interface{ RecomputeAABB() }); ok {
			r.RecomputeAABB()
		}
	}
	g.bvh.Refit()
	g.bounds = g.xfrm.Bounds(g.bvh.Bounds())
}

// RecomputeBVH rebuilds the index of this group and of every nested group
func (g *Group) RecomputeBVH() {
	for _, child := range g.children {
		if sub, ok := child.(*Group); ok {
			sub.RecomputeBVH()
		}
	}
	g.bvh = NewBVH(g.children)
	g.bounds = g.xfrm.Bounds(g.bvh.Bounds())
}

// BVHStats describes the group's own index
func (g *Group) BVHStats() BVHStats {
	return g.bvh.Stats()
}

// NearestIntersection searches the children for the nearest hit with a
// squared distance in (core.Bias2, bound2). Stop-at-group rays are not
// short-circuited at this level, only at nested groups.
func (g *Group) NearestIntersection(ray core.Ray, bound2 float64) (core.Hit, bool) {
	hit, _, ok := g.NearestChild(ray, bound2)
	return hit, ok
}

// NearestChild is NearestIntersection that also reports the index of the
// direct child that was hit
func (g *Group) NearestChild(ray core.Ray, bound2 float64) (core.Hit, int, bool) {
	minT, maxT, ok := tSpan(ray, bound2)
	if !ok {
		return core.Hit{}, -1, false
	}
	return g.nearest(ray, minT, maxT)
}

func (g *Group) nearest(ray core.Ray, minT, maxT float64) (core.Hit, int, bool) {
	local := g.xfrm.InverseRay(ray)
	hit, index, ok := g.bvh.nearest(local, minT, maxT)
	if !ok {
		return core.Hit{}, -1, false
	}
	return liftHit(ray, hit, g.xfrm), index, true
}

// Intersect implements Geometry. A ray with StopAtGroup set that reaches
// the group's bounds returns a hit at the group centroid instead of
// descending into the children.
func (g *Group) Intersect(ray core.Ray) (core.Hit, bool) {
	if ray.StopAtGroup {
		return g.centroidHit(ray)
	}
	return g.NearestIntersection(ray, inf)
}

func (g *Group) intersectSpan(ray core.Ray, minT, maxT float64) (core.Hit, bool) {
	if ray.StopAtGroup {
		return g.centroidHit(ray)
	}
	hit, _, ok := g.nearest(ray, minT, maxT)
	return hit, ok
}

func (g *Group) centroidHit(ray core.Ray) (core.Hit, bool) {
	if g.bvh.Len() == 0 {
		return core.Hit{}, false
	}
	if _, ok := g.bounds.Entry(ray, 0, inf); !ok {
		return core.Hit{}, false
	}

	center := g.Centroid()
	toOrigin := ray.Origin.Subtract(center)
	dist2 := toOrigin.LengthSquared()
	dirLen2 := ray.Direction.LengthSquared()
	if dirLen2 == 0 {
		return core.Hit{}, false
	}
	return core.Hit{
		T:       math.Sqrt(dist2 / dirLen2),
		Dist2:   dist2,
		Pos:     center,
		Local:   toOrigin,
		Surface: g,
	}, true
}

// Bounds returns the bounds in the parent frame
func (g *Group) Bounds() core.AABB {
	return g.bounds
}

// Centroid returns the transformed center of the children's bounds
func (g *Group) Centroid() core.Vec3 {
	if g.bvh.Len() == 0 {
		return g.xfrm.Point(core.Vec3{})
	}
	return g.xfrm.Point(g.bvh.Bounds().Center())
}

// Normal points from a synthetic group hit back toward the ray origin
func (g *Group) Normal(h *core.Hit) core.Vec3 {
	return h.Local.Normalize()
}

// UV is constant for group hits
func (g *Group) UV(h *core.Hit) core.Point2 {
	return core.Point2{}
}

// ST is constant for group hits
func (g *Group) ST(h *core.Hit) core.Point2 {
	return core.Point2{}
}
