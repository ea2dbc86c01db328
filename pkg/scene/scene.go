package scene

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/log"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Cameras    []*Camera
	Root       *geometry.Group     // Finite objects, indexed by the root BVH
	Unbounded  []geometry.Geometry // Objects without bounds, such as planes
	Lights     []core.Light
	Ambient    core.Color
	Background core.Color

	materials []core.Material
}

// New creates an empty scene
func New(name string) *Scene {
	return &Scene{Name: name, Root: geometry.NewGroup("root")}
}

// AddMaterial stores m in the material table and returns its id
func (s *Scene) AddMaterial(m core.Material) core.MaterialID {
	s.materials = append(s.materials, m)
	return core.MaterialID(len(s.materials) - 1)
}

// Material returns the material with the given id. Primitives only carry
// ids handed out by AddMaterial, so a missing id is a programming error.
func (s *Scene) Material(id core.MaterialID) core.Material {
	if int(id) >= len(s.materials) {
		panic(fmt.Sprintf("scene %q: material %d not found (%d defined)", s.Name, id, len(s.materials)))
	}
	return s.materials[id]
}

// MaterialCount returns the size of the material table
func (s *Scene) MaterialCount() int {
	return len(s.materials)
}

// Add inserts finite objects under the root group
func (s *Scene) Add(objects ...geometry.FiniteGeometry) {
	s.Root.Add(objects...)
}

// AddUnbounded inserts objects that are tested outside the BVH
func (s *Scene) AddUnbounded(objects ...geometry.Geometry) {
	s.Unbounded = append(s.Unbounded, objects...)
}

// AddLight adds lights to the scene
func (s *Scene) AddLight(lights ...core.Light) {
	s.Lights = append(s.Lights, lights...)
}

// AddCamera appends a camera and returns its index
func (s *Scene) AddCamera(c *Camera) int {
	s.Cameras = append(s.Cameras, c)
	return len(s.Cameras) - 1
}

// Camera returns the camera at index
func (s *Scene) Camera(index int) (*Camera, error) {
	if len(s.Cameras) == 0 {
		return nil, ErrNoCamera
	}
	if index < 0 || index >= len(s.Cameras) {
		return nil, fmt.Errorf("%w: %d of %d", ErrCameraIndex, index, len(s.Cameras))
	}
	return s.Cameras[index], nil
}

// NearestIntersection returns the nearest hit with a squared distance in
// (core.Bias2, bound2) among the BVH and the unbounded objects
func (s *Scene) NearestIntersection(ray core.Ray, bound2 float64) (core.Hit, bool) {
	hit, _, ok := s.nearestObject(ray, bound2)
	return hit, ok
}

// nearestObject also returns the top-level object that produced the hit:
// a child of Root or an unbounded object. index is the position among the
// root's children, -1 for unbounded objects.
func (s *Scene) nearestObject(ray core.Ray, bound2 float64) (core.Hit, objectRef, bool) {
	best, index, found := s.Root.NearestChild(ray, bound2)
	ref := objectRef{index: -1}
	if found {
		bound2 = best.Dist2
		ref = objectRef{object: s.Root.Children()[index], index: index}
	}
	for _, obj := range s.Unbounded {
		hit, ok := obj.Intersect(ray)
		if !ok || hit.Dist2 <= core.Bias2 || hit.Dist2 >= bound2 {
			continue
		}
		best, bound2, found = hit, hit.Dist2, true
		ref = objectRef{object: obj, index: -1}
	}
	return best, ref, found
}

type objectRef struct {
	object geometry.Geometry
	index  int
}

// Refresh recomputes every composite's bounds and rebuilds the root BVH.
// Call it after moving objects.
func (s *Scene) Refresh() {
	s.Root.RecomputeAABB()
	s.Root.RecomputeBVH()
	logger.Debugf("scene %q refreshed: %d root objects", s.Name, s.Root.Len())
}

// PrimitiveCount returns the number of top-level objects
func (s *Scene) PrimitiveCount() int {
	return s.Root.Len() + len(s.Unbounded)
}
