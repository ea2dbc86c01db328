package scene

import (
	"math"
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// SharedScene guards a scene for concurrent rendering. Renders read under
// the shared lock; edits take the exclusive lock and refresh the
// acceleration structures before releasing it.
type SharedScene struct {
	mu    sync.RWMutex
	scene *Scene
}

// NewShared wraps s
func NewShared(s *Scene) *SharedScene {
	return &SharedScene{scene: s}
}

// Read runs fn with shared access. fn must not modify the scene.
func (ss *SharedScene) Read(fn func(s *Scene)) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	fn(ss.scene)
}

// Edit runs fn with exclusive access, then recomputes bounds and the root
// BVH
func (ss *SharedScene) Edit(fn func(s *Scene)) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	fn(ss.scene)
	ss.scene.Refresh()
}

// PickResult identifies the object under a picking ray
type PickResult struct {
	Surface core.Surface      // the primitive hit; a Group for nested groups
	Object  geometry.Geometry // the top-level object containing Surface
	Index   int               // Object's index among the root's children, -1 for unbounded objects
	Pos     core.Vec3         // world position; the centroid for groups
	Dist    float64           // distance from the ray origin
}

// Pick casts ray with the stop-at-group flag so nested groups are selected
// as a whole
func (ss *SharedScene) Pick(ray core.Ray) (PickResult, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	ray.StopAtGroup = true
	hit, ref, ok := ss.scene.nearestObject(ray, math.Inf(1))
	if !ok {
		return PickResult{}, false
	}
	return PickResult{
		Surface: geometry.Unwrap(hit.Surface),
		Object:  ref.object,
		Index:   ref.index,
		Pos:     hit.Pos,
		Dist:    math.Sqrt(hit.Dist2),
	}, true
}
