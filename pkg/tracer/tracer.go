package tracer

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Stats counts the rays cast by a tracer
type Stats struct {
	Primary   uint64 // camera rays
	Secondary uint64 // reflected and refracted rays
	Shadow    uint64 // shadow ray segments
}

// Total returns the number of rays of every kind
func (s Stats) Total() uint64 {
	return s.Primary + s.Secondary + s.Shadow
}

// Tracer drives recursive shading over a scene. It implements core.Tracer
// and is safe for concurrent use as long as the scene is not modified.
type Tracer struct {
	scene  *scene.Scene
	config Config

	primary   atomic.Uint64
	secondary atomic.Uint64
	shadow    atomic.Uint64
}

// New creates a tracer over s
func New(s *scene.Scene, config Config) *Tracer {
	return &Tracer{scene: s, config: config}
}

// Config returns the tracer configuration
func (t *Tracer) Config() Config {
	return t.config
}

// RayTrace returns the color seen along ray. It returns false when the
// ray is at the recursion ceiling or hits nothing.
func (t *Tracer) RayTrace(ray core.Ray) (core.Color, bool) {
	if ray.Depth >= t.config.MaxDepth {
		return core.Color{}, false
	}
	if ray.Depth == 0 {
		t.primary.Add(1)
	} else {
		t.secondary.Add(1)
	}

	hit, ok := t.scene.NearestIntersection(ray, math.Inf(1))
	if !ok {
		return core.Color{}, false
	}
	m := core.NewMaxel(ray, hit)
	return t.scene.Material(hit.Material).Render(m, t), true
}

// RayShadow follows the path from m toward the light described by lixel.
// Blockers whose material does not occlude are skipped; the others filter
// the carried light color in turn. It returns false when nothing on the
// path affects the light, or when m is at the recursion ceiling.
func (t *Tracer) RayShadow(m *core.Maxel, lixel core.Lixel) (core.Color, bool) {
	if m.Level >= t.config.MaxDepth {
		return core.Color{}, false
	}

	bias := t.config.Biases.Shadow
	ray := m.ShadowRay(lixel, bias)
	remaining := math.Sqrt(lixel.Dist2)
	carried := lixel
	blocked := false

	for i := 0; i < maxShadowBlockers; i++ {
		t.shadow.Add(1)
		hit, ok := t.scene.NearestIntersection(ray, remaining*remaining)
		if !ok {
			return carried.Color, blocked
		}

		blocker := core.NewMaxel(ray, hit)
		if color, occludes := t.scene.Material(hit.Material).Shadow(blocker, carried); occludes {
			blocked = true
			carried.Color = color
			if color.IsBlack() {
				return core.Black, true
			}
		}

		// Continue from just past the blocker
		remaining -= math.Sqrt(hit.Dist2) + bias
		if remaining <= 0 {
			return carried.Color, blocked
		}
		ray.Origin = hit.Pos.Add(ray.Direction.Multiply(bias))
		carried.Dist2 = remaining * remaining
	}
	return core.Black, true
}

// PixelColor averages sx × sy sub-pixel samples of the pixel (x, y). Each
// sample is jittered within its cell by rng, or taken at the cell center
// when rng is nil. Samples that hit nothing take the background color.
func (t *Tracer) PixelColor(camera *scene.Camera, x, y, sx, sy int, rng *rand.Rand) core.Color {
	sx, sy = max(sx, 1), max(sy, 1)

	sum := core.Black
	for j := 0; j < sy; j++ {
		for i := 0; i < sx; i++ {
			dx, dy := 0.5, 0.5
			if rng != nil {
				dx, dy = rng.Float64(), rng.Float64()
			}
			px := float64(x) + (float64(i)+dx)/float64(sx)
			py := float64(y) + (float64(j)+dy)/float64(sy)

			color, ok := t.RayTrace(camera.Ray(px, py))
			if !ok {
				color = t.scene.Background
			}
			sum = sum.Add(color)
		}
	}
	return sum.Divide(float64(sx * sy))
}

// Lights returns the scene lights
func (t *Tracer) Lights() []core.Light {
	return t.scene.Lights
}

// Ambient returns the scene ambient color
func (t *Tracer) Ambient() core.Color {
	return t.scene.Ambient
}

// Background returns the scene background color
func (t *Tracer) Background() core.Color {
	return t.scene.Background
}

// Biases returns the configured secondary ray offsets
func (t *Tracer) Biases() core.Biases {
	return t.config.Biases
}

// Stats returns the rays cast so far
func (t *Tracer) Stats() Stats {
	return Stats{
		Primary:   t.primary.Load(),
		Secondary: t.secondary.Load(),
		Shadow:    t.shadow.Load(),
	}
}

var _ core.Tracer = (*Tracer)(nil)
