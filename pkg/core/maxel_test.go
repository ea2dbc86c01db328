package core

import (
	"math"
	"testing"
)

// countingSurface is a flat surface facing +Z that records how often its
// shading attributes are derived
type countingSurface struct {
	normalCalls, uvCalls, stCalls int
}

func (s *countingSurface) Normal(h *Hit) Vec3 {
	s.normalCalls++
	return NewVec3(0, 0, 1)
}

func (s *countingSurface) UV(h *Hit) Point2 {
	s.uvCalls++
	return NewPoint2(h.Local.X, h.Local.Y)
}

func (s *countingSurface) ST(h *Hit) Point2 {
	s.stCalls++
	return h.Bary
}

func newTestMaxel(surface Surface, dir Vec3) *Maxel {
	ray := Ray{Origin: NewVec3(0, 0, 5), Direction: dir, Depth: 2}
	return NewMaxel(ray, Hit{
		T:        5,
		Dist2:    25,
		Pos:      NewVec3(0, 0, 0),
		Local:    NewVec3(0.25, 0.75, 0),
		Bary:     NewPoint2(0.1, 0.2),
		Surface:  surface,
		Material: 3,
	})
}

func TestMaxel_LazyAttributesAreCached(t *testing.T) {
	surface := &countingSurface{}
	m := newTestMaxel(surface, NewVec3(0, 0, -1))

	if surface.normalCalls+surface.uvCalls+surface.stCalls != 0 {
		t.Fatal("Expected no attribute to be computed at construction")
	}

	for i := 0; i < 3; i++ {
		m.Normal()
		m.UV()
		m.ST()
	}

	if surface.normalCalls != 1 || surface.uvCalls != 1 || surface.stCalls != 1 {
		t.Errorf("Expected each attribute computed once, got normal=%d uv=%d st=%d",
			surface.normalCalls, surface.uvCalls, surface.stCalls)
	}
	if m.UV() != NewPoint2(0.25, 0.75) || m.ST() != NewPoint2(0.1, 0.2) {
		t.Errorf("Unexpected parametrization uv=%v st=%v", m.UV(), m.ST())
	}
	if m.Level != 2 || m.Material != 3 {
		t.Errorf("Expected level 2 and material 3, got %d and %d", m.Level, m.Material)
	}
}

func TestMaxel_SecondaryRays(t *testing.T) {
	m := newTestMaxel(&countingSurface{}, NewVec3(1, 0, -1).Normalize())

	reflected := m.ReflectedRay(Bias3)
	if reflected.Depth != 3 {
		t.Errorf("Expected reflected depth 3, got %d", reflected.Depth)
	}
	if !vecApproxEqual(reflected.Direction, NewVec3(1, 0, 1).Normalize(), 1e-9) {
		t.Errorf("Unexpected reflection %v", reflected.Direction)
	}
	if math.Abs(reflected.Origin.Subtract(m.Pos).Length()-Bias3) > 1e-12 {
		t.Errorf("Expected reflected origin offset by Bias3, got %v", reflected.Origin)
	}

	refracted, ok := m.RefractedRay(1.5, Bias4)
	if !ok {
		t.Fatal("Expected refraction into glass")
	}
	if refracted.Direction.Z >= 0 {
		t.Errorf("Expected refracted ray to continue into the surface, got %v", refracted.Direction)
	}
	if refracted.Direction.X >= reflected.Direction.X {
		t.Errorf("Expected refracted ray to bend toward the normal, got %v", refracted.Direction)
	}

	lixel := Lixel{Dir: NewVec3(0, 0, 1), Color: White, Dist2: 100}
	shadow := m.ShadowRay(lixel, Bias3)
	if shadow.Depth != 3 || shadow.Origin.Z <= 0 {
		t.Errorf("Expected shadow ray lifted off the surface, got %+v", shadow)
	}
}

func TestMaxel_FacingNormal(t *testing.T) {
	back := newTestMaxel(&countingSurface{}, NewVec3(0, 0, 1))
	if n := back.FacingNormal(); n != NewVec3(0, 0, -1) {
		t.Errorf("Expected flipped normal for back-face hit, got %v", n)
	}
}
