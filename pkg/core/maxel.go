package core

// Hit is the raw result of a ray-primitive intersection. Only the fields
// needed to pick the nearest hit are filled eagerly; the primitive derives
// normals and parametrizations from Local, Bary and Face when shading.
type Hit struct {
	T     float64 // parametric distance along the tested ray
	Dist2 float64 // squared world distance from the ray origin
	Pos   Vec3    // world-space hit point

	Local Vec3   // hit point in the primitive's own frame
	Bary  Point2 // barycentric coordinates for triangles
	Face  int    // sub-face index (box face, cylinder/cone cap)
	Flip  bool   // the normal must be flipped (ray started inside)

	Surface  Surface
	Material MaterialID
}

// Maxel is the shading context of a single hit. Normal, UV and ST are
// computed on first access and cached. A Maxel must not outlive the
// RayTrace call that produced it.
type Maxel struct {
	Pos      Vec3   // world position
	Dir      Vec3   // unit direction of the incoming ray
	Level    uint32 // recursion depth of the incoming ray
	Material MaterialID

	hit Hit

	normal           Vec3
	uv, st           Point2
	hasNormal, hasUV bool
	hasST            bool
}

// NewMaxel builds the shading context for hit, produced by ray
func NewMaxel(ray Ray, hit Hit) *Maxel {
	return &Maxel{
		Pos:      hit.Pos,
		Dir:      ray.Direction.Normalize(),
		Level:    ray.Depth,
		Material: hit.Material,
		hit:      hit,
	}
}

// Hit returns the intersection record
func (m *Maxel) Hit() Hit {
	return m.hit
}

// Surface returns the primitive that was hit
func (m *Maxel) Surface() Surface {
	return m.hit.Surface
}

// Normal returns the unit world-space surface normal
func (m *Maxel) Normal() Vec3 {
	if !m.hasNormal {
		m.normal = m.hit.Surface.Normal(&m.hit)
		m.hasNormal = true
	}
	return m.normal
}

// FacingNormal returns the normal oriented against the incoming direction
func (m *Maxel) FacingNormal() Vec3 {
	n := m.Normal()
	if n.Dot(m.Dir) > 0 {
		return n.Negate()
	}
	return n
}

// UV returns the texture parametrization
func (m *Maxel) UV() Point2 {
	if !m.hasUV {
		m.uv = m.hit.Surface.UV(&m.hit)
		m.hasUV = true
	}
	return m.uv
}

// ST returns the secondary parametrization
func (m *Maxel) ST() Point2 {
	if !m.hasST {
		m.st = m.hit.Surface.ST(&m.hit)
		m.hasST = true
	}
	return m.st
}

// ReflectedRay returns the mirror ray, one level deeper, nudged along its
// direction by bias
func (m *Maxel) ReflectedRay(bias float64) Ray {
	dir := m.Dir.Reflect(m.FacingNormal()).Normalize()
	return Ray{
		Origin:    m.Pos.Add(dir.Multiply(bias)),
		Direction: dir,
		Depth:     m.Level + 1,
	}
}

// RefractedRay returns the transmitted ray for a surface with index of
// refraction ior, one level deeper, nudged along its direction by bias.
// It returns false on total internal reflection.
func (m *Maxel) RefractedRay(ior, bias float64) (Ray, bool) {
	n := m.Normal()
	eta := 1 / ior
	if m.Dir.Dot(n) > 0 {
		eta = ior
	}

	dir, ok := m.Dir.Refract(n, eta)
	if !ok {
		return Ray{}, false
	}
	dir = dir.Normalize()
	return Ray{
		Origin:    m.Pos.Add(dir.Multiply(bias)),
		Direction: dir,
		Depth:     m.Level + 1,
	}, true
}

// ShadowRay returns the ray toward lixel's light, one level deeper, nudged
// along the facing normal by bias
func (m *Maxel) ShadowRay(lixel Lixel, bias float64) Ray {
	n := m.FacingNormal()
	if n.Dot(lixel.Dir) < 0 {
		n = n.Negate()
	}
	return Ray{
		Origin:    m.Pos.Add(n.Multiply(bias)),
		Direction: lixel.Dir,
		Depth:     m.Level + 1,
	}
}
