package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularTransform is returned when a matrix has no inverse.
var ErrSingularTransform = errors.New("core: transform matrix is not invertible")

// Transform is a local-to-world affine transform together with its
// precomputed inverse and inverse-transpose.
type Transform struct {
	m, inv, invT mgl64.Mat4
}

// Identity returns the identity transform
func Identity() *Transform {
	id := mgl64.Ident4()
	return &Transform{m: id, inv: id, invT: id}
}

// NewTransform wraps the matrix m. It fails when m is singular.
func NewTransform(m mgl64.Mat4) (*Transform, error) {
	if math.Abs(m.Det()) < 1e-12 {
		return nil, ErrSingularTransform
	}
	inv := m.Inv()
	return &Transform{m: m, inv: inv, invT: inv.Transpose()}, nil
}

// mustTransform is used by the builders below whose matrices are
// invertible by construction.
func mustTransform(m mgl64.Mat4) *Transform {
	inv := m.Inv()
	return &Transform{m: m, inv: inv, invT: inv.Transpose()}
}

// Translate returns a translation
func Translate(offset Vec3) *Transform {
	return mustTransform(mgl64.Translate3D(offset.X, offset.Y, offset.Z))
}

// Scale returns a scale along each axis. Zero factors are rejected.
func Scale(factors Vec3) (*Transform, error) {
	return NewTransform(mgl64.Scale3D(factors.X, factors.Y, factors.Z))
}

// UniformScale returns a uniform scale. It panics on a zero factor.
func UniformScale(s float64) *Transform {
	t, err := Scale(NewVec3(s, s, s))
	if err != nil {
		panic(err)
	}
	return t
}

// RotateX returns a rotation around the X axis (radians)
func RotateX(angle float64) *Transform {
	return mustTransform(mgl64.HomogRotate3DX(angle))
}

// RotateY returns a rotation around the Y axis (radians)
func RotateY(angle float64) *Transform {
	return mustTransform(mgl64.HomogRotate3DY(angle))
}

// RotateZ returns a rotation around the Z axis (radians)
func RotateZ(angle float64) *Transform {
	return mustTransform(mgl64.HomogRotate3DZ(angle))
}

// Then returns the transform that applies t first and next afterwards
func (t *Transform) Then(next *Transform) *Transform {
	return &Transform{
		m:    next.m.Mul4(t.m),
		inv:  t.inv.Mul4(next.inv),
		invT: t.inv.Mul4(next.inv).Transpose(),
	}
}

// Matrix returns the local-to-world matrix
func (t *Transform) Matrix() mgl64.Mat4 {
	return t.m
}

// Point maps a local point to world space
func (t *Transform) Point(p Vec3) Vec3 {
	return mulPoint(t.m, p)
}

// Vector maps a local direction to world space (no translation)
func (t *Transform) Vector(v Vec3) Vec3 {
	return mulVector(t.m, v)
}

// Normal maps a local surface normal to world space using the
// inverse-transpose and renormalizes it
func (t *Transform) Normal(n Vec3) Vec3 {
	return mulVector(t.invT, n).Normalize()
}

// InversePoint maps a world point to local space
func (t *Transform) InversePoint(p Vec3) Vec3 {
	return mulPoint(t.inv, p)
}

// Ray maps a local ray to world space. The direction is not renormalized,
// so parametric distances are preserved.
func (t *Transform) Ray(r Ray) Ray {
	r.Origin = mulPoint(t.m, r.Origin)
	r.Direction = mulVector(t.m, r.Direction)
	return r
}

// InverseRay maps a world ray to local space. The direction is not
// renormalized, so a hit at parameter t in local space is at parameter t
// in world space as well.
func (t *Transform) InverseRay(r Ray) Ray {
	r.Origin = mulPoint(t.inv, r.Origin)
	r.Direction = mulVector(t.inv, r.Direction)
	return r
}

// Bounds returns the world-space box enclosing the local box b
func (t *Transform) Bounds(b AABB) AABB {
	if !b.IsValid() {
		return b
	}
	out := EmptyAABB()
	for _, c := range b.Corners() {
		out = out.Extend(t.Point(c))
	}
	return out
}

func mulPoint(m mgl64.Mat4, p Vec3) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{r[0], r[1], r[2]}
}

func mulVector(m mgl64.Mat4, v Vec3) Vec3 {
	r := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{r[0], r[1], r[2]}
}
