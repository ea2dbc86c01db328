package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewSphereScene is a white unit sphere at the origin seen from (0,0,5)
// and lit by a point light at (2,2,2)
func NewSphereScene(override CameraConfig) (*Scene, error) {
	s := New("sphere")
	s.Ambient = core.Gray(0.05)
	s.Background = core.Black

	err := withCamera(s, CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1,
		VFov:        40,
	}, override)
	if err != nil {
		return nil, err
	}

	white := s.AddMaterial(material.NewDiffuse(core.White))
	sphere, err := geometry.NewSphere(core.Vec3{}, 1, white)
	if err != nil {
		return nil, err
	}
	s.Add(sphere)
	s.AddLight(lights.NewPoint(core.NewVec3(2, 2, 2), core.White, lights.NoFalloff))
	return s, nil
}

// NewDefaultScene creates spheres of every reference material on a
// chessboard floor
func NewDefaultScene(override CameraConfig) (*Scene, error) {
	s := New("default")
	s.Ambient = core.Gray(0.1)
	s.Background = core.NewColor(0.5, 0.7, 1.0)

	err := withCamera(s, CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40,
	}, override)
	if err != nil {
		return nil, err
	}

	// Create materials
	floor := s.AddMaterial(material.NewChessboard(
		material.NewDiffuse(core.Gray(0.9)),
		material.NewDiffuse(core.Gray(0.2)),
		1,
	))
	red := s.AddMaterial(material.NewPhong(core.NewColor(0.65, 0.25, 0.2), 0.6, 40))
	blue := s.AddMaterial(material.NewDiffuse(core.NewColor(0.1, 0.2, 0.5)))
	silver := s.AddMaterial(material.NewMirror(core.Gray(0.8)))
	gold := s.AddMaterial(material.NewMirror(core.NewColor(0.8, 0.6, 0.2)))
	glass := s.AddMaterial(material.NewGlass(1.5))
	bulb := s.AddMaterial(material.NewEmissive(core.NewColor(1.0, 0.95, 0.8)))

	ground, err := geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), floor)
	if err != nil {
		return nil, err
	}
	s.AddUnbounded(ground)

	// Create spheres with different materials
	for _, sp := range []struct {
		center core.Vec3
		radius float64
		mat    core.MaterialID
	}{
		{core.NewVec3(0, 0.5, -1), 0.5, red},
		{core.NewVec3(-1, 0.5, -1), 0.5, silver},
		{core.NewVec3(1, 0.5, -1), 0.5, gold},
		{core.NewVec3(0.5, 0.25, -0.5), 0.25, glass},
		// Glass shell with a blue core
		{core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass},
		{core.NewVec3(-0.5, 0.25, -0.5), 0.15, blue},
		// Marks the point light; emissive objects cast no shadow
		{core.NewVec3(3, 4, 2), 0.1, bulb},
	} {
		sphere, err := geometry.NewSphere(sp.center, sp.radius, sp.mat)
		if err != nil {
			return nil, err
		}
		s.Add(sphere)
	}

	area, err := lights.NewArea(
		core.NewVec3(-1.5, 3, -2), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1),
		core.Gray(0.5), lights.NoFalloff, 3, 3,
	)
	if err != nil {
		return nil, err
	}
	s.AddLight(
		lights.NewPoint(core.NewVec3(3, 4, 2), core.NewColor(1.0, 0.95, 0.8).Scale(0.7), lights.NoFalloff),
		area,
	)
	return s, nil
}

// NewShapesScene places one of every primitive, a triangle mesh and a
// nested group on a floor
func NewShapesScene(override CameraConfig) (*Scene, error) {
	s := New("shapes")
	s.Ambient = core.Gray(0.08)
	s.Background = core.NewColor(0.05, 0.05, 0.1)

	err := withCamera(s, CameraConfig{
		Center:      core.NewVec3(0, 3, 9),
		LookAt:      core.NewVec3(0, 0.75, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       600,
		AspectRatio: 16.0 / 9.0,
		VFov:        45,
	}, override)
	if err != nil {
		return nil, err
	}

	floor := s.AddMaterial(material.NewTexturedDiffuse(
		material.NewCheckerTexture(core.Gray(0.8), core.Gray(0.5), 0.5),
	))
	orange := s.AddMaterial(material.NewPhong(core.NewColor(0.9, 0.5, 0.1), 0.4, 20))
	teal := s.AddMaterial(material.NewPhong(core.NewColor(0.1, 0.6, 0.6), 0.4, 20))
	purple := s.AddMaterial(material.NewDiffuse(core.NewColor(0.5, 0.2, 0.7)))
	mirror := s.AddMaterial(material.NewMirror(core.Gray(0.9)))
	glass := s.AddMaterial(material.NewTintedGlass(1.5, core.NewColor(0.8, 1.0, 0.8)))
	mixed := s.AddMaterial(material.NewMix(material.NewDiffuse(core.NewColor(0.8, 0.1, 0.1)), material.NewMirror(core.White), 0.3))

	ground, err := geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), floor)
	if err != nil {
		return nil, err
	}
	s.AddUnbounded(ground)

	cube, err := geometry.NewCube(core.NewVec3(-3, 0.5, 0), core.NewVec3(0.5, 0.5, 0.5), orange)
	if err != nil {
		return nil, err
	}
	cube.SetTransform(core.RotateY(math.Pi / 6).Then(cube.Transform()))

	cylinder, err := geometry.NewCylinder(core.NewVec3(-1.5, 0, 0), core.NewVec3(-1.5, 1.5, 0), 0.5, true, teal)
	if err != nil {
		return nil, err
	}
	cone, err := geometry.NewCone(core.NewVec3(0, 0, 0), core.NewVec3(0, 1.5, 0), 0.6, true, purple)
	if err != nil {
		return nil, err
	}
	sphere, err := geometry.NewSphere(core.NewVec3(1.5, 0.6, 0), 0.6, glass)
	if err != nil {
		return nil, err
	}

	// A standing mirror square behind the row
	mirrorScale, err := core.Scale(core.NewVec3(2, 1, 1))
	if err != nil {
		return nil, err
	}
	square := geometry.NewSquare(mirrorScale.Then(core.Translate(core.NewVec3(0, 1.2, -2))), mirror)

	triangle := geometry.NewTriangle(
		core.NewVec3(2.5, 0, 1), core.NewVec3(3.5, 0, 1), core.NewVec3(3, 1.2, 1), mixed,
	)

	pyramid, err := newPyramid(orange)
	if err != nil {
		return nil, err
	}
	pyramid.SetTransform(core.Translate(core.NewVec3(3, 0, -1)))

	// Two small spheres orbiting as one object
	left, err := geometry.NewSphere(core.NewVec3(-0.4, 0, 0), 0.25, teal)
	if err != nil {
		return nil, err
	}
	right, err := geometry.NewSphere(core.NewVec3(0.4, 0, 0), 0.25, purple)
	if err != nil {
		return nil, err
	}
	pair := geometry.NewGroup("pair", left, right)
	pair.SetTransform(core.RotateZ(math.Pi / 8).Then(core.Translate(core.NewVec3(0, 2.4, 0))))

	s.Add(cube, cylinder, cone, sphere, square, triangle, pyramid, pair)

	sun, err := lights.NewDirectional(core.NewVec3(-1, -2, -1), core.Gray(0.6))
	if err != nil {
		return nil, err
	}
	spot, err := lights.NewSpot(core.NewVec3(0, 6, 3), core.NewVec3(0, 0, 0), core.Gray(0.8), 30, 8, lights.NoFalloff)
	if err != nil {
		return nil, err
	}
	s.AddLight(sun, spot)
	return s, nil
}

// newPyramid builds a square pyramid mesh with its base centered on the
// origin
func newPyramid(mat core.MaterialID) (*geometry.TriangleMesh, error) {
	vertices := []core.Vec3{
		core.NewVec3(-0.5, 0, -0.5),
		core.NewVec3(0.5, 0, -0.5),
		core.NewVec3(0.5, 0, 0.5),
		core.NewVec3(-0.5, 0, 0.5),
		core.NewVec3(0, 1, 0),
	}
	faces := []int{
		0, 1, 2, 0, 2, 3, // base, facing down
		3, 2, 4,
		2, 1, 4,
		1, 0, 4,
		0, 3, 4,
	}
	return geometry.NewTriangleMesh(vertices, faces, mat, nil)
}

// NewSphereGridScene creates a grid of colored spheres on a floor
func NewSphereGridScene(override CameraConfig) (*Scene, error) {
	s := New("grid")
	s.Ambient = core.Gray(0.1)
	s.Background = core.NewColor(0.5, 0.7, 1.0)

	err := withCamera(s, CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5),
		Up:          core.NewVec3(0, 1, 0),
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		VFov:        40,
	}, override)
	if err != nil {
		return nil, err
	}

	gray := s.AddMaterial(material.NewDiffuse(core.Gray(0.5)))
	ground, err := geometry.NewPlane(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), gray)
	if err != nil {
		return nil, err
	}
	s.AddUnbounded(ground)

	const gridSize = 20
	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	spheres := make([]geometry.FiniteGeometry, 0, gridSize*gridSize)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			// Hue varies across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat core.Material = material.NewPhong(color, 0.5, 30)
			if (i+j)%7 == 0 {
				mat = material.NewMirror(color)
			}
			sphere, err := geometry.NewSphere(core.NewVec3(x, radius, z), radius, s.AddMaterial(mat))
			if err != nil {
				return nil, err
			}
			spheres = append(spheres, sphere)
		}
	}
	s.Add(spheres...)

	sun, err := lights.NewDirectional(core.NewVec3(-20, -25, -20), core.Gray(0.9))
	if err != nil {
		return nil, err
	}
	s.AddLight(sun)
	return s, nil
}

// NewEmptyScene has a camera and a background but nothing to hit
func NewEmptyScene(override CameraConfig) (*Scene, error) {
	s := New("empty")
	s.Background = core.NewColor(0.2, 0.3, 0.4)
	err := withCamera(s, CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       200,
		AspectRatio: 1,
		VFov:        40,
	}, override)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamped()
}
