package scene

import (
	"fmt"
	"sort"
)

// Builder constructs a scene. Non-zero fields of override replace the
// scene's default camera settings.
type Builder func(override CameraConfig) (*Scene, error)

// Info describes a registered scene
type Info struct {
	Name        string
	Description string
	Build       Builder
}

// Registry maps scene names to builders
type Registry struct {
	scenes map[string]Info
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{scenes: make(map[string]Info)}
}

// Register adds a builder under name
func (r *Registry) Register(name, description string, build Builder) error {
	if _, exists := r.scenes[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScene, name)
	}
	r.scenes[name] = Info{Name: name, Description: description, Build: build}
	return nil
}

// Build constructs the scene registered under name
func (r *Registry) Build(name string, override CameraConfig) (*Scene, error) {
	info, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}
	s, err := info.Build(override)
	if err != nil {
		return nil, fmt.Errorf("building scene %s: %w", name, err)
	}
	logger.Debugf("built scene %q: %d objects, %d lights, %d materials",
		name, s.PrimitiveCount(), len(s.Lights), s.MaterialCount())
	return s, nil
}

// List returns every registered scene sorted by name
func (r *Registry) List() []Info {
	list := make([]Info, 0, len(r.scenes))
	for _, info := range r.scenes {
		list = append(list, info)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

// Builtin holds the scenes that ship with the renderer
var Builtin = newBuiltinRegistry()

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []struct {
		name, description string
		build             Builder
	}{
		{"sphere", "white unit sphere lit by a single point light", NewSphereScene},
		{"default", "mirror, glass and diffuse spheres on a chessboard floor", NewDefaultScene},
		{"shapes", "one of every primitive, a mesh and a nested group", NewShapesScene},
		{"grid", "20x20 grid of colored spheres", NewSphereGridScene},
		{"empty", "camera and background only", NewEmptyScene},
	} {
		if err := r.Register(s.name, s.description, s.build); err != nil {
			panic(err)
		}
	}
	return r
}

// withCamera builds the camera from defaults merged with override and adds
// it to s
func withCamera(s *Scene, defaults, override CameraConfig) error {
	camera, err := NewCamera(MergeCameraConfig(defaults, override))
	if err != nil {
		return err
	}
	s.AddCamera(camera)
	return nil
}
