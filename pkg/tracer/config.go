package tracer

import "github.com/df07/go-recursive-raytracer/pkg/core"

// Config contains the recursion and bias settings of a tracer
type Config struct {
	MaxDepth uint32      // rays at this depth or deeper are not traced
	Biases   core.Biases // secondary ray offsets
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
		Biases:   core.DefaultBiases(),
	}
}

// maxShadowBlockers bounds how many non-opaque blockers a shadow ray
// passes through before the light is considered fully blocked
const maxShadowBlockers = 32
