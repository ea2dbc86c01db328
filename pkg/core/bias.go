package core

// Bias constants used to suppress self-intersection. Each is an order of
// magnitude larger than the previous one.
const (
	// Bias is the ray epsilon: intersections closer than this parametric
	// distance are rejected by every primitive.
	Bias = 1e-7

	// Bias2 is the minimum squared distance at which the BVH accepts a hit,
	// so that secondary rays ignore the surface that spawned them.
	Bias2 = 1e-6

	// Bias3 offsets shadow rays along the normal and reflected rays along
	// their direction.
	Bias3 = 1e-5

	// Bias4 offsets refracted rays along their direction.
	Bias4 = 1e-4
)

// Biases groups the secondary-ray offsets so they can be tuned per scene.
// The hit acceptance threshold Bias2 is fixed.
type Biases struct {
	Shadow  float64 // shadow ray offset along the normal
	Reflect float64 // reflected ray offset along its direction
	Refract float64 // refracted ray offset along its direction
}

// DefaultBiases returns the bias constants.
func DefaultBiases() Biases {
	return Biases{
		Shadow:  Bias3,
		Reflect: Bias3,
		Refract: Bias4,
	}
}
