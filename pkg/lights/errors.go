package lights

import "errors"

var (
	ErrInvalidSampleGrid = errors.New("lights: area light needs at least one sample per axis")
	ErrDegenerateArea    = errors.New("lights: area light edges are parallel or zero")
	ErrInvalidCone       = errors.New("lights: spot cone angle must lie in (0, 90] degrees")
	ErrZeroDirection     = errors.New("lights: light direction is zero")
)
