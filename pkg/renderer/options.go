package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-recursive-raytracer/pkg/tracer"
)

// maxWorkers bounds the worker pool
const maxWorkers = 32

// Options contains rendering configuration. The frame size is the size of
// the selected camera.
type Options struct {
	Camera     int   // index of the scene camera to render
	SamplesX   int   // sub-pixel samples per row
	SamplesY   int   // sub-pixel samples per column
	Jitter     bool  // randomize samples within their cell
	Seed       int64 // jitter seed; each line derives its own source
	Workers    int   // scanline workers
	SpanBuffer int   // completed spans buffered before workers block
	Tracer     tracer.Config
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		SamplesX:   2,
		SamplesY:   2,
		Jitter:     true,
		Seed:       42,
		Workers:    min(runtime.NumCPU(), maxWorkers),
		SpanBuffer: 64,
		Tracer:     tracer.DefaultConfig(),
	}
}

// Validate checks that the options describe a renderable configuration
func (o Options) Validate() error {
	if o.SamplesX < 1 || o.SamplesY < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSampling, o.SamplesX, o.SamplesY)
	}
	if o.Workers < 1 || o.Workers > maxWorkers {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, o.Workers)
	}
	if o.SpanBuffer < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBuffer, o.SpanBuffer)
	}
	if o.Tracer.MaxDepth < 1 {
		return ErrInvalidDepth
	}
	return nil
}
