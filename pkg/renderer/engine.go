package renderer

import (
	"context"
	"math/rand"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/df07/go-recursive-raytracer/pkg/tracer"
)

var logger = log.New("renderer")

// RenderSpan is one completed scanline
type RenderSpan struct {
	Line   uint32
	Pixels []core.Color
}

// Engine renders a shared scene with a fixed pool of scanline workers
type Engine struct {
	shared  *scene.SharedScene
	options Options
}

// NewEngine validates options and creates an engine over shared
func NewEngine(shared *scene.SharedScene, options Options) (*Engine, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &Engine{shared: shared, options: options}, nil
}

// Options returns the engine configuration
func (e *Engine) Options() Options {
	return e.options
}

// Render is a frame in progress
type Render struct {
	Width, Height int
	Spans         <-chan RenderSpan // closed once every dispatched line is done

	done  chan struct{}
	stats Stats
}

// Wait blocks until the render has finished and returns its statistics.
// Spans must be drained for the render to finish.
func (r *Render) Wait() Stats {
	<-r.done
	return r.stats
}

// Render dispatches one task per scanline of the selected camera and
// returns immediately. Spans arrive in completion order; consumers index
// them by line. Cancelling ctx stops dispatching and drops spans that have
// not been delivered, but lines already being rendered run to completion.
func (e *Engine) Render(ctx context.Context) (*Render, error) {
	var (
		camera *scene.Camera
		tr     *tracer.Tracer
		err    error
	)
	e.shared.Read(func(s *scene.Scene) {
		camera, err = s.Camera(e.options.Camera)
		tr = tracer.New(s, e.options.Tracer)
	})
	if err != nil {
		return nil, err
	}

	width, height := camera.Width(), camera.Height()
	spans := make(chan RenderSpan, e.options.SpanBuffer)
	r := &Render{
		Width:  width,
		Height: height,
		Spans:  spans,
		done:   make(chan struct{}),
	}

	opts := e.options
	durations := make([][]float64, opts.Workers)
	renderLine := func(worker int, task lineTask) {
		start := time.Now()
		pixels := make([]core.Color, width)

		var rng *rand.Rand
		if opts.Jitter {
			rng = rand.New(rand.NewSource(opts.Seed + int64(task.line)))
		}
		e.shared.Read(func(s *scene.Scene) {
			for x := range pixels {
				pixels[x] = tr.PixelColor(camera, x, task.line, opts.SamplesX, opts.SamplesY, rng)
			}
		})
		durations[worker] = append(durations[worker], time.Since(start).Seconds())

		select {
		case spans <- RenderSpan{Line: uint32(task.line), Pixels: pixels}:
		case <-ctx.Done():
		}
	}

	pool := NewWorkerPool(opts.Workers, opts.Workers, renderLine)
	logger.Infof("rendering %dx%d with %d workers, %dx%d samples per pixel",
		width, height, pool.NumWorkers(), opts.SamplesX, opts.SamplesY)

	go func() {
		defer close(r.done)
		defer close(spans)

		start := time.Now()
		pool.Start()
		dispatched := 0
	dispatch:
		for line := 0; line < height; line++ {
			select {
			case <-ctx.Done():
				break dispatch
			default:
			}
			pool.SubmitTask(lineTask{line: line})
			dispatched++
		}
		pool.Stop()

		r.stats = newStats(width, dispatched, opts, durations, tr.Stats(), time.Since(start))
		r.stats.Cancelled = ctx.Err() != nil
		if r.stats.Cancelled {
			logger.Infof("render cancelled after %d of %d lines", dispatched, height)
		} else {
			logger.Infof("rendered %d lines in %s (%d rays)", dispatched, r.stats.Elapsed, r.stats.Rays.Total())
		}
	}()

	return r, nil
}

// RenderImage renders a full frame into a new image
func (e *Engine) RenderImage(ctx context.Context) (*Image, Stats, error) {
	r, err := e.Render(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	img, err := NewImage(r.Width, r.Height)
	if err != nil {
		for range r.Spans {
		}
		return nil, r.Wait(), err
	}
	err = img.Collect(r.Spans)
	stats := r.Wait()
	if err == nil && stats.Cancelled {
		err = ctx.Err()
	}
	return img, stats, err
}
