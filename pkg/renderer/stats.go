package renderer

import (
	"math"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/tracer"
	"gonum.org/v1/gonum/stat"
)

// Stats contains statistics about a finished render
type Stats struct {
	Lines          int          // scanlines rendered
	Pixels         int          // pixels rendered
	Samples        int          // camera samples taken
	Rays           tracer.Stats // rays cast, by kind
	LinesPerWorker []int        // scanlines completed by each worker
	LineMean       time.Duration
	LineStdDev     time.Duration
	Elapsed        time.Duration
	Cancelled      bool
}

func newStats(width, lines int, opts Options, durations [][]float64, rays tracer.Stats, elapsed time.Duration) Stats {
	stats := Stats{
		Lines:          lines,
		Pixels:         width * lines,
		Samples:        width * lines * opts.SamplesX * opts.SamplesY,
		Rays:           rays,
		LinesPerWorker: make([]int, len(durations)),
		Elapsed:        elapsed,
	}

	var all []float64
	for i, d := range durations {
		stats.LinesPerWorker[i] = len(d)
		all = append(all, d...)
	}
	if len(all) > 0 {
		mean, std := stat.MeanStdDev(all, nil)
		if math.IsNaN(std) {
			std = 0
		}
		stats.LineMean = seconds(mean)
		stats.LineStdDev = seconds(std)
	}
	return stats
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// RaysPerSecond returns the ray throughput over the whole render
func (s Stats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Rays.Total()) / s.Elapsed.Seconds()
}
