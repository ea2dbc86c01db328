package renderer

import (
	"errors"
	"testing"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
		want   error
	}{
		{"defaults", func(o *Options) {}, nil},
		{"zero samples x", func(o *Options) { o.SamplesX = 0 }, ErrInvalidSampling},
		{"negative samples y", func(o *Options) { o.SamplesY = -2 }, ErrInvalidSampling},
		{"no workers", func(o *Options) { o.Workers = 0 }, ErrInvalidWorkers},
		{"pool limit", func(o *Options) { o.Workers = maxWorkers }, nil},
		{"above pool limit", func(o *Options) { o.Workers = maxWorkers + 1 }, ErrInvalidWorkers},
		{"no buffer", func(o *Options) { o.SpanBuffer = 0 }, ErrInvalidBuffer},
		{"no depth", func(o *Options) { o.Tracer.MaxDepth = 0 }, ErrInvalidDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultOptions()
			tt.modify(&options)
			err := options.Validate()
			if tt.want == nil && err != nil {
				t.Errorf("Expected valid options, got %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultOptions_Workers(t *testing.T) {
	options := DefaultOptions()
	if options.Workers < 1 || options.Workers > maxWorkers {
		t.Errorf("Expected between 1 and %d workers, got %d", maxWorkers, options.Workers)
	}
	if options.SamplesX != 2 || options.SamplesY != 2 {
		t.Errorf("Expected 2x2 supersampling, got %dx%d", options.SamplesX, options.SamplesY)
	}
}
