package renderer

import "errors"

var (
	ErrInvalidFrameSize = errors.New("renderer: frame size must be positive")
	ErrInvalidSampling  = errors.New("renderer: samples per axis must be at least 1")
	ErrInvalidWorkers   = errors.New("renderer: worker count must be between 1 and 256")
	ErrInvalidBuffer    = errors.New("renderer: span buffer must be at least 1")
	ErrInvalidDepth     = errors.New("renderer: max depth must be at least 1")
	ErrSpanOutOfRange   = errors.New("renderer: span does not fit the image")
)
