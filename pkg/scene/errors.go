package scene

import "errors"

var (
	ErrNoCamera       = errors.New("scene: no camera defined")
	ErrCameraIndex    = errors.New("scene: camera index out of range")
	ErrInvalidCamera  = errors.New("scene: camera position, target and up must span a frame")
	ErrInvalidFrame   = errors.New("scene: camera frame size must be positive")
	ErrUnknownScene   = errors.New("scene: unknown scene")
	ErrDuplicateScene = errors.New("scene: scene already registered")
)
