package goPerf

import "errors"

var (
	// ErrBuilderReused is an exported constant or variable used by the instrumentation registry.
	ErrBuilderReused = errors.New("builder already built")
	// ErrDispatchInterval is an exported constant or variable used by the instrumentation registry.
	ErrDispatchInterval = errors.New("dispatch interval must not be negative")
	// ErrDispatchBufferSize is an exported constant or variable used by the instrumentation registry.
	ErrDispatchBufferSize = errors.New("dispatch buffer size must be positive")
)
