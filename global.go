package goPerf

import (
	"io"
	"sync"
)

// The process-wide default registry is created on first use so package-level
// instrumentation needs no explicit setup and no global initialization order.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it with [DefaultConfig]
// on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry, _ = New().Build()
	})
	return defaultRegistry
}

// NewLocal hands the calling worker a private region map from the default
// registry.
func NewLocal() *Local {
	return Default().Local()
}

// Report writes the default registry's merged statistics to w.
func Report(w io.Writer) {
	Default().Report(w)
}

// Clear resets the default registry between independent benchmark runs.
func Clear() {
	Default().Clear()
}

// GetCombined merges one region's statistics across all workers of the
// default registry.
func GetCombined(name string) Measurer {
	return Default().GetCombined(name)
}
