package goPerf

import "time"

// Config defines a public type used by goPerf APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	// Enabled gates the whole facility. A disabled registry hands out nil
	// Locals and nil measurers, so instrumented call sites become no-ops.
	Enabled bool

	// Verbose emits debug log lines on worker registration and report passes.
	Verbose bool

	Report   ReportConfig
	Dispatch DispatchConfig
}

/*
====================================
REPORT CONFIG
====================================
*/

// ReportConfig defines a public type used by goPerf APIs.
//
// ReportConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ReportConfig struct {
	// Identification prepends platform identification lines (GOMAXPROCS,
	// CPU count, os/arch) to report output. Off by default.
	Identification bool
}

/*
====================================
DISPATCH CONFIG
====================================
*/

// DispatchConfig defines a public type used by goPerf APIs.
//
// DispatchConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type DispatchConfig struct {
	// Enabled starts a background dispatcher that samples snapshots every
	// Interval and forwards them to the configured ReportSink.
	Enabled bool

	// Interval between periodic snapshots. Zero disables periodic sampling
	// while still allowing on-demand Publish through the dispatcher.
	Interval time.Duration

	// BufferSize is the dispatcher queue capacity.
	BufferSize int

	// DropIfFull drops snapshots (counted by Registry.Dropped) instead of
	// blocking the publisher when the queue is full.
	DropIfFull bool
}

// DefaultConfig returns the configuration used by [New] before any overrides:
// measurement enabled, identification and verbose logging off, dispatch off
// with drop-if-full buffering preconfigured for when it is switched on.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Dispatch: DispatchConfig{
			Interval:   time.Second,
			BufferSize: 16,
			DropIfFull: true,
		},
	}
}

func validateConfig(cfg Config) error {
	if !cfg.Dispatch.Enabled {
		return nil
	}
	if cfg.Dispatch.Interval < 0 {
		return ErrDispatchInterval
	}
	if cfg.Dispatch.BufferSize <= 0 {
		return ErrDispatchBufferSize
	}
	return nil
}
