package goPerf

import (
	"time"
	_ "unsafe" // required for go:linkname
)

//go:linkname runtimeNano runtime.nanotime
func runtimeNano() int64

// tickFrequency is the resolution of the monotonic counter in ticks per second.
// runtime.nanotime ticks in nanoseconds, so the frequency is a process constant.
const tickFrequency = int64(time.Second / time.Nanosecond)

// TimeCounter returns an opaque, monotonically increasing tick count. Deltas
// between two readings are meaningful; absolute values are not.
func TimeCounter() int64 {
	return runtimeNano()
}

// TimeFrequency returns the number of counter ticks per second. The value is
// constant for the lifetime of the process.
func TimeFrequency() int64 {
	return tickFrequency
}

// Milliseconds converts a tick delta obtained from [TimeCounter] to milliseconds.
func Milliseconds(ticks int64) float64 {
	return float64(ticks) / float64(tickFrequency) * 1000.0
}

// Time returns the current wall-clock time as floating-point seconds since the
// Unix epoch. It is a convenience query distinct from the counter-based API and
// is not monotonic.
func Time() float64 {
	t := time.Now()
	return float64(t.Unix()) + float64(t.Nanosecond())*1e-9
}
