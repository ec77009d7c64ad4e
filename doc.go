// Package goPerf provides lightweight, worker-partitioned performance instrumentation:
// named code regions are timed with near-zero overhead on the hot path and their
// statistics (latency, interval count, min/max, GFlops-equivalent throughput) are
// merged across all workers on demand into a single textual report or snapshot.
//
// The package is designed for concurrent workloads: each worker goroutine obtains its
// own [Local] region map from a [Registry] and mutates its measurers without any
// synchronization; the registry mutex is taken once per worker, when the Local is
// created, and again only for the rare reporting pass.
//
// # Architecture boundaries
//
// goPerf is the public surface. It exposes [Registry], [Builder], [Config],
// [Measurer], [Guard], and value types (Snapshot, RegionStats). Platform
// identification lives under internal/ and is never exported. Report exporters
// (Prometheus, OpenTelemetry, Redis) live under export/ and depend on the root
// package, never the reverse.
//
// # What this package must NOT do
//
//   - Block on the hot path: Enter/Leave are plain arithmetic on worker-private
//     state; the only mutex is registry-level and off the measurement path.
//   - Surface errors from measurement: degenerate states (zero count, unmatched
//     Leave, nil measurer) are absorbed as no-ops, never returned.
//   - Import any sub-package that re-imports goPerf (no import cycles).
//
// # Performance contract
//
// Enter and Leave are the hot path. They must not allocate and must not take any
// lock. A disabled registry hands out nil measurers and nil Locals, whose methods
// are safe no-ops, so instrumented call sites need no conditional compilation.
package goPerf
