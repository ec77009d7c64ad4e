// Package prometheus provides a Prometheus collector for goPerf region
// statistics.
//
// [NewCollector] accepts a [goPerf.Registry] and exposes every region's
// merged statistics as goperf_region_* series labeled by region name.
// [Handler] mounts the collector on a private registry behind promhttp.
//
// # What this package must NOT do
//
//   - Register metrics in the global Prometheus registry — callers mount the Handler.
//   - Mutate registry state.
package prometheus
