// Package otel bridges goPerf region statistics into OpenTelemetry metrics.
//
// [NewOTelExporter] registers one Float64ObservableGauge per goPerf field
// definition; a single callback takes a merged snapshot per collection and
// observes every region with a region attribute. [OTelExporter.Close]
// unregisters the callback.
//
// # What this package must NOT do
//
//   - Own a MeterProvider — callers supply the meter and its reader/exporter.
//   - Mutate registry state.
package otel
