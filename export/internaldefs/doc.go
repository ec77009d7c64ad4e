// Package internaldefs exposes stable series name and label definitions shared
// by exporter implementations.
//
// Field definitions live here so that the Prometheus and OTel exporters expose
// identical series names for the same region statistics. Changes to
// definitions in this package affect all exporters simultaneously.
//
// # What this package must NOT do
//
//   - Import any exporter package.
//   - Perform I/O.
package internaldefs
