// Package redisink publishes goPerf snapshot report lines to a Redis list for
// central collection of benchmark runs.
//
// [Sink] implements [goPerf.ReportSink] and is normally wired through
// [goPerf.Builder.WithReportSink] with dispatch enabled. Delivery is best
// effort and never blocks or fails measurement.
//
// # What this package must NOT do
//
//   - Own the Redis client lifecycle — callers construct and close it.
//   - Read measurement state directly; it only consumes snapshots.
package redisink
