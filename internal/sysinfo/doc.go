// Package sysinfo renders the optional platform identification lines shown in
// report output.
//
// # What this package must NOT do
//
//   - Import goPerf or any sibling internal package.
//   - Perform I/O beyond reading runtime facts.
package sysinfo
