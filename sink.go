package goPerf

import (
	"context"
	"io"
)

// ReportSink receives merged snapshots from the background dispatcher. Emit
// must be safe for calls from a single dispatcher goroutine and should return
// promptly; slow sinks cause snapshots to be dropped (or the dispatcher to
// stall) depending on DispatchConfig.DropIfFull.
type ReportSink interface {
	Emit(ctx context.Context, snapshot Snapshot)
}

// NoOpSink discards snapshots. It is the default when dispatch is enabled
// without a sink.
type NoOpSink struct{}

// Emit discards the snapshot.
func (NoOpSink) Emit(context.Context, Snapshot) {}

// WriterSink renders each snapshot's region lines to an append-only text
// stream, one line per region, mirroring the [Registry.Report] body.
type WriterSink struct {
	W io.Writer
}

// Emit writes one line per region in the snapshot.
func (s WriterSink) Emit(_ context.Context, snapshot Snapshot) {
	if s.W == nil {
		return
	}
	for _, region := range snapshot.Regions {
		_, _ = io.WriteString(s.W, region.Line()+"\n")
	}
}
