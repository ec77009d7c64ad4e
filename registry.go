package goPerf

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/MrEthical07/goPerf/internal/sysinfo"
)

const (
	reportHeader = "----- Performance -----"
	reportFooter = "----- ~~~~~~~~~~~ -----"
)

// Registry is the process-wide collection of worker-partitioned measurers. It
// hands out [Local] region maps to worker goroutines and merges their
// finalized statistics across workers for reporting.
//
// All methods are safe for concurrent use. The registry mutex guards only the
// worker list; it is taken once per worker on Local creation and for the full
// duration of a reporting pass. Measurement itself never touches it.
type Registry struct {
	cfg Config
	log zerolog.Logger

	mu     sync.Mutex
	locals []*Local

	dispatcher *reportDispatcher
	closed     atomic.Bool
}

// Local returns a fresh worker-private region map and registers it for
// reporting. Each worker goroutine calls Local once and keeps the handle; all
// subsequent Get calls on it are lock-free. A disabled registry returns nil,
// which downstream Get/Enter/Leave absorb as no-ops.
func (r *Registry) Local() *Local {
	if r == nil || !r.cfg.Enabled || r.closed.Load() {
		return nil
	}
	l := newLocal()
	r.mu.Lock()
	r.locals = append(r.locals, l)
	n := len(r.locals)
	r.mu.Unlock()
	if r.cfg.Verbose {
		r.log.Debug().Int("workers", n).Msg("registered worker local")
	}
	return l
}

// Clear discards all worker maps and their measurers, resetting the registry
// between independent benchmark runs. Workers must re-acquire their Local
// afterward; previously held handles keep recording into orphaned maps that no
// report will see.
func (r *Registry) Clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.locals = nil
	r.mu.Unlock()
}

// combinedLocked merges every worker's regions with nonzero average by name.
// First occurrence seeds by clone, later ones fold in via Combine. Callers
// hold r.mu; each worker map is an immutable published copy, so walking it is
// safe while the worker keeps measuring.
func (r *Registry) combinedLocked() map[string]*Measurer {
	total := make(map[string]*Measurer)
	for _, l := range r.locals {
		for name, m := range l.load() {
			if m.Average() == 0 {
				continue
			}
			if c, ok := total[name]; ok {
				c.Combine(m)
			} else {
				total[name] = m.clone()
			}
		}
	}
	return total
}

// Report writes the merged statistics of every region with at least one
// finalized interval, one line per region in name order, between a fixed
// header and footer. Platform identification lines follow the header when
// Report.Identification is configured. Regions that never finalized are
// silently excluded. A nil or closed registry writes nothing.
func (r *Registry) Report(w io.Writer) {
	if r == nil || w == nil || r.closed.Load() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.combinedLocked()

	fmt.Fprintln(w, reportHeader)
	if r.cfg.Report.Identification {
		for _, line := range sysinfo.Lines() {
			fmt.Fprintln(w, line)
		}
	}
	names := make([]string, 0, len(total))
	for name := range total {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, total[name].Statistic())
	}
	fmt.Fprintln(w, reportFooter)

	if r.cfg.Verbose {
		r.log.Debug().Int("regions", len(total)).Msg("report emitted")
	}
}

// GetCombined merges one region's finalized statistics across all workers and
// returns the result by value, for assertions in automated benchmarks. The
// zero Measurer is returned when no worker finalized the region. Unlike
// Report, GetCombined keeps answering after Close.
func (r *Registry) GetCombined(name string) Measurer {
	var combined Measurer
	if r == nil {
		return combined
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.locals {
		m, ok := l.load()[name]
		if !ok || m.Average() == 0 {
			continue
		}
		if combined.Average() == 0 {
			combined = *m.clone()
		} else {
			combined.Combine(m)
		}
	}
	return combined
}

// Dropped returns the number of snapshots the background dispatcher discarded
// due to sink backpressure. Zero when dispatch is disabled. The counter stays
// readable after Close.
func (r *Registry) Dropped() uint64 {
	if r == nil {
		return 0
	}
	return r.dispatcher.droppedCount()
}

// Publish pushes an on-demand snapshot through the dispatcher to the
// configured report sink, subject to the same backpressure policy as periodic
// snapshots. It is a no-op when dispatch is disabled.
func (r *Registry) Publish() {
	if r == nil || r.closed.Load() {
		return
	}
	r.dispatcher.enqueue(r.Snapshot())
}

// Close stops the background dispatcher, draining queued snapshots to the
// sink. The registry stops handing out Locals and reporting afterward, but the
// accumulated data survives: GetCombined and Dropped keep answering, so a
// caller may close first and summarize after. Close is idempotent.
func (r *Registry) Close() {
	if r == nil || !r.closed.CompareAndSwap(false, true) {
		return
	}
	r.dispatcher.close()
}
