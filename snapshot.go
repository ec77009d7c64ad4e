package goPerf

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegionStats is the merged, immutable view of one region at snapshot time.
//
// RegionStats instances are value types; exporters may retain them freely.
type RegionStats struct {
	Name      string
	TotalMs   float64
	Count     int64
	AverageMs float64
	MinMs     float64
	MaxMs     float64
	Flop      int64
	GFlops    float64
}

// Line renders the region in the same fixed format as [Measurer.Statistic],
// for sinks that forward report lines verbatim.
func (s RegionStats) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %.0f ms / %d = %.3f ms", s.Name, s.TotalMs, s.Count, s.AverageMs)
	fmt.Fprintf(&b, " {min=%.3f; max=%.3f}", s.MinMs, s.MaxMs)
	if s.Flop != 0 {
		fmt.Fprintf(&b, " %.1f GFlops", s.GFlops)
	}
	return b.String()
}

// Snapshot is a point-in-time merged view of all finalized measurements,
// stamped with a run UUID so downstream sinks can correlate lines emitted by
// one reporting pass. Regions are sorted by name; never-finalized regions are
// excluded, mirroring [Registry.Report].
type Snapshot struct {
	RunID   string
	TakenAt time.Time
	Regions []RegionStats
}

// Snapshot merges every worker's finalized statistics under the registry lock
// and returns them as a value snapshot. Intervals still open on other workers
// at that instant are invisible, so the result is an eventually consistent
// view, not a linearizable one.
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		RunID:   uuid.NewString(),
		TakenAt: time.Now(),
	}
	if r == nil {
		return s
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.combinedLocked()
	s.Regions = make([]RegionStats, 0, len(total))
	for _, m := range total {
		s.Regions = append(s.Regions, RegionStats{
			Name:      m.Name(),
			TotalMs:   m.Total(),
			Count:     m.Count(),
			AverageMs: m.Average(),
			MinMs:     m.Min(),
			MaxMs:     m.Max(),
			Flop:      m.Flop(),
			GFlops:    m.GFlops(),
		})
	}
	sort.Slice(s.Regions, func(i, j int) bool { return s.Regions[i].Name < s.Regions[j].Name })
	return s
}
