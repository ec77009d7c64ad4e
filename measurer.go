package goPerf

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// Measurer accumulates timing statistics for one named region: cumulative
// finalized time, interval count, min/max single-interval duration, and an
// optional fixed work-unit count for throughput reporting.
//
// A Measurer is mutated only by the worker goroutine that owns it. During a
// reporting pass another goroutine reads the finalized fields
// (total/min/max/count); the owner publishes those with atomic stores and
// readers take atomic loads, so reporting never races a running worker. The
// in-progress interval (current/entered/paused) stays owner-only and is
// invisible to reporting until finalized.
type Measurer struct {
	name    string
	flop    int64
	start   int64
	current int64
	total   int64
	min     int64
	max     int64
	count   int64
	entered bool
	paused  bool
}

// NewMeasurer creates a measurer for the given region name. flop is a fixed
// work-unit count per interval used by [Measurer.GFlops]; zero disables
// throughput reporting for the region.
func NewMeasurer(name string, flop int64) *Measurer {
	return &Measurer{
		name: name,
		flop: flop,
		min:  math.MaxInt64,
		max:  math.MinInt64,
	}
}

// Enter opens an interval at the current tick. Calling Enter while an interval
// is already open is a no-op, so nested guards on the same measurer never
// double-count. Entering a paused measurer resumes the pending interval.
func (m *Measurer) Enter() {
	if m == nil || m.entered {
		return
	}
	m.entered = true
	m.paused = false
	m.start = TimeCounter()
}

// Leave closes the open interval. With pause=false the interval is finalized:
// its duration is folded into total/min/max and count is incremented. With
// pause=true the accumulated duration stays pending and a later Enter resumes
// the same interval. Leave on a measurer that is neither entered nor paused is
// a no-op.
func (m *Measurer) Leave(pause bool) {
	if m == nil || (!m.entered && !m.paused) {
		return
	}
	if m.entered {
		m.entered = false
		m.current += TimeCounter() - m.start
	}
	if !pause {
		atomic.StoreInt64(&m.total, m.total+m.current)
		if m.current < m.min {
			atomic.StoreInt64(&m.min, m.current)
		}
		if m.current > m.max {
			atomic.StoreInt64(&m.max, m.current)
		}
		atomic.StoreInt64(&m.count, m.count+1)
		m.current = 0
	}
	m.paused = pause
}

// Average returns the mean finalized interval duration in milliseconds, or 0
// when no interval has been finalized.
func (m *Measurer) Average() float64 {
	if m == nil {
		return 0
	}
	count := atomic.LoadInt64(&m.count)
	if count == 0 {
		return 0
	}
	return Milliseconds(atomic.LoadInt64(&m.total)) / float64(count)
}

// GFlops returns throughput in billions of work units per second:
// flop*count/totalMs/1e6. It is 0 unless flop, count, and total are all nonzero.
func (m *Measurer) GFlops() float64 {
	if m == nil || m.flop == 0 {
		return 0
	}
	count := atomic.LoadInt64(&m.count)
	total := atomic.LoadInt64(&m.total)
	if count == 0 || total <= 0 {
		return 0
	}
	return float64(m.flop) * float64(count) / Milliseconds(total) / 1e6
}

// Combine merges another measurer's finalized statistics into m: counts and
// totals add, min/max fold. The in-progress state (current/entered/paused) of
// both measurers is untouched. Both measurers should describe the same region;
// Combine does not validate the names. m must be private to the caller; other
// may belong to a live worker.
func (m *Measurer) Combine(other *Measurer) {
	if m == nil || other == nil {
		return
	}
	m.count += atomic.LoadInt64(&other.count)
	m.total += atomic.LoadInt64(&other.total)
	if omin := atomic.LoadInt64(&other.min); omin < m.min {
		m.min = omin
	}
	if omax := atomic.LoadInt64(&other.max); omax > m.max {
		m.max = omax
	}
}

// Name returns the region name.
func (m *Measurer) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// Count returns the number of finalized intervals.
func (m *Measurer) Count() int64 {
	if m == nil {
		return 0
	}
	return atomic.LoadInt64(&m.count)
}

// Total returns the cumulative finalized time in milliseconds.
func (m *Measurer) Total() float64 {
	if m == nil {
		return 0
	}
	return Milliseconds(atomic.LoadInt64(&m.total))
}

// Min returns the shortest finalized interval in milliseconds, or 0 when no
// interval has been finalized.
func (m *Measurer) Min() float64 {
	if m == nil || atomic.LoadInt64(&m.count) == 0 {
		return 0
	}
	return Milliseconds(atomic.LoadInt64(&m.min))
}

// Max returns the longest finalized interval in milliseconds, or 0 when no
// interval has been finalized.
func (m *Measurer) Max() float64 {
	if m == nil || atomic.LoadInt64(&m.count) == 0 {
		return 0
	}
	return Milliseconds(atomic.LoadInt64(&m.max))
}

// Flop returns the fixed work-unit count the measurer was created with.
func (m *Measurer) Flop() int64 {
	if m == nil {
		return 0
	}
	return m.flop
}

// Statistic renders the fixed human-readable report line for the region:
// total milliseconds, interval count, average, min/max, and throughput when a
// work-unit count is set.
func (m *Measurer) Statistic() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %.0f ms / %d = %.3f ms", m.name, m.Total(), m.Count(), m.Average())
	fmt.Fprintf(&b, " {min=%.3f; max=%.3f}", m.Min(), m.Max())
	if m.flop != 0 {
		fmt.Fprintf(&b, " %.1f GFlops", m.GFlops())
	}
	return b.String()
}

// clone returns a private copy of the finalized statistics, used to seed
// cross-worker aggregation. The in-progress fields are deliberately left zero:
// the source may be a live worker measurer mid-interval.
func (m *Measurer) clone() *Measurer {
	return &Measurer{
		name:  m.name,
		flop:  m.flop,
		total: atomic.LoadInt64(&m.total),
		min:   atomic.LoadInt64(&m.min),
		max:   atomic.LoadInt64(&m.max),
		count: atomic.LoadInt64(&m.count),
	}
}
