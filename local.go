package goPerf

import "sync/atomic"

// Local is one worker goroutine's private region map. Lookups and creations on
// a Local take no lock; the registry mutex was paid once, when the Local was
// registered. A Local must not be shared between goroutines.
//
// The map itself is published copy-on-write: creating a region builds a new
// map and swaps it in atomically, so a reporting pass walking the map from
// another goroutine only ever sees fully built, immutable maps. Steady-state
// lookups stay a single atomic load plus a map read.
//
// A nil Local (handed out by a disabled registry) returns nil measurers, whose
// methods are safe no-ops.
type Local struct {
	regions atomic.Pointer[map[string]*Measurer]
}

func newLocal() *Local {
	l := &Local{}
	m := make(map[string]*Measurer)
	l.regions.Store(&m)
	return l
}

// load returns the published region map. Published maps are never mutated, so
// callers may iterate them without further synchronization.
func (l *Local) load() map[string]*Measurer {
	return *l.regions.Load()
}

// Get returns the measurer for name within this worker, creating it on first
// request. An optional work-unit count may be supplied for throughput
// reporting; it is honored only at creation.
func (l *Local) Get(name string, flop ...int64) *Measurer {
	if l == nil {
		return nil
	}
	if m, ok := l.load()[name]; ok {
		return m
	}
	var f int64
	if len(flop) > 0 {
		f = flop[0]
	}
	return l.insert(name, f)
}

// insert republishes the region map with one more entry. Only the owning
// worker inserts, so building the replacement needs no lock; the atomic store
// is what makes the new map visible to reporting.
func (l *Local) insert(name string, flop int64) *Measurer {
	cur := l.load()
	next := make(map[string]*Measurer, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	m := NewMeasurer(name, flop)
	next[name] = m
	l.regions.Store(&next)
	return m
}

// GetBlock composes a region name from a function identifier and a block
// label, so one function can host several distinctly named sub-regions.
func (l *Local) GetBlock(function, block string, flop ...int64) *Measurer {
	return l.Get(function+" { "+block+" } ", flop...)
}
