package goPerf

// Guard scopes a measurement to a lexical region. Construct it at the top of
// the region and defer Close; the measurement then finalizes on every exit
// path, normal return, early return, or panic alike.
//
// A Guard holding a nil measurer is a deliberate safe no-op: it is what call
// sites receive when instrumentation is disabled, so they need no conditionals.
type Guard struct {
	m *Measurer
}

// NewGuard wraps a measurer. With autoEnter the interval opens immediately;
// otherwise the caller invokes Enter explicitly.
func NewGuard(m *Measurer, autoEnter bool) *Guard {
	if autoEnter {
		m.Enter()
	}
	return &Guard{m: m}
}

// Enter opens (or resumes) the held measurer's interval.
func (g *Guard) Enter() {
	if g == nil {
		return
	}
	g.m.Enter()
}

// Leave closes the held measurer's interval, pausing instead of finalizing
// when pause is true.
func (g *Guard) Leave(pause bool) {
	if g == nil {
		return
	}
	g.m.Leave(pause)
}

// Close finalizes the measurement unconditionally. Intended for defer.
func (g *Guard) Close() {
	if g == nil {
		return
	}
	g.m.Leave(false)
}
