package goPerf

import (
	"math"
	"strings"
	"testing"
	"time"
)

const msTicks = int64(1_000_000) // ticks per millisecond at nanosecond frequency

func syntheticMeasurer(name string, flop, count, totalTicks, minTicks, maxTicks int64) *Measurer {
	m := NewMeasurer(name, flop)
	m.count = count
	m.total = totalTicks
	m.min = minTicks
	m.max = maxTicks
	return m
}

func TestMeasurerFreshZero(t *testing.T) {
	m := NewMeasurer("fresh", 0)

	if got := m.Count(); got != 0 {
		t.Fatalf("expected count 0, got %d", got)
	}
	if got := m.Average(); got != 0 {
		t.Fatalf("expected average 0, got %f", got)
	}
	if got := m.GFlops(); got != 0 {
		t.Fatalf("expected gflops 0, got %f", got)
	}
	if got := m.Min(); got != 0 {
		t.Fatalf("expected min 0, got %f", got)
	}
	if got := m.Max(); got != 0 {
		t.Fatalf("expected max 0, got %f", got)
	}
}

func TestMeasurerEnterLeaveIncrementsCount(t *testing.T) {
	m := NewMeasurer("region", 0)

	m.Enter()
	m.Leave(false)

	if got := m.Count(); got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}
	if avg := m.Average(); avg < 0 {
		t.Fatalf("expected average >= 0, got %f", avg)
	}
	if m.Min() > m.Max() {
		t.Fatalf("min %f exceeds max %f", m.Min(), m.Max())
	}
}

func TestMeasurerEnterIdempotentWhileOpen(t *testing.T) {
	m := NewMeasurer("region", 0)

	m.Enter()
	time.Sleep(2 * time.Millisecond)
	m.Enter() // must not reset the interval start
	m.Leave(false)

	if got := m.Count(); got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}
	if total := m.Total(); total < 1.5 {
		t.Fatalf("re-entering reset the open interval: total %f ms", total)
	}
}

func TestMeasurerPauseResumeFinalizesOnce(t *testing.T) {
	m := NewMeasurer("region", 0)
	overall := TimeCounter()

	m.Enter()
	time.Sleep(2 * time.Millisecond)
	m.Leave(true)

	if got := m.Count(); got != 0 {
		t.Fatalf("pause must not finalize: count %d", got)
	}

	time.Sleep(2 * time.Millisecond) // suspended span, must not be accounted

	m.Enter()
	time.Sleep(2 * time.Millisecond)
	m.Leave(false)

	elapsed := Milliseconds(TimeCounter() - overall)

	if got := m.Count(); got != 1 {
		t.Fatalf("expected exactly one finalized interval, got %d", got)
	}
	if total := m.Total(); total < 3 {
		t.Fatalf("pause lost time: total %f ms", total)
	}
	if total := m.Total(); total > elapsed {
		t.Fatalf("pause double-counted time: total %f ms > elapsed %f ms", total, elapsed)
	}
	if m.Min() != m.Max() || m.Min() != m.Total() {
		t.Fatalf("single interval must have min == max == total, got min=%f max=%f total=%f", m.Min(), m.Max(), m.Total())
	}
}

func TestMeasurerLeaveWithoutEnterNoOp(t *testing.T) {
	m := NewMeasurer("region", 0)

	m.Leave(false)
	m.Leave(true)
	m.Leave(false)

	if got := m.Count(); got != 0 {
		t.Fatalf("expected count 0, got %d", got)
	}
	if got := m.Average(); got != 0 {
		t.Fatalf("expected average 0, got %f", got)
	}
	if m.min != math.MaxInt64 || m.max != math.MinInt64 {
		t.Fatalf("min/max seeds disturbed: min=%d max=%d", m.min, m.max)
	}
}

func TestMeasurerCombineCommutativeAssociative(t *testing.T) {
	build := func() (*Measurer, *Measurer, *Measurer) {
		a := syntheticMeasurer("r", 0, 3, 9*msTicks, 2*msTicks, 4*msTicks)
		b := syntheticMeasurer("r", 0, 5, 20*msTicks, 1*msTicks, 7*msTicks)
		c := syntheticMeasurer("r", 0, 2, 2*msTicks, 1*msTicks/2, 3*msTicks/2)
		return a, b, c
	}

	// (A+B)+C
	a1, b1, c1 := build()
	a1.Combine(b1)
	a1.Combine(c1)

	// A+(B+C)
	a2, b2, c2 := build()
	b2.Combine(c2)
	a2.Combine(b2)

	if a1.count != a2.count || a1.total != a2.total {
		t.Fatalf("combine not associative on (count,total): (%d,%d) vs (%d,%d)", a1.count, a1.total, a2.count, a2.total)
	}
	if a1.min != a2.min || a1.max != a2.max {
		t.Fatalf("combine not associative on (min,max): (%d,%d) vs (%d,%d)", a1.min, a1.max, a2.min, a2.max)
	}

	// commutativity
	x1, y1, _ := build()
	x2, y2, _ := build()
	x1.Combine(y1)
	y2.Combine(x2)
	if x1.count != y2.count || x1.total != y2.total {
		t.Fatalf("combine not commutative on (count,total)")
	}

	if a1.min != msTicks/2 {
		t.Fatalf("expected combined min %d, got %d", msTicks/2, a1.min)
	}
	if a1.max != 7*msTicks {
		t.Fatalf("expected combined max %d, got %d", 7*msTicks, a1.max)
	}
	if a1.count != 10 || a1.total != 31*msTicks {
		t.Fatalf("expected combined count=10 total=%d, got count=%d total=%d", 31*msTicks, a1.count, a1.total)
	}
}

func TestMeasurerCombineIgnoresOpenInterval(t *testing.T) {
	a := syntheticMeasurer("r", 0, 1, 4*msTicks, 4*msTicks, 4*msTicks)
	b := syntheticMeasurer("r", 0, 1, 6*msTicks, 6*msTicks, 6*msTicks)
	b.entered = true
	b.current = 99 * msTicks

	a.Combine(b)

	if a.total != 10*msTicks {
		t.Fatalf("combine must ignore pending current: total %d", a.total)
	}
	if a.entered || a.current != 0 {
		t.Fatalf("combine must not disturb open-interval state")
	}
}

func TestMeasurerGFlopsArithmetic(t *testing.T) {
	// 10 finalized calls totaling 5 ms with flop=2e6 => 2e6*10/5/1e6 = 4.0
	m := syntheticMeasurer("conv", 2_000_000, 10, 5*msTicks, 0, msTicks)

	got := m.GFlops()
	if math.Abs(got-4.0) > 1e-9 {
		t.Fatalf("expected ~4.0 GFlops, got %f", got)
	}
}

func TestMeasurerGFlopsZeroWithoutData(t *testing.T) {
	if got := syntheticMeasurer("r", 0, 10, 5*msTicks, 0, msTicks).GFlops(); got != 0 {
		t.Fatalf("expected 0 without flop, got %f", got)
	}
	if got := syntheticMeasurer("r", 100, 0, 5*msTicks, 0, msTicks).GFlops(); got != 0 {
		t.Fatalf("expected 0 without count, got %f", got)
	}
	if got := syntheticMeasurer("r", 100, 10, 0, 0, 0).GFlops(); got != 0 {
		t.Fatalf("expected 0 without total, got %f", got)
	}
}

func TestMeasurerStatisticFormat(t *testing.T) {
	m := syntheticMeasurer("matmul", 0, 4, 10*msTicks, 2*msTicks, 3*msTicks)

	got := m.Statistic()
	want := "matmul: 10 ms / 4 = 2.500 ms {min=2.000; max=3.000}"
	if got != want {
		t.Fatalf("statistic mismatch:\n got:  %q\n want: %q", got, want)
	}
}

func TestMeasurerStatisticIncludesGFlops(t *testing.T) {
	m := syntheticMeasurer("conv", 2_000_000, 10, 5*msTicks, 0, msTicks)

	got := m.Statistic()
	if !strings.HasSuffix(got, " 4.0 GFlops") {
		t.Fatalf("expected GFlops suffix, got %q", got)
	}
}

func TestMeasurerNilSafe(t *testing.T) {
	var m *Measurer

	m.Enter()
	m.Leave(false)
	m.Combine(NewMeasurer("x", 0))

	if m.Average() != 0 || m.GFlops() != 0 || m.Count() != 0 {
		t.Fatalf("nil measurer must report zeros")
	}
	if m.Name() != "" || m.Statistic() != "" {
		t.Fatalf("nil measurer must render empty strings")
	}
}
