package goPerf

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type reportDispatcher struct {
	cfg       DispatchConfig
	sink      ReportSink
	source    func() Snapshot
	ch        chan Snapshot
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newReportDispatcher(cfg DispatchConfig, sink ReportSink, source func() Snapshot) *reportDispatcher {
	if !cfg.Enabled {
		return nil
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	if sink == nil {
		sink = NoOpSink{}
	}

	d := &reportDispatcher{
		cfg:    cfg,
		sink:   sink,
		source: source,
		ch:     make(chan Snapshot, cfg.BufferSize),
		done:   make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()
	if cfg.Interval > 0 && source != nil {
		d.wg.Add(1)
		go d.tick()
	}

	return d
}

func (d *reportDispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case snapshot := <-d.ch:
			d.sink.Emit(context.Background(), snapshot)
		case <-d.done:
			for {
				select {
				case snapshot := <-d.ch:
					d.sink.Emit(context.Background(), snapshot)
				default:
					return
				}
			}
		}
	}
}

func (d *reportDispatcher) tick() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.enqueue(d.source())
		case <-d.done:
			return
		}
	}
}

func (d *reportDispatcher) enqueue(snapshot Snapshot) {
	if d == nil || d.closed.Load() {
		return
	}

	if d.cfg.DropIfFull {
		select {
		case d.ch <- snapshot:
		case <-d.done:
		default:
			d.dropped.Add(1)
		}
		return
	}

	select {
	case d.ch <- snapshot:
	case <-d.done:
	}
}

func (d *reportDispatcher) droppedCount() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}

func (d *reportDispatcher) close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
		d.wg.Wait()
	})
}
