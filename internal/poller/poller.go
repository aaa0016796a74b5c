// Package poller provides a fixed-interval scheduler with an explicit
// start/stop lifecycle, decoupled from whatever drives it.
package poller

import (
	"context"
	"sync"
	"time"
)

// Task is one fetch cycle. It receives the poller's context and should
// stop writing results once that context is cancelled.
type Task func(ctx context.Context)

// Poller re-invokes a task at a fixed period. The first cycle runs
// immediately on Start. Cycles are triggered on the tick, not on the
// previous cycle's completion, so a slow cycle can overlap the next one;
// completion order decides which result lands last.
type Poller struct {
	interval time.Duration
	task     Task

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates a stopped poller.
func New(interval time.Duration, task Task) *Poller {
	return &Poller{interval: interval, task: task}
}

// Start activates the poller. The task runs once immediately, then every
// interval until Stop is called or the parent context is cancelled.
// Starting a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	go p.task(ctx)
	go p.loop(ctx)
}

func (p *Poller) loop(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go p.task(ctx)
		}
	}
}

// Stop cancels the poller. No further cycles are triggered; cycles
// already in flight see a cancelled context.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Running reports whether the poller is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
