package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestStart_RunsImmediately(t *testing.T) {
	var runs int64
	p := New(time.Hour, func(ctx context.Context) {
		atomic.AddInt64(&runs, 1)
	})
	p.Start(context.Background())
	defer p.Stop()

	deadline := time.Now().Add(time.Second)
	for atomic.LoadInt64(&runs) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first cycle did not run before the interval elapsed")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStop_NoFurtherCycles(t *testing.T) {
	var runs int64
	p := New(10*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt64(&runs, 1)
	})
	p.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	p.Stop()

	settled := atomic.LoadInt64(&runs)
	if settled == 0 {
		t.Fatal("expected at least one cycle before Stop")
	}
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != settled {
		t.Errorf("cycles after Stop: %d -> %d", settled, got)
	}
	if p.Running() {
		t.Error("poller still reports running after Stop")
	}
}

func TestStart_Idempotent(t *testing.T) {
	var runs int64
	p := New(time.Hour, func(ctx context.Context) {
		atomic.AddInt64(&runs, 1)
	})
	p.Start(context.Background())
	p.Start(context.Background())
	defer p.Stop()

	time.Sleep(20 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != 1 {
		t.Errorf("expected a single immediate run, got %d", got)
	}
}

func TestStop_WithoutStart(t *testing.T) {
	p := New(time.Hour, func(ctx context.Context) {})
	p.Stop() // must not panic
	if p.Running() {
		t.Error("stopped poller reports running")
	}
}

func TestTwoPollersIndependent(t *testing.T) {
	var a, b int64
	pa := New(10*time.Millisecond, func(ctx context.Context) { atomic.AddInt64(&a, 1) })
	pb := New(10*time.Millisecond, func(ctx context.Context) { atomic.AddInt64(&b, 1) })

	pa.Start(context.Background())
	pb.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	pb.Stop()
	bSettled := atomic.LoadInt64(&b)
	time.Sleep(30 * time.Millisecond)
	pa.Stop()

	if atomic.LoadInt64(&b) != bSettled {
		t.Error("stopping one poller must not leave its timer running")
	}
	if atomic.LoadInt64(&a) <= bSettled {
		t.Error("the other poller should have kept running")
	}
}

func TestParentContextCancellation(t *testing.T) {
	var runs int64
	ctx, cancel := context.WithCancel(context.Background())
	p := New(10*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt64(&runs, 1)
	})
	p.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	settled := atomic.LoadInt64(&runs)
	time.Sleep(40 * time.Millisecond)
	if got := atomic.LoadInt64(&runs); got != settled {
		t.Errorf("cycles after parent cancel: %d -> %d", settled, got)
	}
}
