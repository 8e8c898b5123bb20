package group

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLimitBoundsConcurrency(t *testing.T) {
	t.Parallel()
	const limit = 4
	const tasks = 40
	g := New(context.Background(), WithLimit(limit))
	var cur, maxSeen atomic.Int64
	release := make(chan struct{})
	for i := 0; i < tasks; i++ {
		g.Go(func(ctx context.Context) error {
			c := cur.Add(1)
			defer cur.Add(-1)
			for {
				if m := maxSeen.Load(); c > m {
					maxSeen.CompareAndSwap(m, c)
				}
				select {
				case <-release:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(1 * time.Millisecond):
				}
			}
		})
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	_ = g.Wait()
	if observed := maxSeen.Load(); observed > limit {
		t.Fatalf("observed concurrency %d exceeds limit %d", observed, limit)
	}
}

func TestLimiterAcquireRespectsCancel(t *testing.T) {
	t.Parallel()
	g := New(context.Background(), WithLimit(1))
	block := make(chan struct{})
	g.Go(func(_ context.Context) error {
		<-block
		return nil
	})
	// Second task queues behind the limiter.
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	time.Sleep(10 * time.Millisecond)
	start := time.Now()
	g.Cancel(context.Canceled)
	close(block)
	_ = g.Wait()
	if elapsed := time.Since(start); elapsed > 300*time.Millisecond {
		t.Fatalf("expected quick abort on cancel, got %v", elapsed)
	}
}
