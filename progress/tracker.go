package progress

import (
	"context"
	"sync/atomic"
	"time"
)

// Status is the outcome of a single observer pass.
type Status int

const (
	// InProgress means more completions are still expected.
	InProgress Status = iota
	// Complete means every expected unit has been reported.
	Complete
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Tracker coordinates workers reporting unit completions with a single
// observer waiting for the run to finish. Report is safe from any number of
// goroutines; Observe, Cursor and the gap bookkeeping belong to exactly one
// observer goroutine.
type Tracker struct {
	count  atomic.Int64
	maxGap atomic.Int64
	total  int64

	// cursor is private to the observer goroutine.
	cursor int64

	// wake has capacity 1: sends never block and collapsed signals are fine
	// because the observer always re-reads count, never a queue of events.
	wake chan struct{}

	opts Options
	obs  Observer
}

// New creates a Tracker expecting total completions. A non-positive total is
// treated as an already-complete run.
func New(total int64, optFns ...Option) *Tracker {
	if total < 0 {
		total = 0
	}
	t := &Tracker{
		total: total,
		wake:  make(chan struct{}, 1),
		opts:  defaultOptions(),
	}
	for _, fn := range optFns {
		fn(&t.opts)
	}
	t.obs = t.opts.Observer
	return t
}

// Total returns the number of completions the tracker expects.
func (t *Tracker) Total() int64 { return t.total }

// Report records one completed unit of work and returns the count of
// completions that happened before this one. Across a whole run the returned
// values form the exact set {0, 1, ..., total-1}: no two callers ever see the
// same value. Report never blocks and is safe from any goroutine.
func (t *Tracker) Report() int64 {
	prev := t.count.Add(1) - 1
	select {
	case t.wake <- struct{}{}:
	default:
	}
	if t.obs != nil {
		t.obs.UnitCompleted(prev)
	}
	return prev
}

// Count returns the current completion count. Two reads with no intervening
// Report return the same value.
func (t *Tracker) Count() int64 {
	return t.count.Load()
}

// MaxGap returns the largest jump observed so far between two consecutive
// observer reads. Diagnostic only; it never decreases during a run.
func (t *Tracker) MaxGap() int64 {
	return t.maxGap.Load()
}

// Observe performs one observer pass: it reads the count, records the gap
// since the previous pass, and either declares the run Complete or parks
// until the next Report wakes it. A wait timeout configured via
// WithWaitTimeout bounds the park; expiry is an ordinary "poll again" event,
// not an error. Context cancellation ends the wait with ctx.Err().
//
// A negative gap or a count above the expected total means the tracker was
// misused or corrupted; Observe returns an *InvariantError and the run must
// be aborted.
func (t *Tracker) Observe(ctx context.Context) (Status, error) {
	count := t.count.Load()
	gap := count - t.cursor
	if gap < 0 {
		return InProgress, &InvariantError{
			Check:  CheckMonotonicCount,
			Count:  count,
			Cursor: t.cursor,
			Total:  t.total,
		}
	}
	if count > t.total {
		return InProgress, &InvariantError{
			Check:  CheckCountWithinTotal,
			Count:  count,
			Cursor: t.cursor,
			Total:  t.total,
		}
	}
	fetchMax(&t.maxGap, gap)
	t.cursor = count
	if t.obs != nil {
		t.obs.ObserverPolled(count, gap)
	}
	if count == t.total {
		return Complete, nil
	}

	if t.obs != nil {
		t.obs.ObserverParked()
	}
	if d := t.opts.WaitTimeout; d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-t.wake:
		case <-timer.C:
		case <-ctx.Done():
			return InProgress, ctx.Err()
		}
		return InProgress, nil
	}
	select {
	case <-t.wake:
	case <-ctx.Done():
		return InProgress, ctx.Err()
	}
	return InProgress, nil
}

// fetchMax raises v to x unless v is already at least x. Retries triggered by
// concurrent raises re-read the fresh value, so benign contention resolves in
// a handful of iterations.
func fetchMax(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if cur >= x || v.CompareAndSwap(cur, x) {
			return
		}
	}
}
