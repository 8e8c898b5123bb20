package group

import (
	"context"
	"fmt"
	"sync"
)

// Option customizes a Group.
type Option func(*Options)

// Options collects group configuration.
type Options struct {
	PanicAsError bool
	Limit        int64
}

func defaultOptions() Options { return Options{PanicAsError: true} }

// WithPanicAsError controls whether a panicking task fails the group with an
// error (the default) or is re-raised on the spawned goroutine.
func WithPanicAsError(v bool) Option { return func(o *Options) { o.PanicAsError = v } }

// WithLimit bounds how many tasks may run concurrently. Zero or negative
// means unbounded.
func WithLimit(n int64) Option { return func(o *Options) { o.Limit = n } }

// Group runs tasks with fail-fast semantics: the first error cancels the
// group context and Wait returns that error once every task has stopped.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	firstErr error
	canceled bool

	opts Options
	lim  Limiter
}

// New creates a Group whose context descends from parent.
func New(parent context.Context, optFns ...Option) *Group {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	g := &Group{ctx: ctx, cancel: cancel, opts: defaultOptions()}
	for _, fn := range optFns {
		fn(&g.opts)
	}
	g.lim = newWeightedLimiter(g.opts.Limit)
	return g
}

// Context returns the group context. It is canceled when a task fails, the
// group is canceled, or the parent context ends.
func (g *Group) Context() context.Context { return g.ctx }

// Go starts fn on its own goroutine. fn receives the group context and
// should return promptly once it is canceled.
func (g *Group) Go(fn func(ctx context.Context) error) {
	if fn == nil {
		return
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if g.lim != nil {
			if err := g.lim.Acquire(g.ctx); err != nil {
				g.fail(err)
				return
			}
			defer g.lim.Release()
		}
		defer func() {
			if r := recover(); r != nil {
				if !g.opts.PanicAsError {
					panic(r)
				}
				g.fail(fmt.Errorf("panic: %v", r))
			}
		}()
		if err := fn(g.ctx); err != nil {
			g.fail(err)
		}
	}()
}

// Cancel stops the group with err as its cause. Idempotent: only the first
// non-nil cause is kept.
func (g *Group) Cancel(err error) {
	g.mu.Lock()
	if g.firstErr == nil && err != nil {
		g.firstErr = err
	}
	g.canceled = true
	g.mu.Unlock()
	g.cancel()
}

// Wait blocks until every task has returned and reports the first failure.
// Safe to call more than once.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.firstErr
}

func (g *Group) fail(err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	if g.firstErr == nil {
		g.firstErr = err
	}
	g.mu.Unlock()
	g.cancel()
}
