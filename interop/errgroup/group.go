// Package errgroup provides an adapter that mimics golang.org/x/sync/errgroup
// semantics using the local group implementation. Callers already driving
// workers through an errgroup-shaped API can feed a progress tracker without
// changing their call sites.
package errgroup

import (
	"context"

	"github.com/NetPo4ki/go-progress/group"
)

// Group is an errgroup-like wrapper over group.Group.
type Group struct {
	g   *group.Group
	ctx context.Context
}

// WithContext creates a Group bound to ctx. The returned context is canceled
// when any function passed to Go returns a non-nil error.
func WithContext(ctx context.Context) (*Group, context.Context) {
	g := group.New(ctx)
	return &Group{g: g, ctx: g.Context()}, g.Context()
}

// Go starts a function. It should return a non-nil error to signal failure.
func (g *Group) Go(f func() error) {
	if f == nil {
		return
	}
	g.g.Go(func(context.Context) error {
		return f()
	})
}

// Wait blocks until all functions have returned. It returns the first
// non-nil error or nil on success.
func (g *Group) Wait() error {
	return g.g.Wait()
}
