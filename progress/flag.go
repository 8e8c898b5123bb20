package progress

import "sync/atomic"

// Flag is a shared stop signal passed explicitly between collaborators
// instead of living in a process-wide static, so ownership is visible at call
// sites and independent instances can coexist in tests. Workers poll IsSet
// between units; a controller calls Set once to stop a run early.
//
// Setting the flag is a plain boolean signal: it carries no payload and needs
// no ordering beyond the atomic store itself.
type Flag struct {
	v atomic.Bool
}

// NewFlag returns an unset flag.
func NewFlag() *Flag { return &Flag{} }

// Set raises the flag. Safe to call more than once.
func (f *Flag) Set() { f.v.Store(true) }

// IsSet reports whether the flag has been raised.
func (f *Flag) IsSet() bool { return f.v.Load() }
