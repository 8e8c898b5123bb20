// Package progress provides a bounded, ordered work-completion tracker.
// Many workers report unit completions through a lock-free atomic counter
// while a single observer parks efficiently between updates and records the
// largest jump it ever observed between two consecutive reads.
package progress
