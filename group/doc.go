// Package group provides a fail-fast goroutine group for driving worker
// fleets. A Group owns the goroutines it spawns, joins them in Wait, and
// cancels the siblings as soon as any of them fails.
package group
