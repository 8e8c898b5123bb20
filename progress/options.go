package progress

import "time"

// Option customizes a Tracker or a Run.
type Option func(*Options)

// Options collects tracker and run configuration.
type Options struct {
	Observer       Observer
	WaitTimeout    time.Duration
	Flag           *Flag
	MaxConcurrency int64
}

func defaultOptions() Options { return Options{} }

// WithObserver attaches an observer receiving tracker lifecycle events.
func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// WithWaitTimeout bounds how long a single Observe pass may stay parked.
// An expired timeout makes the observer poll again; it is not an error.
func WithWaitTimeout(d time.Duration) Option { return func(o *Options) { o.WaitTimeout = d } }

// WithFlag wires a shared stop flag into Run: workers stop reporting once it
// is set and the run winds down with partial statistics.
func WithFlag(f *Flag) Option { return func(o *Options) { o.Flag = f } }

// WithMaxConcurrency bounds how many workers Run lets execute at once.
// Zero or negative means unbounded.
func WithMaxConcurrency(n int64) Option { return func(o *Options) { o.MaxConcurrency = n } }
