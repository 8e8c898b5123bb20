// Package slogobs emits progress observer events as structured log records.
// The tracker core only produces values (counts, gaps, stats); turning them
// into diagnostic output is this package's job. Any slog handler works,
// including third-party ones wired at the binary edge.
package slogobs

import (
	"log/slog"

	"github.com/NetPo4ki/go-progress/progress"
)

// Observer logs tracker events through a slog.Logger. Per-unit events go to
// Debug to keep busy runs quiet; observer passes and run completion go to
// Info.
type Observer struct {
	log *slog.Logger
}

var _ progress.Observer = (*Observer)(nil)

// New returns an Observer logging through logger, or slog.Default() when
// logger is nil.
func New(logger *slog.Logger) *Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Observer{log: logger}
}

func (o *Observer) UnitCompleted(prev int64) {
	o.log.Debug("unit completed", "prev", prev)
}

func (o *Observer) ObserverPolled(count, gap int64) {
	o.log.Info("progress observed", "completed", count, "gap", gap)
}

func (o *Observer) ObserverParked() {
	o.log.Debug("observer parked")
}

func (o *Observer) RunCompleted(stats progress.FinalStats) {
	o.log.Info("run complete",
		"completed", stats.Completed,
		"max_gap", stats.MaxGap,
		"elapsed", stats.Elapsed,
	)
}
