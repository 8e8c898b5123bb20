// Package prom provides metrics observers for progress runs: an in-memory
// Metrics observer with a copyable Snapshot, and an Exporter backed by
// Prometheus collectors.
package prom

import (
	"sync/atomic"

	"github.com/NetPo4ki/go-progress/progress"
)

// Metrics is a lightweight in-memory observer maintaining counters for a
// tracker. It implements progress.Observer without external dependencies.
type Metrics struct {
	unitsCompleted atomic.Int64
	observerPolls  atomic.Int64
	observerParks  atomic.Int64
	maxGap         atomic.Int64
	runsCompleted  atomic.Int64
	elapsedNs      atomic.Int64
}

var _ progress.Observer = (*Metrics)(nil)

// New returns a new Metrics observer.
func New() *Metrics { return &Metrics{} }

// UnitCompleted counts one reported unit.
func (m *Metrics) UnitCompleted(_ int64) {
	m.unitsCompleted.Add(1)
}

// ObserverPolled counts an observer pass and tracks the largest gap.
func (m *Metrics) ObserverPolled(_, gap int64) {
	m.observerPolls.Add(1)
	for {
		cur := m.maxGap.Load()
		if cur >= gap || m.maxGap.CompareAndSwap(cur, gap) {
			return
		}
	}
}

// ObserverParked counts an observer suspension.
func (m *Metrics) ObserverParked() {
	m.observerParks.Add(1)
}

// RunCompleted counts a finished run and accumulates its duration.
func (m *Metrics) RunCompleted(stats progress.FinalStats) {
	m.runsCompleted.Add(1)
	m.elapsedNs.Add(stats.Elapsed.Nanoseconds())
}

// Snapshot exposes a copy of current metric values for exporting/inspection.
type Snapshot struct {
	UnitsCompleted int64
	ObserverPolls  int64
	ObserverParks  int64
	MaxGap         int64
	RunsCompleted  int64
	ElapsedSumNs   int64
}

// GetSnapshot returns the current metrics snapshot.
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		UnitsCompleted: m.unitsCompleted.Load(),
		ObserverPolls:  m.observerPolls.Load(),
		ObserverParks:  m.observerParks.Load(),
		MaxGap:         m.maxGap.Load(),
		RunsCompleted:  m.runsCompleted.Load(),
		ElapsedSumNs:   m.elapsedNs.Load(),
	}
}
