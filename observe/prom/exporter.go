package prom

import (
	"errors"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NetPo4ki/go-progress/progress"
)

// Exporter adapts progress.Observer events to Prometheus collectors.
type Exporter struct {
	unitsCompleted prometheus.Counter
	observerPolls  prometheus.Counter
	observerParks  prometheus.Counter
	runsCompleted  prometheus.Counter
	maxGap         prometheus.Gauge
	runElapsed     prometheus.Gauge

	// gauges have no read-back, so the running maximum lives here
	maxSeen atomic.Int64
}

var _ progress.Observer = (*Exporter)(nil)

// NewExporter creates and registers Prometheus collectors for progress runs.
// An empty namespace defaults to "progress"; a nil registerer defaults to
// prometheus.DefaultRegisterer.
func NewExporter(namespace string, reg prometheus.Registerer) (*Exporter, error) {
	if namespace == "" {
		namespace = "progress"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	e := &Exporter{
		unitsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_completed_total",
			Help:      "Total number of completed work units reported.",
		}),
		observerPolls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_polls_total",
			Help:      "Total number of observer passes over the counter.",
		}),
		observerParks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observer_parks_total",
			Help:      "Total number of times the observer suspended.",
		}),
		runsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_completed_total",
			Help:      "Total number of runs observed to completion.",
		}),
		maxGap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "max_observation_gap",
			Help:      "Largest jump observed between two consecutive reads.",
		}),
		runElapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_elapsed_seconds",
			Help:      "Wall-clock duration of the most recently completed run.",
		}),
	}

	for _, c := range []prometheus.Collector{
		e.unitsCompleted, e.observerPolls, e.observerParks,
		e.runsCompleted, e.maxGap, e.runElapsed,
	} {
		if err := register(reg, c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func register(reg prometheus.Registerer, c prometheus.Collector) error {
	err := reg.Register(c)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return nil
	}
	return err
}

// UnitCompleted counts one reported unit.
func (e *Exporter) UnitCompleted(_ int64) {
	e.unitsCompleted.Inc()
}

// ObserverPolled counts an observer pass and raises the gap gauge when a new
// maximum appears.
func (e *Exporter) ObserverPolled(_, gap int64) {
	e.observerPolls.Inc()
	for {
		cur := e.maxSeen.Load()
		if cur >= gap {
			return
		}
		if e.maxSeen.CompareAndSwap(cur, gap) {
			e.maxGap.Set(float64(gap))
			return
		}
	}
}

// ObserverParked counts an observer suspension.
func (e *Exporter) ObserverParked() {
	e.observerParks.Inc()
}

// RunCompleted counts a finished run and records its duration.
func (e *Exporter) RunCompleted(stats progress.FinalStats) {
	e.runsCompleted.Inc()
	e.runElapsed.Set(stats.Elapsed.Seconds())
	e.maxGap.Set(float64(stats.MaxGap))
}
