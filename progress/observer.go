package progress

// Observer receives tracker lifecycle events. Implementations must be safe
// for concurrent use: UnitCompleted fires from worker goroutines while the
// observer-pass hooks fire from the observing goroutine. Hooks must not
// block; the tracker calls them inline.
type Observer interface {
	// UnitCompleted fires after each Report with the pre-increment count.
	UnitCompleted(prev int64)
	// ObserverPolled fires on every observer pass with the count just read
	// and the gap since the previous pass.
	ObserverPolled(count, gap int64)
	// ObserverParked fires right before the observer suspends.
	ObserverParked()
	// RunCompleted fires once when a run driven by Run finishes cleanly.
	RunCompleted(stats FinalStats)
}

// NopObserver is an Observer that ignores every event. Useful as an
// embeddable base for partial implementations.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) UnitCompleted(int64)         {}
func (NopObserver) ObserverPolled(int64, int64) {}
func (NopObserver) ObserverParked()             {}
func (NopObserver) RunCompleted(FinalStats)     {}
