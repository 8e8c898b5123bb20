package progress

import (
	"errors"
	"fmt"
)

// Names of the checks an InvariantError can report.
const (
	CheckMonotonicCount   = "monotonic count"
	CheckCountWithinTotal = "count within total"
)

// InvariantError reports a broken tracker invariant: the completion counter
// moved backwards from the observer's point of view, or more completions were
// reported than the run expects. It indicates a logic bug or misuse, never a
// transient condition, so callers must abort the run rather than retry.
type InvariantError struct {
	Check  string
	Count  int64
	Cursor int64
	Total  int64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("progress: invariant violated (%s): count=%d cursor=%d total=%d",
		e.Check, e.Count, e.Cursor, e.Total)
}

// IsInvariant reports whether err wraps an *InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
