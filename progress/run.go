package progress

import (
	"context"
	"time"

	"github.com/NetPo4ki/go-progress/group"
)

// WorkFunc is the abstract "do one unit of work" step executed before each
// completion is reported. A nil WorkFunc reports completions immediately.
type WorkFunc func(ctx context.Context, worker, unit int) error

// FinalStats summarizes a finished (or stopped) run.
type FinalStats struct {
	// Completed is the number of units reported by the time the run ended.
	Completed int64
	// MaxGap is the largest jump the observer saw between two reads.
	MaxGap int64
	// Elapsed is wall-clock time from spawn to the final observation.
	Elapsed time.Duration
}

// Run spawns workers goroutines each performing unitsPerWorker units of work,
// observes their progress from the calling goroutine, and returns statistics
// once every unit has been reported.
//
// A worker error cancels the remaining workers and is returned after the run
// winds down. A stop flag wired via WithFlag ends the run early with partial
// statistics and a nil error. An *InvariantError aborts the run immediately.
func Run(ctx context.Context, workers, unitsPerWorker int, work WorkFunc, optFns ...Option) (FinalStats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 0 {
		workers = 0
	}
	if unitsPerWorker < 0 {
		unitsPerWorker = 0
	}

	t := New(int64(workers)*int64(unitsPerWorker), optFns...)
	start := time.Now()

	var gopts []group.Option
	if n := t.opts.MaxConcurrency; n > 0 {
		gopts = append(gopts, group.WithLimit(n))
	}
	g := group.New(ctx, gopts...)
	flag := t.opts.Flag
	for w := 0; w < workers; w++ {
		g.Go(func(ctx context.Context) error {
			for u := 0; u < unitsPerWorker; u++ {
				if flag != nil && flag.IsSet() {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if work != nil {
					if err := work(ctx, w, u); err != nil {
						return err
					}
				}
				t.Report()
			}
			return nil
		})
	}

	// The observer must not stay parked once every worker has returned, so
	// the join runs aside and cancels the observation context when done.
	obsCtx, obsCancel := context.WithCancel(ctx)
	defer obsCancel()
	var workerErr error
	workersDone := make(chan struct{})
	go func() {
		workerErr = g.Wait()
		obsCancel()
		close(workersDone)
	}()

	for {
		status, err := t.Observe(obsCtx)
		if err != nil {
			if IsInvariant(err) {
				g.Cancel(err)
				<-workersDone
				return t.finalStats(start), err
			}
			// Observation context ended: either the caller cancelled or all
			// workers returned without reaching the total.
			<-workersDone
			stats := t.finalStats(start)
			if workerErr != nil {
				return stats, workerErr
			}
			if flag != nil && flag.IsSet() {
				return stats, nil
			}
			return stats, err
		}
		if status == Complete {
			break
		}
	}
	<-workersDone
	stats := t.finalStats(start)
	if workerErr != nil {
		return stats, workerErr
	}
	if t.obs != nil {
		t.obs.RunCompleted(stats)
	}
	return stats, nil
}

func (t *Tracker) finalStats(start time.Time) FinalStats {
	return FinalStats{
		Completed: t.Count(),
		MaxGap:    t.MaxGap(),
		Elapsed:   time.Since(start),
	}
}
