package collector

import (
	"context"
	"errors"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// ErrInterrupted is returned by Run when Stop was called before the task
// matrix completed
var ErrInterrupted = errors.New("harvest interrupted")

// Runner drives the full task matrix through the search driver and the
// aggregator, one task at a time
type Runner struct {
	tasks      []Task
	driver     *Driver
	agg        *Aggregator
	pacer      *Pacer
	bar        *progressbar.ProgressBar
	onOutcome  func(Outcome)
	onTaskDone func()

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewRunner creates a runner. bar, onOutcome and onTaskDone may be nil.
func NewRunner(tasks []Task, driver *Driver, agg *Aggregator, pacer *Pacer, bar *progressbar.ProgressBar, onOutcome func(Outcome), onTaskDone func()) *Runner {
	return &Runner{
		tasks:      tasks,
		driver:     driver,
		agg:        agg,
		pacer:      pacer,
		bar:        bar,
		onOutcome:  onOutcome,
		onTaskDone: onTaskDone,
		stopChan:   make(chan struct{}),
	}
}

// Stop makes Run return after the current task (safe to call multiple times)
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
}

// Run processes every task in order: all pages and all candidate
// enrichments of one task finish before the next task begins. Individual
// task failures are logged and skipped; only an interrupt ends the run
// early. A Stop during a task takes effect after the candidate currently
// being processed, so at most one enrichment call is in flight when Run
// returns.
func (r *Runner) Run(ctx context.Context) error {
	lastCity := ""

	for i, task := range r.tasks {
		select {
		case <-r.stopChan:
			logrus.Warnf("Stopping with %d of %d tasks done", i, len(r.tasks))
			return ErrInterrupted
		default:
		}

		if task.City != lastCity {
			if lastCity != "" {
				logrus.Infof("Completed city %s. Accepted so far: %d", lastCity, r.agg.Len())
			}
			lastCity = task.City
		}

		logrus.Infof("Searching %q in %s [%d/%d]", task.Industry, task.City, i+1, len(r.tasks))

		results := r.driver.Search(ctx, task)
		for _, raw := range results {
			outcome := r.agg.Process(ctx, task, raw)
			if r.onOutcome != nil {
				r.onOutcome(outcome)
			}

			select {
			case <-r.stopChan:
				logrus.Warnf("Stopping mid-task %q with %d of %d tasks done", task.Query(), i, len(r.tasks))
				return ErrInterrupted
			default:
			}
		}

		if r.bar != nil {
			r.bar.Add(1)
		}
		if r.onTaskDone != nil {
			r.onTaskDone()
		}

		r.pacer.BetweenTasks()
	}

	if lastCity != "" {
		logrus.Infof("Completed city %s. Accepted so far: %d", lastCity, r.agg.Len())
	}
	return nil
}
