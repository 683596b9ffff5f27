// internal/app/system/workers/countdown.go
package workers

import (
	"sync"
	"time"

	"github.com/dalemusser/syncgroup/internal/app/system/deadline"
	"go.uber.org/zap"
)

// DefaultTick is the countdown re-evaluation interval.
const DefaultTick = time.Second

// CountdownWatcher is a background worker that re-derives the remaining
// time for one deadline on a fixed tick. It stops rescheduling itself once
// the deadline has passed; the final notification carries Passed=true.
type CountdownWatcher struct {
	due    time.Time
	tick   time.Duration
	notify func(deadline.Remaining)
	log    *zap.Logger
	now    func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewCountdownWatcher creates a watcher for the given deadline.
//
// Parameters:
//   - due: the deadline being displayed
//   - logger: zap logger for logging
//   - tick: how often to re-evaluate (DefaultTick if non-positive)
//   - notify: called with each derived Remaining, including the terminal
//     passed state; must not be nil
func NewCountdownWatcher(due time.Time, logger *zap.Logger, tick time.Duration, notify func(deadline.Remaining)) *CountdownWatcher {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &CountdownWatcher{
		due:    due,
		tick:   tick,
		notify: notify,
		log:    logger,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

// Start begins the background countdown loop.
func (w *CountdownWatcher) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("countdown watcher started",
		zap.Time("deadline", w.due),
		zap.Duration("tick", w.tick))
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// more than once, and after the watcher has already reached the terminal
// passed state.
func (w *CountdownWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
	w.log.Info("countdown watcher stopped", zap.Time("deadline", w.due))
}

func (w *CountdownWatcher) run() {
	defer w.wg.Done()

	// Evaluate once up front so a display never waits a full tick for its
	// first value, and so an already-passed deadline terminates immediately.
	if w.evaluate() {
		return
	}

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if w.evaluate() {
				return
			}
		}
	}
}

// evaluate derives and publishes the current remaining time. It returns
// true when the deadline has passed and no further work should be scheduled.
func (w *CountdownWatcher) evaluate() bool {
	rem := deadline.Until(w.due, w.now())
	w.notify(rem)
	if rem.Passed {
		w.log.Info("deadline passed", zap.Time("deadline", w.due))
		return true
	}
	return false
}
