package store

import (
	"sync"
	"time"

	"github.com/Elish84/Gantt/internal/util"
)

// Autosaver coalesces bursts of mutations into a single save on the
// trailing edge: every Schedule call restarts the delay, and the save
// runs once the edits pause for that long. Save failures are logged
// and swallowed so editing is never blocked by a slow or broken disk.
type Autosaver struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	save  func() error
}

func NewAutosaver(delay time.Duration, save func() error) *Autosaver {
	return &Autosaver{delay: delay, save: save}
}

// Schedule arms or rewinds the save timer.
func (a *Autosaver) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		if err := a.save(); err != nil {
			util.LogError("autosave failed", err)
		}
	})
}

// Flush runs a pending save immediately instead of waiting out the
// delay. With nothing pending it is a no-op. Unlike the timer path the
// error is returned, since an explicit save should surface failures to
// the caller.
func (a *Autosaver) Flush() error {
	a.mu.Lock()
	pending := a.timer != nil
	if pending {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	if !pending {
		return nil
	}
	return a.save()
}

// Stop cancels any pending save without running it.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
