package scheduler

import (
	"sync"
	"time"
)

// Timers is a Scheduler backed by time.AfterFunc.
//
// Stopping a timer whose callback has already started cannot prevent the
// callback from running; callers that need exactly-once semantics must guard
// the callback themselves.
type Timers struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

var _ Scheduler = (*Timers)(nil)

func NewTimers() *Timers {
	return &Timers{timers: make(map[string]*time.Timer)}
}

func (t *Timers) ScheduleOnce(key string, delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.timers[key]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		if t.timers[key] == timer {
			delete(t.timers, key)
		}
		t.mu.Unlock()
		fn()
	})
	t.timers[key] = timer
}

func (t *Timers) Cancel(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	timer, ok := t.timers[key]
	if !ok {
		return false
	}
	delete(t.timers, key)
	return timer.Stop()
}

// Pending reports whether a callback is armed for key.
func (t *Timers) Pending(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.timers[key]
	return ok
}

// Stop cancels every pending callback.
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, timer := range t.timers {
		timer.Stop()
		delete(t.timers, key)
	}
}
