package scheduler

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by an explicit virtual clock. Callbacks only run
// from Advance, on the caller's goroutine.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks map[string]manualTask
}

type manualTask struct {
	due time.Time
	seq uint64
	fn  func()
}

var _ Scheduler = (*Manual)(nil)

func NewManual(start time.Time) *Manual {
	return &Manual{now: start, tasks: make(map[string]manualTask)}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) ScheduleOnce(key string, delay time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.tasks[key] = manualTask{due: m.now.Add(delay), seq: m.seq, fn: fn}
}

func (m *Manual) Cancel(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[key]; !ok {
		return false
	}
	delete(m.tasks, key)
	return true
}

func (m *Manual) Pending(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tasks[key]
	return ok
}

// Len returns the number of armed callbacks.
func (m *Manual) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves the clock forward by d and runs every callback that falls due,
// earliest first. Callbacks scheduled while advancing run too if they fall due
// before the target time. It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		key, task, ok := m.nextDue(target)
		if !ok {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		delete(m.tasks, key)
		if task.due.After(m.now) {
			m.now = task.due
		}
		m.mu.Unlock()

		task.fn()
		fired++
	}
}

func (m *Manual) nextDue(target time.Time) (string, manualTask, bool) {
	var (
		bestKey string
		best    manualTask
		found   bool
	)
	for key, task := range m.tasks {
		if task.due.After(target) {
			continue
		}
		if !found || task.due.Before(best.due) || (task.due.Equal(best.due) && task.seq < best.seq) {
			bestKey, best, found = key, task, true
		}
	}
	return bestKey, best, found
}
