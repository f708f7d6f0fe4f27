package aggregator

import (
	"log/slog"
	"sync"
	"time"

	"affiliate_bot/internal/domain"
	"affiliate_bot/internal/scheduler"
)

// DefaultQuietWindow is how long a batch must stay silent before it is emitted.
const DefaultQuietWindow = 3 * time.Second

// EmitFunc receives a completed batch. It is called from the scheduler's
// goroutine without any aggregator lock held.
type EmitFunc func(domain.Batch)

type buffer struct {
	items   []domain.MediaRef
	token   uint64
	firstAt time.Time
}

// Aggregator groups media events sharing a batch id and emits each group once
// no event for that id has arrived for the quiet window.
type Aggregator struct {
	mu         sync.Mutex
	quiet      time.Duration
	sched      scheduler.Scheduler
	emit       EmitFunc
	logger     *slog.Logger
	buffers    map[string]*buffer
	tokens     uint64
	generation uint64
}

func New(quiet time.Duration, sched scheduler.Scheduler, emit EmitFunc, logger *slog.Logger) *Aggregator {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Aggregator{
		quiet:   quiet,
		sched:   sched,
		emit:    emit,
		logger:  logger.With("component", "aggregator"),
		buffers: make(map[string]*buffer),
	}
}

func timerKey(batchID string) string {
	return "media_group_" + batchID
}

// OnEvent buffers a batched event and re-arms its quiet window. Standalone
// events are not buffered and OnEvent reports false for them.
func (a *Aggregator) OnEvent(ev domain.MediaEvent) bool {
	if ev.BatchID == "" {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	buf, ok := a.buffers[ev.BatchID]
	if !ok {
		buf = &buffer{firstAt: ev.ArrivedAt}
		a.buffers[ev.BatchID] = buf
		a.logger.Debug("batch opened", "batch_id", ev.BatchID)
	}
	if ev.Item != nil {
		buf.items = append(buf.items, *ev.Item)
	}

	a.tokens++
	buf.token = a.tokens
	token := buf.token
	id := ev.BatchID

	key := timerKey(id)
	if a.sched.Cancel(key) {
		a.logger.Debug("previous batch timer cancelled", "batch_id", id)
	}
	a.sched.ScheduleOnce(key, a.quiet, func() { a.expire(id, token) })

	a.logger.Debug("batch item buffered", "batch_id", id, "items", len(buf.items))
	return true
}

func (a *Aggregator) expire(id string, token uint64) {
	a.mu.Lock()
	buf, ok := a.buffers[id]
	if !ok || buf.token != token {
		a.mu.Unlock()
		return
	}
	delete(a.buffers, id)
	batch := domain.Batch{
		ID:         id,
		Items:      buf.items,
		Generation: a.generation,
	}
	a.mu.Unlock()

	a.logger.Info("batch completed", "batch_id", id, "items", len(batch.Items))
	a.emit(batch)
}

// Reset cancels every pending timer, drops every buffer and starts a new
// generation. Batches emitted by timers that raced with Reset carry the old
// generation.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for id := range a.buffers {
		a.sched.Cancel(timerKey(id))
		delete(a.buffers, id)
	}
	a.generation++
}

// Generation identifies the current buffer lifetime; see Reset.
func (a *Aggregator) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

// Pending returns the number of open batches.
func (a *Aggregator) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buffers)
}

// Items returns a copy of the items buffered for a batch.
func (a *Aggregator) Items(batchID string) []domain.MediaRef {
	a.mu.Lock()
	defer a.mu.Unlock()
	buf, ok := a.buffers[batchID]
	if !ok {
		return nil
	}
	return append([]domain.MediaRef(nil), buf.items...)
}
