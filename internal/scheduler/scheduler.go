package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler runs deferred callbacks identified by key. Scheduling a key that is
// already pending replaces the previous callback.
type Scheduler interface {
	ScheduleOnce(key string, delay time.Duration, fn func())
	Cancel(key string) bool
}

// Task defines a unit of periodic work.
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Periodic runs a Task immediately and then on every interval until the context ends.
type Periodic struct {
	task     Task
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewPeriodic(task Task, interval time.Duration, logger *slog.Logger) *Periodic {
	return &Periodic{
		task:     task,
		interval: interval,
		timeout:  5 * time.Minute,
		logger:   logger.With("task", task.Name()),
	}
}

func (p *Periodic) Start(ctx context.Context) error {
	p.logger.Info("periodic task started", "interval", p.interval)

	p.runOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("periodic task stopped")
			return ctx.Err()
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Periodic) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.task.Run(runCtx); err != nil {
		p.logger.Error("periodic task failed", "error", err)
	}
}
