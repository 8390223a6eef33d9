// Package poll runs the dashboard's fixed set of periodic fetch tasks. The
// scheduler's lifecycle follows terminal visibility: it is started on launch
// and whenever the terminal regains focus, and stopped when focus is lost,
// which bounds network usage while nobody is watching the dashboard.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is one named periodic action. Action failures are the action's own
// business: it reports through the event bus and must never panic the
// scheduler or affect sibling tasks.
type Task struct {
	Name     string
	Interval time.Duration
	Action   func(ctx context.Context)
}

// Scheduler owns a fixed, pre-registered task list. All tasks start and stop
// together; there is no per-task lifecycle.
type Scheduler struct {
	tasks []Task
	log   *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewScheduler returns a stopped scheduler over the given tasks. Tasks with
// a non-positive interval or nil action are dropped at construction.
func NewScheduler(log *slog.Logger, tasks ...Task) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	kept := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Interval <= 0 || task.Action == nil {
			log.Warn("dropping invalid poll task", "task", task.Name)
			continue
		}
		kept = append(kept, task)
	}
	return &Scheduler{tasks: kept, log: log}
}

// Start fires every task once immediately, so the display does not wait a
// full interval for its first data, then arms one recurring ticker per task.
// Calling Start while running is a no-op, so repeated visibility events
// never duplicate timers.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true

	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.runTask(ctx, task)
	}
	s.log.Debug("poll scheduler started", "tasks", len(s.tasks))
}

// Stop cancels all armed tickers. Idempotent. In-flight requests issued by
// the actions are not cancelled here; they self-resolve or are superseded by
// channel replacement on the next Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.cancel()
	s.cancel = nil

	// Actions observe ctx cancellation at their next suspension point, so
	// draining is prompt. Holding the lock keeps a concurrent Start from
	// re-arming while tickers are still winding down.
	s.wg.Wait()
	s.log.Debug("poll scheduler stopped")
}

// Running reports whether the scheduler currently has armed tickers.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) runTask(ctx context.Context, task Task) {
	defer s.wg.Done()

	task.Action(ctx)

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			task.Action(ctx)
		}
	}
}
