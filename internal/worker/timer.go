package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"coliving-payments/internal/pkg/config"
	"coliving-payments/internal/usecase/commands"
)

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

const defaultInterval = time.Minute

// Timer runs a job on a fixed interval until stopped.
type Timer struct {
	name     string
	job      Job
	interval time.Duration
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewTimer falls back to one minute when interval is not positive.
func NewTimer(name string, interval time.Duration, job Job, logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		logger.Warn("non-positive worker interval, using default",
			"worker", name, "interval", interval, "default", defaultInterval)
		interval = defaultInterval
	}
	return &Timer{
		name:     name,
		job:      job,
		interval: interval,
		logger:   logger.With("worker", name),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// NewSweepTimer periodically returns beds held by cancelled bookings.
func NewSweepTimer(cfg config.ReconciliationConfig, sweep commands.SweepCommands, logger *slog.Logger) *Timer {
	return NewTimer("reconciliation_sweep", cfg.Interval, func(ctx context.Context) error {
		_, err := sweep.Sweep(ctx)
		return err
	}, logger)
}

// NewOutboxRelay periodically pushes unpublished booking events to the broker.
func NewOutboxRelay(cfg config.OutboxConfig, outbox commands.OutboxCommands, logger *slog.Logger) *Timer {
	return NewTimer("outbox_relay", cfg.Interval, func(ctx context.Context) error {
		_, err := outbox.RelayBatch(ctx)
		return err
	}, logger)
}

func (t *Timer) Name() string {
	return t.name
}

func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Running reports whether the loop is active.
func (t *Timer) Running() bool {
	return t.running.Load()
}

// Start runs the loop and blocks. Call in a goroutine.
func (t *Timer) Start(ctx context.Context) {
	t.running.Store(true)
	defer func() {
		t.running.Store(false)
		close(t.done)
	}()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stop:
			return
		case <-ticker.C:
			t.safeRun(ctx)
		}
	}
}

// Stop signals the loop and waits for the in-flight run, bounded by ctx.
func (t *Timer) Stop(ctx context.Context) error {
	t.stopOnce.Do(func() { close(t.stop) })
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce executes the job immediately, outside the ticker.
func (t *Timer) RunOnce(ctx context.Context) {
	t.safeRun(ctx)
}

func (t *Timer) safeRun(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("panic in worker", "panic", fmt.Sprint(r))
		}
	}()

	if err := t.job(ctx); err != nil {
		t.logger.Warn("worker run failed", "error", err)
	}
}
