package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/farmflow/backend/repository"
	"github.com/farmflow/backend/usecase/notify"
)

// ReminderConfig controls how frequently the reminder sweep fires.
type ReminderConfig struct {
	Interval time.Duration
}

// Reminder periodically loads the open task list and hands it to the
// notification scheduler. Page-triggered checks cover an active UI session;
// this sweep covers idle ones. The scheduler's own throttle collapses both
// sources to at most one real scan per hour.
type Reminder struct {
	tasks     repository.TaskRepository
	scheduler *notify.Scheduler
	logger    *zap.Logger
	cron      *cron.Cron
	cfg       ReminderConfig
}

func NewReminder(tasks repository.TaskRepository, scheduler *notify.Scheduler, logger *zap.Logger, cfg ReminderConfig) *Reminder {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Reminder{
		tasks:     tasks,
		scheduler: scheduler,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := r.Sweep(ctx); err != nil {
			r.logger.Error("reminder sweep failed", zap.Error(err))
		}
	})

	return r
}

// Start launches the cron scheduler.
func (r *Reminder) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("reminder service started", zap.Duration("interval", r.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (r *Reminder) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("reminder service stopped")
}

// Sweep runs one reminder pass over the open tasks.
func (r *Reminder) Sweep(ctx context.Context) error {
	if r == nil || r.scheduler == nil {
		return nil
	}

	completed := false
	tasks, err := r.tasks.List(ctx, repository.TaskFilter{Completed: &completed})
	if err != nil {
		return err
	}

	r.scheduler.CheckTasks(ctx, tasks)
	return nil
}
