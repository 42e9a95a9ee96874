package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/farmflow/backend/domain"
)

const settingsKey = "notify:settings"

// Scheduler owns the reminder pipeline for one running process: user
// settings, the scan throttle and per-task alert bookkeeping. Construct one
// per process and share it; the throttle is what keeps page-driven triggers
// from stampeding.
type Scheduler struct {
	store    Store
	platform Platform
	now      func() time.Time
	logger   *zap.Logger

	gate gate

	mu       sync.Mutex
	settings Settings
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithClock substitutes the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a Scheduler and loads persisted settings, merging in the live
// platform permission. Storage problems during the load are logged and fall
// back to defaults; they never prevent construction.
func New(store Store, platform Platform, logger *zap.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{
		store:    store,
		platform: platform,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.settings = s.load()
	return s
}

// Settings returns a snapshot of the current settings.
func (s *Scheduler) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings merges the patch into the current settings, persists the
// result and returns it. The stored permission is not patchable; it only
// follows the platform.
func (s *Scheduler) UpdateSettings(patch SettingsPatch) (Settings, error) {
	if patch.LeadDays != nil && !validLeadDays(*patch.LeadDays) {
		return s.Settings(), domain.NewError(domain.ErrCodeInvalid, "lead_days must be 1, 3 or 7")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.settings.apply(patch)
	if err := s.persist(merged); err != nil {
		return s.settings, domain.WrapError(domain.ErrCodeInternal, "failed to persist notification settings", err)
	}
	s.settings = merged
	return merged, nil
}

// RequestPermission drives the platform permission prompt. It never prompts
// when the platform is unsupported or the user already decided: granted short
// circuits to true and denied to false, since the platform disallows
// re-prompting after an explicit denial. Any permission change is persisted
// with the settings.
func (s *Scheduler) RequestPermission(ctx context.Context) bool {
	if s.platform == nil || !s.platform.IsSupported() {
		return false
	}

	switch s.platform.Permission() {
	case PermissionGranted:
		s.storePermission(PermissionGranted)
		return true
	case PermissionDenied:
		s.storePermission(PermissionDenied)
		return false
	}

	result, err := s.platform.RequestPermission(ctx)
	if err != nil {
		s.logger.Warn("notification permission request failed", zap.Error(err))
		return false
	}
	s.storePermission(result)
	return result == PermissionGranted
}

// CheckTasks runs one scan-and-alert cycle over the supplied tasks. It is a
// silent no-op when reminders are disabled, permission is missing, or a scan
// already ran within the cooldown window. Per-task failures are logged and
// skipped so one bad record cannot starve the rest of the cycle.
func (s *Scheduler) CheckTasks(ctx context.Context, tasks []domain.Task) {
	settings := s.Settings()
	if !settings.Enabled || settings.Permission != PermissionGranted {
		return
	}

	now := s.now()
	if !s.gate.shouldRun(now) {
		return
	}

	for _, task := range DueSoon(tasks, settings.LeadDays, now) {
		if !s.shouldAlert(task, now) {
			continue
		}
		alert := buildAlert(task, now)
		if _, err := s.platform.Show(ctx, alert); err != nil {
			s.logger.Error("failed to emit task reminder",
				zap.String("task_id", task.ID),
				zap.Error(err))
			continue
		}
		s.recordAlert(task, now)
	}

	// One mark per cycle, even if nothing was alerted.
	s.gate.markRun(now)
}

// TestAlert emits a fixed diagnostic alert so the user can verify delivery
// end to end. Unlike CheckTasks it surfaces why it cannot deliver.
func (s *Scheduler) TestAlert(ctx context.Context) error {
	if s.platform == nil || !s.platform.IsSupported() {
		return ErrUnsupported
	}
	if s.platform.Permission() != PermissionGranted {
		return ErrPermissionNotGranted
	}

	_, err := s.platform.Show(ctx, Alert{
		Title:      "FarmFlow Notifications",
		Body:       testAlertBody,
		Tag:        "test",
		CloseAfter: testAlertAutoClose,
	})
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "failed to emit test notification", err)
	}
	return nil
}

// shouldAlert applies the per-task idempotency window: an alert for the same
// task and due date within the last 24 hours suppresses a new one.
func (s *Scheduler) shouldAlert(task domain.Task, now time.Time) bool {
	raw, err := s.store.Get(recordKey(task))
	if err != nil {
		s.logger.Warn("failed to read reminder record", zap.String("task_id", task.ID), zap.Error(err))
		return true
	}
	if raw == nil {
		return true
	}
	lastMillis, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return true
	}
	return now.Sub(time.UnixMilli(lastMillis)) > realertAfter
}

func (s *Scheduler) recordAlert(task domain.Task, now time.Time) {
	value := strconv.FormatInt(now.UnixMilli(), 10)
	if err := s.store.Set(recordKey(task), []byte(value)); err != nil {
		s.logger.Warn("failed to persist reminder record", zap.String("task_id", task.ID), zap.Error(err))
	}
}

// recordKey is the idempotency key for one logical due-event. The due date
// component always comes from Task.DueDate, the single canonical due-date
// field in this model.
func recordKey(task domain.Task) string {
	due := ""
	if task.DueDate != nil {
		due = task.DueDate.Format(time.RFC3339)
	}
	return fmt.Sprintf("notify:task-%s-%s", task.ID, due)
}

func (s *Scheduler) load() Settings {
	settings := defaultSettings()

	if s.store != nil {
		raw, err := s.store.Get(settingsKey)
		switch {
		case err != nil:
			s.logger.Warn("failed to load notification settings", zap.Error(err))
		case raw != nil:
			if err := json.Unmarshal(raw, &settings); err != nil {
				s.logger.Warn("discarding malformed notification settings", zap.Error(err))
				settings = defaultSettings()
			}
		}
	}

	settings.Permission = s.livePermission()
	return settings
}

func (s *Scheduler) livePermission() Permission {
	if s.platform == nil || !s.platform.IsSupported() {
		return PermissionUnsupported
	}
	return s.platform.Permission()
}

func (s *Scheduler) storePermission(permission Permission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Permission == permission {
		return
	}
	s.settings.Permission = permission
	if err := s.persist(s.settings); err != nil {
		s.logger.Warn("failed to persist permission state", zap.Error(err))
	}
}

func (s *Scheduler) persist(settings Settings) error {
	if s.store == nil {
		return nil
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.store.Set(settingsKey, payload)
}
