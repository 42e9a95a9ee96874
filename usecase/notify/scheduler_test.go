package notify

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/farmflow/backend/domain"
)

type memStore struct {
	data   map[string][]byte
	getErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

type fakeHandle struct{}

func (fakeHandle) Close() error { return nil }

type fakePlatform struct {
	supported    bool
	permission   Permission
	promptResult Permission
	promptCalls  int

	shown   []Alert
	showErr map[string]error
}

func (p *fakePlatform) IsSupported() bool      { return p.supported }
func (p *fakePlatform) Permission() Permission { return p.permission }

func (p *fakePlatform) RequestPermission(ctx context.Context) (Permission, error) {
	p.promptCalls++
	p.permission = p.promptResult
	return p.promptResult, nil
}

func (p *fakePlatform) Show(ctx context.Context, alert Alert) (Handle, error) {
	if err := p.showErr[alert.Tag]; err != nil {
		return nil, err
	}
	p.shown = append(p.shown, alert)
	return fakeHandle{}, nil
}

func grantedPlatform() *fakePlatform {
	return &fakePlatform{supported: true, permission: PermissionGranted}
}

// newTestScheduler builds an enabled scheduler on a mutable clock.
func newTestScheduler(t *testing.T, platform *fakePlatform, store *memStore, clock *time.Time) *Scheduler {
	t.Helper()

	s := New(store, platform, nil, WithClock(func() time.Time { return *clock }))

	enabled := true
	if _, err := s.UpdateSettings(SettingsPatch{Enabled: &enabled}); err != nil {
		t.Fatalf("enable settings: %v", err)
	}
	return s
}

func TestCheckTasksDisabledIsNoop(t *testing.T) {
	platform := grantedPlatform()
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s := New(newMemStore(), platform, nil, WithClock(func() time.Time { return clock }))

	due := clock.Add(time.Hour)
	s.CheckTasks(context.Background(), []domain.Task{taskDue("t1", due)})

	if len(platform.shown) != 0 {
		t.Fatalf("disabled scheduler must not alert, got %d", len(platform.shown))
	}
}

func TestCheckTasksRequiresGrantedPermission(t *testing.T) {
	platform := &fakePlatform{supported: true, permission: PermissionDefault}
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(t, platform, newMemStore(), &clock)

	due := clock.Add(time.Hour)
	s.CheckTasks(context.Background(), []domain.Task{taskDue("t1", due)})

	if len(platform.shown) != 0 {
		t.Fatalf("scheduler without permission must not alert, got %d", len(platform.shown))
	}
}

func TestCheckTasksThrottlesScans(t *testing.T) {
	platform := grantedPlatform()
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(t, platform, newMemStore(), &clock)

	due := clock.Add(2 * time.Hour)
	tasks := []domain.Task{taskDue("t1", due)}

	s.CheckTasks(context.Background(), tasks)
	if len(platform.shown) != 1 {
		t.Fatalf("expected 1 alert on first scan, got %d", len(platform.shown))
	}

	// A second trigger right away is inside the cooldown and must not scan,
	// even for a brand new task.
	clock = clock.Add(10 * time.Minute)
	fresh := clock.Add(time.Hour)
	s.CheckTasks(context.Background(), append(tasks, taskDue("t2", fresh)))
	if len(platform.shown) != 1 {
		t.Fatalf("cooldown scan must be skipped, got %d alerts", len(platform.shown))
	}

	clock = clock.Add(time.Hour)
	s.CheckTasks(context.Background(), append(tasks, taskDue("t2", fresh)))
	if len(platform.shown) != 2 {
		t.Fatalf("expected alert for the new task after cooldown, got %d", len(platform.shown))
	}
	if platform.shown[1].Tag != "task-t2" {
		t.Fatalf("expected alert for t2, got %q", platform.shown[1].Tag)
	}
}

func TestCheckTasksSuppressesRealertsFor24Hours(t *testing.T) {
	platform := grantedPlatform()
	store := newMemStore()
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(t, platform, store, &clock)

	// Widen the lead window so the task stays selectable across every scan.
	leadDays := 3
	if _, err := s.UpdateSettings(SettingsPatch{LeadDays: &leadDays}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	due := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	tasks := []domain.Task{taskDue("t1", due)}

	s.CheckTasks(context.Background(), tasks)
	if len(platform.shown) != 1 {
		t.Fatalf("expected initial alert, got %d", len(platform.shown))
	}

	// Past the scan cooldown but inside the re-alert window.
	clock = clock.Add(2 * time.Hour)
	s.CheckTasks(context.Background(), tasks)
	if len(platform.shown) != 1 {
		t.Fatalf("alert inside the 24h window must be suppressed, got %d", len(platform.shown))
	}

	clock = clock.Add(23 * time.Hour)
	s.CheckTasks(context.Background(), tasks)
	if len(platform.shown) != 2 {
		t.Fatalf("expected re-alert after 24h, got %d", len(platform.shown))
	}

	// The re-alert refreshes the delivery record to the new timestamp.
	record := store.data["notify:task-t1-"+due.Format(time.RFC3339)]
	if string(record) != strconv.FormatInt(clock.UnixMilli(), 10) {
		t.Fatalf("record not refreshed: %q", record)
	}
}

func TestCheckTasksContinuesPastShowFailure(t *testing.T) {
	platform := grantedPlatform()
	platform.showErr = map[string]error{"task-bad": errors.New("channel down")}
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	store := newMemStore()
	s := newTestScheduler(t, platform, store, &clock)

	due := clock.Add(time.Hour)
	s.CheckTasks(context.Background(), []domain.Task{taskDue("bad", due), taskDue("good", due)})

	if len(platform.shown) != 1 || platform.shown[0].Tag != "task-good" {
		t.Fatalf("expected only the good task to alert, got %v", platform.shown)
	}

	// A failed emission must not be recorded as delivered.
	if _, ok := store.data["notify:task-bad-"+due.Format(time.RFC3339)]; ok {
		t.Fatal("failed alert must not leave a delivery record")
	}
}

func TestCheckTasksAlertsWhenRecordUnreadable(t *testing.T) {
	platform := grantedPlatform()
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	store := newMemStore()
	s := newTestScheduler(t, platform, store, &clock)

	store.getErr = errors.New("disk gone")
	due := clock.Add(time.Hour)
	s.CheckTasks(context.Background(), []domain.Task{taskDue("t1", due)})

	if len(platform.shown) != 1 {
		t.Fatalf("unreadable record should fail open and alert, got %d", len(platform.shown))
	}
}

func TestUpdateSettingsMergesAndPersists(t *testing.T) {
	store := newMemStore()
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(t, grantedPlatform(), store, &clock)

	leadDays := 7
	settings, err := s.UpdateSettings(SettingsPatch{LeadDays: &leadDays})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if !settings.Enabled || settings.LeadDays != 7 {
		t.Fatalf("unexpected merged settings: %+v", settings)
	}

	// A fresh scheduler against the same store sees the persisted values.
	reloaded := New(store, grantedPlatform(), nil)
	if got := reloaded.Settings(); !got.Enabled || got.LeadDays != 7 {
		t.Fatalf("settings did not survive reload: %+v", got)
	}
}

func TestUpdateSettingsRejectsBadLeadDays(t *testing.T) {
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(t, grantedPlatform(), newMemStore(), &clock)

	leadDays := 5
	if _, err := s.UpdateSettings(SettingsPatch{LeadDays: &leadDays}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid-argument error, got %v", err)
	}
	if got := s.Settings().LeadDays; got != 1 {
		t.Fatalf("rejected patch must not change settings, got lead days %d", got)
	}
}

func TestRequestPermissionDeniedDoesNotPrompt(t *testing.T) {
	platform := &fakePlatform{supported: true, permission: PermissionDenied}
	s := New(newMemStore(), platform, nil)

	if s.RequestPermission(context.Background()) {
		t.Fatal("denied permission must report false")
	}
	if platform.promptCalls != 0 {
		t.Fatalf("denied permission must not re-prompt, got %d prompts", platform.promptCalls)
	}
}

func TestRequestPermissionPromptsAndPersists(t *testing.T) {
	platform := &fakePlatform{supported: true, permission: PermissionDefault, promptResult: PermissionGranted}
	store := newMemStore()
	s := New(store, platform, nil)

	if !s.RequestPermission(context.Background()) {
		t.Fatal("granted prompt must report true")
	}
	if platform.promptCalls != 1 {
		t.Fatalf("expected exactly one prompt, got %d", platform.promptCalls)
	}
	if got := s.Settings().Permission; got != PermissionGranted {
		t.Fatalf("permission not updated, got %q", got)
	}
}

func TestRequestPermissionUnsupportedPlatform(t *testing.T) {
	s := New(newMemStore(), nil, nil)
	if s.RequestPermission(context.Background()) {
		t.Fatal("missing platform must report false")
	}
	if got := s.Settings().Permission; got != PermissionUnsupported {
		t.Fatalf("expected unsupported permission, got %q", got)
	}
}

func TestTestAlert(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		s := New(newMemStore(), &fakePlatform{}, nil)
		if err := s.TestAlert(context.Background()); !errors.Is(err, ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported, got %v", err)
		}
	})

	t.Run("not granted", func(t *testing.T) {
		s := New(newMemStore(), &fakePlatform{supported: true, permission: PermissionDefault}, nil)
		if err := s.TestAlert(context.Background()); !errors.Is(err, ErrPermissionNotGranted) {
			t.Fatalf("expected ErrPermissionNotGranted, got %v", err)
		}
	})

	t.Run("delivers", func(t *testing.T) {
		platform := grantedPlatform()
		s := New(newMemStore(), platform, nil)
		if err := s.TestAlert(context.Background()); err != nil {
			t.Fatalf("test alert: %v", err)
		}
		if len(platform.shown) != 1 {
			t.Fatalf("expected one alert, got %d", len(platform.shown))
		}
		alert := platform.shown[0]
		if alert.Title != "FarmFlow Notifications" || alert.Tag != "test" {
			t.Fatalf("unexpected test alert: %+v", alert)
		}
		if alert.CloseAfter != 5*time.Second {
			t.Fatalf("unexpected auto-close: %v", alert.CloseAfter)
		}
	})
}
