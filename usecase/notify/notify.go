// Package notify implements due-date reminders for farm tasks: it decides
// which tasks are due soon, rate-limits how often that decision runs, and
// emits alerts through a pluggable presentation platform.
package notify

import (
	"context"
	"time"

	"github.com/farmflow/backend/domain"
)

// Permission mirrors the platform's notification permission state.
type Permission string

const (
	PermissionDefault     Permission = "default"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
	PermissionUnsupported Permission = "unsupported"
)

// Fixed policy windows. These are deliberately not configurable.
const (
	// scanCooldown is the minimum gap between two full due-task scans.
	scanCooldown = time.Hour
	// realertAfter is how long an emitted alert suppresses re-alerting
	// for the same task and due date.
	realertAfter = 24 * time.Hour
	// alertAutoClose is how long non-urgent alerts stay visible.
	alertAutoClose = 10 * time.Second
	// testAlertAutoClose is how long the diagnostic test alert stays visible.
	testAlertAutoClose = 5 * time.Second
)

// Alert is the content handed to the platform for presentation.
type Alert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag"`
	// Link is where the UI should navigate when the alert is clicked.
	Link string `json:"link,omitempty"`
	// RequireInteraction keeps the alert visible until explicitly dismissed.
	RequireInteraction bool `json:"require_interaction"`
	// CloseAfter auto-dismisses the alert when positive; ignored when
	// RequireInteraction is set.
	CloseAfter time.Duration `json:"close_after"`
}

// Handle refers to an emitted alert.
type Handle interface {
	Close() error
}

// Platform abstracts the notification presentation facility so the scheduler
// can run against a browser bridge, a push channel or a test double.
type Platform interface {
	IsSupported() bool
	Permission() Permission
	RequestPermission(ctx context.Context) (Permission, error)
	Show(ctx context.Context, alert Alert) (Handle, error)
}

// Store is the persisted key-value backing for settings and alert records.
// Get reports a missing key as (nil, nil).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Errors surfaced by the explicit diagnostic path. The recurring scan never
// returns these; it silently no-ops instead.
var (
	ErrUnsupported          = domain.NewError(domain.ErrCodeUnavailable, "notifications are not supported on this platform")
	ErrPermissionNotGranted = domain.NewError(domain.ErrCodeForbidden, "notification permission not granted")
)
