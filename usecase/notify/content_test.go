package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/farmflow/backend/domain"
)

func TestBuildAlertDueToday(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)
	task := domain.Task{ID: "t1", Title: "Water the tomatoes", DueDate: &due}

	alert := buildAlert(task, now)

	if alert.Title != "Task Due Today! 📅" {
		t.Fatalf("unexpected title: %q", alert.Title)
	}
	if alert.Body != "Water the tomatoes is due today" {
		t.Fatalf("unexpected body: %q", alert.Body)
	}
	if alert.Tag != "task-t1" {
		t.Fatalf("unexpected tag: %q", alert.Tag)
	}
	if alert.Link != "/tasks" {
		t.Fatalf("unexpected link: %q", alert.Link)
	}
	if alert.RequireInteraction {
		t.Fatal("normal priority must not require interaction")
	}
	if alert.CloseAfter != 10*time.Second {
		t.Fatalf("unexpected auto-close: %v", alert.CloseAfter)
	}
}

func TestBuildAlertDueTomorrowUsesCalendarDays(t *testing.T) {
	// Less than 24 hours away, but the next calendar day.
	now := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	due := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	task := domain.Task{ID: "t2", Title: "Move the sprinklers", DueDate: &due}

	alert := buildAlert(task, now)

	if alert.Title != "Task Due Tomorrow! ⏰" {
		t.Fatalf("unexpected title: %q", alert.Title)
	}
	if alert.Body != "Move the sprinklers is due tomorrow (Jun 2)" {
		t.Fatalf("unexpected body: %q", alert.Body)
	}
}

func TestBuildAlertDueInDays(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2024, 6, 6, 9, 0, 0, 0, time.UTC)
	task := domain.Task{ID: "t3", Title: "Service the tractor", DueDate: &due}

	alert := buildAlert(task, now)

	if alert.Title != "Task Due in 5 Days" {
		t.Fatalf("unexpected title: %q", alert.Title)
	}
	if alert.Body != "Service the tractor is due on Jun 6, 2024" {
		t.Fatalf("unexpected body: %q", alert.Body)
	}
}

func TestBuildAlertAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// US clocks spring forward on 2024-03-10, so the local midnights in
	// between are only 23 hours apart.
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	due := time.Date(2024, 3, 11, 12, 0, 0, 0, loc)
	task := domain.Task{ID: "t5", Title: "Prune the orchard", DueDate: &due}

	alert := buildAlert(task, now)

	if alert.Title != "Task Due in 2 Days" {
		t.Fatalf("unexpected title: %q", alert.Title)
	}
}

func TestBuildAlertHighPriority(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)
	task := domain.Task{ID: "t4", Title: "Fix the fence", DueDate: &due, Priority: domain.PriorityHigh}

	alert := buildAlert(task, now)

	if !strings.HasPrefix(alert.Title, "🚨 ") {
		t.Fatalf("high priority title missing urgency prefix: %q", alert.Title)
	}
	if !alert.RequireInteraction {
		t.Fatal("high priority must require interaction")
	}
	if alert.CloseAfter != 0 {
		t.Fatalf("high priority must not auto-close, got %v", alert.CloseAfter)
	}
}
