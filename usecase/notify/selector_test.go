package notify

import (
	"testing"
	"time"

	"github.com/farmflow/backend/domain"
)

func taskDue(id string, due time.Time) domain.Task {
	return domain.Task{ID: id, Title: "task " + id, DueDate: &due}
}

func TestDueSoonWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	lastMoment := time.Date(2024, 6, 4, 23, 59, 59, 0, time.UTC)
	justPast := time.Date(2024, 6, 5, 0, 0, 1, 0, time.UTC)
	beforeNow := now.Add(-time.Minute)

	tasks := []domain.Task{
		taskDue("at-now", now),
		taskDue("end-of-window", lastMoment),
		taskDue("past-window", justPast),
		taskDue("overdue", beforeNow),
	}

	due := DueSoon(tasks, 3, now)
	if len(due) != 2 {
		t.Fatalf("expected 2 due tasks, got %d", len(due))
	}
	if due[0].ID != "at-now" || due[1].ID != "end-of-window" {
		t.Fatalf("unexpected selection: %q, %q", due[0].ID, due[1].ID)
	}
}

func TestDueSoonSkipsCompletedAndUndated(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	completed := taskDue("done", now.Add(time.Hour))
	completed.Completed = true

	tasks := []domain.Task{
		completed,
		{ID: "undated", Title: "no due date"},
		taskDue("open", now.Add(time.Hour)),
	}

	due := DueSoon(tasks, 1, now)
	if len(due) != 1 || due[0].ID != "open" {
		t.Fatalf("expected only the open dated task, got %v", due)
	}
}

func TestDueSoonZeroLeadDaysCoversRestOfToday(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tonight := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2024, 6, 2, 0, 30, 0, 0, time.UTC)

	due := DueSoon([]domain.Task{taskDue("tonight", tonight), taskDue("tomorrow", tomorrow)}, 0, now)
	if len(due) != 1 || due[0].ID != "tonight" {
		t.Fatalf("expected only tonight's task, got %v", due)
	}
}
