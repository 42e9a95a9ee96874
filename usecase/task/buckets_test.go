package task

import (
	"testing"
	"time"

	"github.com/farmflow/backend/domain"
)

func dated(id string, due time.Time) domain.Task {
	return domain.Task{ID: id, Title: id, DueDate: &due}
}

func TestCategorize(t *testing.T) {
	now := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)

	doneLongAgo := dated("done", now.AddDate(0, 0, -30))
	doneLongAgo.Completed = true

	tasks := []domain.Task{
		dated("yesterday", now.AddDate(0, 0, -1)),
		dated("this-morning", time.Date(2024, 6, 5, 6, 0, 0, 0, time.UTC)),
		dated("tonight", time.Date(2024, 6, 5, 22, 0, 0, 0, time.UTC)),
		dated("tomorrow", now.AddDate(0, 0, 1)),
		dated("in-four-days", now.AddDate(0, 0, 4)),
		dated("next-week", now.AddDate(0, 0, 8)),
		doneLongAgo,
		{ID: "undated", Title: "undated"},
	}

	buckets := Categorize(tasks, now)

	if got := ids(buckets.Overdue); !equal(got, []string{"yesterday"}) {
		t.Fatalf("overdue: %v", got)
	}
	if got := ids(buckets.Today); !equal(got, []string{"this-morning", "tonight"}) {
		t.Fatalf("today: %v", got)
	}
	if got := ids(buckets.Tomorrow); !equal(got, []string{"tomorrow"}) {
		t.Fatalf("tomorrow: %v", got)
	}
	if got := ids(buckets.ThisWeek); !equal(got, []string{"in-four-days"}) {
		t.Fatalf("this week: %v", got)
	}
	if got := ids(buckets.Completed); !equal(got, []string{"done"}) {
		t.Fatalf("completed: %v", got)
	}
}

func TestCategorizeCompletedWinsOverDueDate(t *testing.T) {
	now := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)

	overdueButDone := dated("t1", now.AddDate(0, 0, -2))
	overdueButDone.Completed = true

	buckets := Categorize([]domain.Task{overdueButDone}, now)
	if len(buckets.Overdue) != 0 || len(buckets.Completed) != 1 {
		t.Fatalf("completed task must not appear as overdue: %+v", buckets)
	}
}

func TestCategorizeWeekBoundary(t *testing.T) {
	now := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)

	buckets := Categorize([]domain.Task{
		dated("day-six", now.AddDate(0, 0, 6)),
		dated("day-seven", now.AddDate(0, 0, 7)),
	}, now)

	if got := ids(buckets.ThisWeek); !equal(got, []string{"day-six"}) {
		t.Fatalf("this week: %v", got)
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
