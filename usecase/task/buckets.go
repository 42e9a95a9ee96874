package task

import (
	"context"
	"time"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

// Buckets groups tasks by due-date proximity for the task board: overdue,
// due today, due tomorrow, due within the coming week, and completed.
type Buckets struct {
	Overdue   []domain.Task `json:"overdue"`
	Today     []domain.Task `json:"today"`
	Tomorrow  []domain.Task `json:"tomorrow"`
	ThisWeek  []domain.Task `json:"this_week"`
	Completed []domain.Task `json:"completed"`
}

// BucketTasks loads tasks for the filter and categorizes them against the
// current clock.
func (uc *UseCase) BucketTasks(ctx context.Context, filter repository.TaskFilter) (*Buckets, error) {
	tasks, err := uc.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	buckets := Categorize(tasks, uc.now())
	return &buckets, nil
}

// Categorize assigns each task to exactly one bucket. Completed tasks always
// land in Completed regardless of due date; open tasks without a due date are
// left out entirely. "This week" means within the next seven calendar days,
// excluding today and tomorrow.
func Categorize(tasks []domain.Task, now time.Time) Buckets {
	var buckets Buckets
	today := startOfDay(now)

	for _, task := range tasks {
		if task.Completed {
			buckets.Completed = append(buckets.Completed, task)
			continue
		}
		if task.DueDate == nil {
			continue
		}

		switch dueDay := startOfDay(task.DueDate.In(now.Location())); {
		case dueDay.Before(today):
			buckets.Overdue = append(buckets.Overdue, task)
		case dueDay.Equal(today):
			buckets.Today = append(buckets.Today, task)
		case dueDay.Equal(today.AddDate(0, 0, 1)):
			buckets.Tomorrow = append(buckets.Tomorrow, task)
		case dueDay.Before(today.AddDate(0, 0, 7)):
			buckets.ThisWeek = append(buckets.ThisWeek, task)
		}
	}
	return buckets
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
